package tokenizer

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/blevesearch/vellum"
	"github.com/pkg/errors"
)

// VocabEntry is a token and the number of times it was seen.
type VocabEntry struct {
	Token string
	Count uint64
}

// Vocabulary counts tokens and serves lookups from an FST.
//
// The text file (one "token<TAB>count" per line) is the source of truth;
// the FST next to it ("<name>.fst") is rebuilt from it whenever the
// vocabulary changes.
type Vocabulary struct {
	fst     *vellum.FST
	counts  map[string]uint64 // Source of truth for modifications
	fstPath string
	txtPath string
	mu      sync.RWMutex
}

// NewVocabulary loads the vocabulary at txtPath. A missing file yields an
// empty vocabulary and both files are created. If the FST doesn't exist or
// disagrees with the text file, it is rebuilt.
func NewVocabulary(txtPath string) (*Vocabulary, error) {
	fstPath := strings.TrimSuffix(txtPath, ".txt") + ".fst"

	v := &Vocabulary{
		counts:  make(map[string]uint64),
		fstPath: fstPath,
		txtPath: txtPath,
	}

	if err := v.loadTextFile(); err != nil {
		return nil, err
	}

	if err := v.loadOrBuildFST(); err != nil {
		return nil, err
	}

	return v, nil
}

// loadTextFile reads counts from the source text file.
// Lines are "token<TAB>count"; a bare token counts once; # starts a comment.
func (v *Vocabulary) loadTextFile() error {
	file, err := os.Open(v.txtPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "open vocabulary")
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		token, countText, hasCount := strings.Cut(line, "\t")
		if err := validToken(token); err != nil {
			return errors.Wrapf(err, "%s:%d", v.txtPath, lineNo)
		}
		count := uint64(1)
		if hasCount {
			count, err = strconv.ParseUint(strings.TrimSpace(countText), 10, 64)
			if err != nil {
				return errors.Wrapf(err, "%s:%d: bad count", v.txtPath, lineNo)
			}
		}
		v.counts[token] += count
	}
	return errors.Wrap(scanner.Err(), "read vocabulary")
}

// loadOrBuildFST loads an existing FST or builds a new one. An FST that
// disagrees with the text file is rebuilt.
func (v *Vocabulary) loadOrBuildFST() error {
	if fst, err := vellum.Open(v.fstPath); err == nil {
		if fstMatches(fst, v.counts) {
			v.fst = fst
			return nil
		}
		fst.Close()
	}

	return v.rebuildFST(v.counts)
}

// fstMatches reports whether fst holds exactly the entries of counts.
func fstMatches(fst *vellum.FST, counts map[string]uint64) bool {
	if fst.Len() != len(counts) {
		return false
	}

	itr, err := fst.Iterator(nil, nil)
	if err == vellum.ErrIteratorDone {
		return true
	}
	if err != nil {
		return false
	}
	defer itr.Close()

	for err == nil {
		key, val := itr.Current()
		if count, ok := counts[string(key)]; !ok || count != val {
			return false
		}
		err = itr.Next()
	}
	return err == vellum.ErrIteratorDone
}

func validToken(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return errors.Errorf("token %q contains whitespace", token)
	}
	return nil
}

// Contains reports whether token is in the vocabulary. Lookups are case-sensitive.
func (v *Vocabulary) Contains(token string) bool {
	return v.Frequency(token) > 0
}

// Frequency returns how many times token was added, or 0.
func (v *Vocabulary) Frequency(token string) uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.fst == nil {
		return 0
	}
	count, exists, _ := v.fst.Get([]byte(token))
	if !exists {
		return 0
	}
	return count
}

// Add counts token once and rebuilds the FST.
func (v *Vocabulary) Add(token string) error {
	return v.AddTokens([]string{token})
}

// AddTokens counts every token and rebuilds the FST once. On error the
// vocabulary is unchanged.
func (v *Vocabulary) AddTokens(tokens []string) error {
	for _, tok := range tokens {
		if err := validToken(tok); err != nil {
			return err
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	counts := v.copyCounts()
	for _, tok := range tokens {
		counts[tok]++
	}
	return v.rebuildFST(counts)
}

// Remove deletes token and rebuilds the FST. On error the vocabulary is unchanged.
func (v *Vocabulary) Remove(token string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	counts := v.copyCounts()
	delete(counts, token)
	return v.rebuildFST(counts)
}

func (v *Vocabulary) copyCounts() map[string]uint64 {
	counts := make(map[string]uint64, len(v.counts)+1)
	for tok, n := range v.counts {
		counts[tok] = n
	}
	return counts
}

// PrefixSearch returns up to limit entries whose token starts with prefix,
// in byte order. A limit of 0 or less means no limit.
func (v *Vocabulary) PrefixSearch(prefix string, limit int) ([]VocabEntry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.fst == nil {
		return nil, nil
	}

	var start []byte
	if prefix != "" {
		start = []byte(prefix)
	}
	itr, err := v.fst.Iterator(start, prefixEnd(start))
	if err == vellum.ErrIteratorDone {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "iterate vocabulary")
	}
	defer itr.Close()

	var entries []VocabEntry
	for err == nil {
		key, val := itr.Current()
		if !bytes.HasPrefix(key, start) {
			break
		}
		entries = append(entries, VocabEntry{Token: string(key), Count: val})
		if limit > 0 && len(entries) >= limit {
			break
		}
		err = itr.Next()
	}
	if err != nil && err != vellum.ErrIteratorDone {
		return entries, errors.Wrap(err, "iterate vocabulary")
	}
	return entries, nil
}

// prefixEnd returns the smallest key greater than every key with the given
// prefix, or nil when there is none.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// Rebuild rebuilds the FST from the current counts and saves to disk.
func (v *Vocabulary) Rebuild() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rebuildFST(v.counts)
}

// sortedTokens returns the tokens in byte order, as the FST builder requires.
func sortedTokens(counts map[string]uint64) []string {
	tokens := make([]string, 0, len(counts))
	for tok := range counts {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

// rebuildFST builds an FST from counts next to the current one and swaps
// both in only once it is built. Caller must hold the lock.
func (v *Vocabulary) rebuildFST(counts map[string]uint64) error {
	tmpPath := v.fstPath + ".tmp"
	if err := buildFST(tmpPath, counts); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if v.fst != nil {
		v.fst.Close()
		v.fst = nil
	}
	if err := os.Rename(tmpPath, v.fstPath); err != nil {
		os.Remove(tmpPath)
		v.fst, _ = vellum.Open(v.fstPath)
		return errors.Wrap(err, "replace vocabulary fst")
	}

	fst, err := vellum.Open(v.fstPath)
	if err != nil {
		return errors.Wrap(err, "open vocabulary fst")
	}
	v.fst = fst
	v.counts = counts

	return v.saveTextFile()
}

// buildFST writes an FST of counts to path.
func buildFST(path string, counts map[string]uint64) error {
	fstFile, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create vocabulary fst")
	}
	defer fstFile.Close()

	builder, err := vellum.New(fstFile, nil)
	if err != nil {
		return errors.Wrap(err, "start vocabulary fst")
	}

	for _, tok := range sortedTokens(counts) {
		if err := builder.Insert([]byte(tok), counts[tok]); err != nil {
			builder.Close()
			return errors.Wrapf(err, "insert %q", tok)
		}
	}

	if err := builder.Close(); err != nil {
		return errors.Wrap(err, "finish vocabulary fst")
	}
	return errors.Wrap(fstFile.Sync(), "sync vocabulary fst")
}

// saveTextFile writes the current counts back to the text file.
func (v *Vocabulary) saveTextFile() error {
	file, err := os.Create(v.txtPath)
	if err != nil {
		return errors.Wrap(err, "create vocabulary")
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, tok := range sortedTokens(v.counts) {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", tok, v.counts[tok]); err != nil {
			return errors.Wrap(err, "write vocabulary")
		}
	}
	return errors.Wrap(w.Flush(), "write vocabulary")
}

// Close releases FST resources.
func (v *Vocabulary) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.fst != nil {
		err := v.fst.Close()
		v.fst = nil
		return err
	}
	return nil
}

// WordCount returns the number of distinct tokens.
func (v *Vocabulary) WordCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.counts)
}

// TotalCount returns the sum of all token counts.
func (v *Vocabulary) TotalCount() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var total uint64
	for _, c := range v.counts {
		total += c
	}
	return total
}
