package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/kerem-kaynak/treebank-tokenizer/pkg/tokenizer"
)

var (
	app       = kingpin.New("vocabmgr", "Manage a token frequency vocabulary.")
	vocabPath = app.Flag("vocab", "vocabulary text file").Required().String()

	addCmd    = app.Command("add", "Add tokens to the vocabulary")
	addTokens = addCmd.Arg("token", "tokens to add").Required().Strings()

	removeCmd    = app.Command("remove", "Remove tokens from the vocabulary")
	removeTokens = removeCmd.Arg("token", "tokens to remove").Required().Strings()

	containsCmd   = app.Command("contains", "Check if a token exists")
	containsToken = containsCmd.Arg("token", "token to look up").Required().String()

	prefixCmd   = app.Command("prefix", "List tokens starting with a prefix")
	prefixValue = prefixCmd.Arg("prefix", "prefix").Required().String()
	prefixLimit = prefixCmd.Flag("limit", "maximum entries to list").Default("20").Int()

	buildCmd    = app.Command("build", "Count the treebank tokens of text files")
	buildFiles  = buildCmd.Arg("file", "text files, one document per line").Required().ExistingFiles()
	buildConfig = buildCmd.Flag("config", "YAML tokenizer config").String()

	rebuildCmd = app.Command("rebuild", "Rebuild FST from text file")
	statsCmd   = app.Command("stats", "Show vocabulary statistics")
)

// errNotFound makes the contains command exit with status 1.
var errNotFound = errors.New("token not found")

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	vocab, err := tokenizer.NewVocabulary(*vocabPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading vocabulary: %v\n", err)
		os.Exit(1)
	}

	err = run(command, vocab)
	if closeErr := vocab.Close(); closeErr != nil && err == nil {
		err = errors.Wrap(closeErr, "closing vocabulary")
	}
	if err != nil {
		if err != errNotFound {
			fmt.Fprintf(os.Stderr, "Error %v\n", err)
		}
		os.Exit(1)
	}
}

func run(command string, vocab *tokenizer.Vocabulary) error {
	switch command {
	case addCmd.FullCommand():
		if err := vocab.AddTokens(*addTokens); err != nil {
			return errors.Wrap(err, "adding tokens")
		}
		for _, tok := range *addTokens {
			fmt.Printf("Added: %s\n", tok)
		}
		fmt.Printf("Total tokens: %d\n", vocab.WordCount())

	case removeCmd.FullCommand():
		for _, tok := range *removeTokens {
			if err := vocab.Remove(tok); err != nil {
				return errors.Wrapf(err, "removing token '%s'", tok)
			}
			fmt.Printf("Removed: %s\n", tok)
		}
		fmt.Printf("Total tokens: %d\n", vocab.WordCount())

	case containsCmd.FullCommand():
		tok := *containsToken
		n := vocab.Frequency(tok)
		if n == 0 {
			fmt.Printf("'%s' NOT in vocabulary\n", tok)
			return errNotFound
		}
		fmt.Printf("'%s' exists in vocabulary (count %d)\n", tok, n)

	case prefixCmd.FullCommand():
		entries, err := vocab.PrefixSearch(*prefixValue, *prefixLimit)
		if err != nil {
			return errors.Wrap(err, "searching")
		}
		for _, e := range entries {
			fmt.Printf("%s\t%d\n", e.Token, e.Count)
		}

	case buildCmd.FullCommand():
		cfg := tokenizer.DefaultConfig()
		if *buildConfig != "" {
			var err error
			if cfg, err = tokenizer.LoadConfig(*buildConfig); err != nil {
				return errors.Wrap(err, "loading config")
			}
		}
		// Every line is tokenized once; the cache would only grow.
		tok := tokenizer.NewTokenizerNoCache(cfg)
		for _, path := range *buildFiles {
			n, err := countFile(vocab, tok, path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			fmt.Printf("%s: %d tokens\n", path, n)
		}
		fmt.Printf("Total tokens: %d (%d occurrences)\n", vocab.WordCount(), vocab.TotalCount())

	case rebuildCmd.FullCommand():
		if err := vocab.Rebuild(); err != nil {
			return errors.Wrap(err, "rebuilding FST")
		}
		fmt.Printf("FST rebuilt. Total tokens: %d\n", vocab.WordCount())

	case statsCmd.FullCommand():
		fmt.Printf("Vocabulary: %s\n", *vocabPath)
		fmt.Printf("Distinct tokens: %d\n", vocab.WordCount())
		fmt.Printf("Occurrences: %d\n", vocab.TotalCount())
	}
	return nil
}

// countFile adds the tokens of every line in path and returns how many were added.
func countFile(vocab *tokenizer.Vocabulary, tok *tokenizer.Tokenizer, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var tokens []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		tokens = append(tokens, tok.Tokenize(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, nil
	}
	return len(tokens), vocab.AddTokens(tokens)
}
