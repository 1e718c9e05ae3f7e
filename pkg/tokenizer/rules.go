package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EdgeFunc reports whether a match may begin or end at byte offset i of s.
type EdgeFunc func(s string, i int) bool

// Rule is a single rewrite: every non-overlapping match of Pattern is replaced
// by Template, expanded with regexp's $n / ${n} syntax.
//
// Lead and Trail, when set, are checked at the start and end of each
// candidate match. They stand in for the word-boundary and lookahead
// assertions that RE2 cannot express with Unicode semantics.
type Rule struct {
	Pattern  *regexp.Regexp
	Template string
	Lead     EdgeFunc
	Trail    EdgeFunc
}

// newRule compiles pattern and panics if it is invalid.
func newRule(pattern, template string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Template: template}
}

// Apply rewrites s. It returns s itself when nothing matches.
func (r Rule) Apply(s string) string {
	if r.Lead == nil && r.Trail == nil {
		return r.Pattern.ReplaceAllString(s, r.Template)
	}

	matches := r.Pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var (
		out  []byte
		last int
		hit  bool
	)
	for _, m := range matches {
		if r.Lead != nil && !r.Lead(s, m[0]) {
			continue
		}
		if r.Trail != nil && !r.Trail(s, m[1]) {
			continue
		}
		if !hit {
			out = make([]byte, 0, len(s)+16)
			hit = true
		}
		out = append(out, s[last:m[0]]...)
		out = r.Pattern.ExpandString(out, r.Template, s, m)
		last = m[1]
	}
	if !hit {
		return s
	}
	out = append(out, s[last:]...)
	return string(out)
}

// RuleGroup is an ordered list of rules. Order is significant.
type RuleGroup []Rule

// Apply runs every rule in order, each on the previous rule's output.
func (g RuleGroup) Apply(s string) string {
	for _, r := range g {
		s = r.Apply(s)
	}
	return s
}

// isWordRune matches the Unicode definition of \w: letters, marks,
// decimal digits and connector punctuation.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.M, r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r)
}

// wordEdgeBefore holds when the rune before i is not a word rune. The rune at
// i is always a word rune for the patterns it guards, so this is \b.
func wordEdgeBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

// wordEdgeAfter holds when the rune at i is not a word rune.
func wordEdgeAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

// spaceAfter holds when the rune at i is whitespace.
func spaceAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}

// splitFields splits s on runs of Unicode whitespace and returns the
// non-empty pieces.
func splitFields(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return []string{}
	}
	return fields
}
