package tokenizer

import (
	"regexp"
	"strings"
	"sync"
)

// contractionTemplate rejoins the two halves of a contraction as two tokens.
const contractionTemplate = " ${1} ${2} "

// Treebank rule groups, in the order they are applied.
type treebankRules struct {
	initial      RuleGroup
	mid          RuleGroup
	final        RuleGroup
	contractions RuleGroup
}

var (
	treebankOnce  sync.Once
	treebankTable *treebankRules
)

// treebank returns the process-wide rule table, compiling it on first use.
func treebank() *treebankRules {
	treebankOnce.Do(func() {
		treebankTable = &treebankRules{
			initial:      initialRules(),
			mid:          midRules(),
			final:        finalRules(),
			contractions: contractionRules(),
		}
	})
	return treebankTable
}

func initialRules() RuleGroup {
	return RuleGroup{
		// starting quotes
		newRule(`^"`, "``"),
		newRule("(``)", " ${1} "),
		newRule(`([ (\[{<])("|'')`, "${1} `` "),
		// punctuation
		newRule(`([:,])([^\p{Nd}])`, " ${1} ${2}"),
		newRule(`([:,])$`, " ${1} "),
		newRule(`\.\.\.`, " ... "),
		newRule(`[;@#$%&]`, " ${0} "),
		newRule(`([^.])(\.)([\]\)}>"']*)\s*$`, "${1} ${2}${3} "),
		newRule(`[?!]`, " ${0} "),
		newRule(`([^'])' `, "${1} ' "),
		// brackets
		newRule(`[\]\[(){}<>]`, " ${0} "),
	}
}

func midRules() RuleGroup {
	return RuleGroup{
		newRule(`\(`, "-LRB-"),
		newRule(`\)`, "-RRB-"),
		newRule(`\[`, "-LSB-"),
		newRule(`\]`, "-RSB-"),
		newRule(`\{`, "-LCB-"),
		newRule(`\}`, "-RCB-"),
		newRule(`--`, " -- "),
	}
}

func finalRules() RuleGroup {
	return RuleGroup{
		// ending quotes
		newRule(`''`, " '' "),
		newRule(`"`, " '' "),
		newRule(`([^' ])('[sS]|'[mM]|'[dD]|') `, "${1} ${2} "),
		newRule(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "${1} ${2} "),
	}
}

func contractionRules() RuleGroup {
	word := func(prefix, suffix string) Rule {
		return Rule{
			Pattern:  regexp.MustCompile(`(?i)(` + prefix + `)(` + suffix + `)`),
			Template: contractionTemplate,
			Lead:     wordEdgeBefore,
			Trail:    wordEdgeAfter,
		}
	}
	// 'tis and 'twas are anchored on the space before the apostrophe.
	spaced := func(prefix, suffix string) Rule {
		return Rule{
			Pattern:  regexp.MustCompile(`(?i) (` + prefix + `)(` + suffix + `)`),
			Template: contractionTemplate,
			Trail:    wordEdgeAfter,
		}
	}

	return RuleGroup{
		word("can", "not"),
		word("d", "'ye"),
		word("gim", "me"),
		word("gon", "na"),
		word("got", "ta"),
		word("lem", "me"),
		word("more", "'n"),
		{
			Pattern:  regexp.MustCompile(`(?i)(wan)(na)`),
			Template: contractionTemplate,
			Lead:     wordEdgeBefore,
			Trail:    spaceAfter,
		},
		spaced("'t", "is"),
		spaced("'t", "was"),
	}
}

// TreebankWords splits text into Penn Treebank style word tokens.
//
// Quotes become `` and '', brackets become -LRB-, -RRB-, -LSB-, -RSB-, -LCB-
// and -RCB-, punctuation is split off, and contractions are split into their
// parts ("don't" -> "do", "n't"; "cannot" -> "can", "not"). The result never
// contains empty tokens; whitespace-only input yields an empty slice.
//
// TreebankWords is safe for concurrent use.
func TreebankWords(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}

	rules := treebank()
	text = rules.initial.Apply(text)
	text = rules.mid.Apply(text)

	// The final and contraction rules rely on a space at both ends.
	text = " " + text + " "

	text = rules.final.Apply(text)
	text = rules.contractions.Apply(text)

	return splitFields(text)
}
