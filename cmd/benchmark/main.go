package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kerem-kaynak/treebank-tokenizer/pkg/tokenizer"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

// Test data
const (
	short     = "Don't stop."
	sentence  = `"I can't believe it's not butter," she said (quietly).`
	paragraph = `They'll say it's fine. It isn't! Prices rose 3.5% in Q1 -- gonna be worse... ` +
		`"Cannot continue," he wrote [sic].`
)

func main() {
	vocabPath := filepath.Join(os.TempDir(), "treebank-benchmark-vocab.txt")
	if len(os.Args) > 1 {
		vocabPath = os.Args[1]
	}

	// Load tokenizer and vocabulary
	fmt.Print("Loading vocabulary... ")
	start := time.Now()
	vocab, err := tokenizer.NewVocabulary(vocabPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer vocab.Close()

	tok := tokenizer.NewTokenizer(tokenizer.DefaultConfig())
	if vocab.WordCount() == 0 {
		if err := vocab.AddTokens(tok.Tokenize(sentence)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("done (%d tokens in %v)\n", vocab.WordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Full pipeline benchmarks
	printHeader("TREEBANK PIPELINE THROUGHPUT")
	bench("Short sentence", func() { tokenizer.TreebankWords(short) })
	bench("Quoted sentence", func() { tokenizer.TreebankWords(sentence) })
	bench("Paragraph", func() { tokenizer.TreebankWords(paragraph) })
	printFooter()
	fmt.Println()

	// Component breakdown
	printHeader("COMPONENT BREAKDOWN")

	bench("Vocabulary lookup", func() {
		vocab.Frequency("butter")
	})

	norm := tokenizer.NewNormalizer()
	bench("Normalizer (default)", func() {
		norm.Normalize(sentence)
	})

	tok.ClearCache()
	tok.Tokenize(sentence)
	bench("Tokenize (cache hit)", func() {
		tok.Tokenize(sentence)
	})

	bench("Tokenize (cache miss)", func() {
		tok.ClearCache()
		tok.Tokenize(sentence)
	})
	printFooter()
	fmt.Println()

	// Other splitters
	printHeader("OTHER SPLITTERS")
	bench("Words (UAX #29)", func() {
		tokenizer.Words(sentence)
	})
	bench("Sentences (UAX #29)", func() {
		tokenizer.Sentences(paragraph)
	})
	bench("Whitespace", func() {
		tokenizer.WhitespaceTokenize(sentence)
	})
	bench("Word/punctuation", func() {
		tokenizer.WordPunctTokenize(sentence)
	})
	bench("Stem English", func() {
		tokenizer.StemEnglish("running")
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
