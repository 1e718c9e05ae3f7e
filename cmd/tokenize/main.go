package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/kerem-kaynak/treebank-tokenizer/pkg/tokenizer"
)

var (
	modeName   = kingpin.Flag("mode", "tokenize mode: "+modeList()).Short('m').Default(string(tokenizer.ModeTreebank)).String()
	configPath = kingpin.Flag("config", "YAML tokenizer config").Short('c').String()
	lowercase  = kingpin.Flag("lowercase", "lowercase word tokens").Bool()
	stem       = kingpin.Flag("stem", "replace words by their English stem").Bool()
	text       = kingpin.Arg("text", "text to tokenize; omit for interactive mode").Strings()
)

func modeList() string {
	names := make([]string, len(tokenizer.Modes))
	for i, m := range tokenizer.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func main() {
	kingpin.Parse()

	cfg := tokenizer.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = tokenizer.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Lowercase = cfg.Lowercase || *lowercase
	cfg.Stem = cfg.Stem || *stem

	mode, err := tokenizer.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tok := tokenizer.NewTokenizer(cfg)

	// If text provided as argument, tokenize and exit
	if len(*text) > 0 {
		printTokens(tok, mode, strings.Join(*text, " "), "")
		return
	}

	// Interactive mode
	fmt.Printf("Treebank Tokenizer (interactive mode, %s)\n", mode)
	fmt.Println("Type a sentence, press Enter to tokenize. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		printTokens(tok, mode, line, "  ")
		fmt.Println()
	}
}

func printTokens(tok *tokenizer.Tokenizer, mode tokenizer.Mode, text, indent string) {
	tokens, err := tok.TokenizeMode(mode, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	output, _ := json.Marshal(tokens)
	fmt.Printf("%s%s\n", indent, output)
}
