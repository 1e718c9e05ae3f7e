package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kerem-kaynak/treebank-tokenizer/pkg/tokenizer"
)

// runCommand parses args like main does and runs the command against a
// freshly opened vocabulary, closing it afterwards.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	command, err := app.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}

	vocab, err := tokenizer.NewVocabulary(*vocabPath)
	if err != nil {
		t.Fatalf("NewVocabulary: %v", err)
	}
	runErr := run(command, vocab)
	if err := vocab.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	return runErr
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")

	if err := runCommand(t, "--vocab", path, "add", "can", "not", "can"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := runCommand(t, "--vocab", path, "contains", "can"); err != nil {
		t.Errorf("contains can: %v", err)
	}
	if err := runCommand(t, "--vocab", path, "contains", "cat"); err != errNotFound {
		t.Errorf("contains cat = %v, want errNotFound", err)
	}
	if err := runCommand(t, "--vocab", path, "add", "two words"); err == nil {
		t.Error("Expected error adding a token with whitespace")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "can\t2\nnot\t1\n"; string(data) != want {
		t.Errorf("vocabulary file = %q, want %q", data, want)
	}
}

func TestRun_Build(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.txt")
	corpus := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(corpus, []byte("Don't stop.\nDon't go.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "--vocab", path, "build", corpus); err != nil {
		t.Fatalf("build: %v", err)
	}

	vocab, err := tokenizer.NewVocabulary(path)
	if err != nil {
		t.Fatal(err)
	}
	defer vocab.Close()

	for tok, want := range map[string]uint64{"Do": 2, "n't": 2, ".": 2, "stop": 1, "go": 1} {
		if got := vocab.Frequency(tok); got != want {
			t.Errorf("Frequency(%q) = %d, want %d", tok, got, want)
		}
	}
}
