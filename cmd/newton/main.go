// Command newton is the CLI entry point for the newton toolchain.
//
// Usage:
//
//	newton tokens <file>            Print tokens
//	newton tokens <file> --json     Print tokens as JSON
//	newton check  <file>            Lex only, report errors
//	newton repl                     Start interactive token explorer
package main

import (
	"fmt"
	"os"

	"github.com/kdgonz7/newton/internal/lexer"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "tokens":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "error: missing file argument")
			os.Exit(1)
		}
		source := readFile(os.Args[2])
		jsonMode := hasFlag("--json")
		cmdTokens(source, os.Args[2], jsonMode)
	case "check":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "error: missing file argument")
			os.Exit(1)
		}
		source := readFile(os.Args[2])
		cmdCheck(source, os.Args[2])
	case "repl":
		cmdRepl()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command '%s'\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  newton tokens <file> [--json]   Tokenize and print tokens")
	fmt.Fprintln(os.Stderr, "  newton check  <file>            Lex only, report errors")
	fmt.Fprintln(os.Stderr, "  newton repl                     Start interactive token explorer")
}

func readFile(filename string) string {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read file %s: %v\n", filename, err)
		os.Exit(1)
	}
	return string(source)
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[3:] {
		if arg == flag {
			return true
		}
	}
	return false
}

// ---- tokens command ----

func cmdTokens(source, filename string, jsonMode bool) {
	l := lexer.New(source, filename)
	tokens, diagErr := l.Tokenize()

	if diagErr != nil {
		printDiag(os.Stderr, source, diagErr)
		os.Exit(1)
	}

	if jsonMode {
		printTokensJSON(source, tokens)
	} else {
		printTokensText(os.Stdout, source, tokens)
	}
}

// ---- check command ----

func cmdCheck(source, filename string) {
	l := lexer.New(source, filename)
	if _, diagErr := l.Tokenize(); diagErr != nil {
		printDiag(os.Stderr, source, diagErr)
		os.Exit(1)
	}
}
