package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kdgonz7/newton/internal/diag"
	"github.com/kdgonz7/newton/internal/span"
	"github.com/kdgonz7/newton/internal/token"
)

// ---- token output helpers ----

func printTokensText(w io.Writer, source string, tokens []token.Token) {
	for _, tok := range tokens {
		line, col := span.LineCol(source, tok.Span.Start)
		fmt.Fprintf(w, "%-12s %-20q %d:%d\n", tok.Kind, tok.Lexeme, line, col)
	}
}

func printTokensJSON(source string, tokens []token.Token) {
	type tokenJSON struct {
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
		Start  int    `json:"start"`
		End    int    `json:"end"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
	}

	toks := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		line, col := span.LineCol(source, tok.Span.Start)
		toks = append(toks, tokenJSON{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
			Line:   line,
			Column: col,
		})
	}

	printJSON(map[string]interface{}{"tokens": toks})
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: JSON encoding failed: %v\n", err)
		os.Exit(1)
	}
}

// ---- diagnostic output helpers ----

// printDiag renders a diagnostic, appending the line and column of the
// offending span derived from the source. The diagnostic already names
// its file.
func printDiag(w io.Writer, source string, d *diag.Diagnostic) {
	line, col := span.LineCol(source, d.Span.Start)
	fmt.Fprintf(w, "%s (%d:%d)\n", d, line, col)
}
