// Package token defines the token kinds produced by the lexer.
package token

import (
	"fmt"

	"github.com/kdgonz7/newton/internal/span"
)

// Kind represents the type of a token.
type Kind int

const (
	// Literals
	IDENT   Kind = iota // identifiers: x, write_newline
	KEYWORD             // reserved keywords: new, conditions, logic
	STRING              // string literals: "hello"
	NUMBER              // number literals: 123, 3.14, 12_000

	// Delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Member access: ::name
	MEMBER_ACCESS // ::

	// Operators declared for downstream stages. The scanner never
	// produces these today; see IsOperator.
	COLON     // :
	SEMICOLON // ;
	COMMA     // ,
	DOT       // .
	EQUAL     // =
	GT        // >
	LT        // <
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
)

var kindNames = map[Kind]string{
	IDENT:   "IDENT",
	KEYWORD: "KEYWORD",
	STRING:  "STRING",
	NUMBER:  "NUMBER",

	LPAREN: "(",
	RPAREN: ")",
	LBRACE: "{",
	RBRACE: "}",

	MEMBER_ACCESS: "::",

	COLON:     ":",
	SEMICOLON: ";",
	COMMA:     ",",
	DOT:       ".",
	EQUAL:     "=",
	GT:        ">",
	LT:        "<",
	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOperator reports whether the kind is one of the operator kinds
// reserved for later language stages. The scanner does not emit any of
// them: ':' always introduces member access, ';' starts a comment, and
// the rest are rejected as unrecognized characters.
func (k Kind) IsOperator() bool {
	return k >= COLON && k <= PERCENT
}

var keywords = map[string]Kind{
	"new":        KEYWORD,
	"conditions": KEYWORD,
	"logic":      KEYWORD,
}

// LookupIdent returns KEYWORD if ident is a reserved word, IDENT otherwise.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Token represents a lexical token with its kind, text, and source location.
// Lexeme is the literal scanned text: numbers stay undecoded, keywords keep
// their spelling, and string lexemes keep their surrounding quotes.
type Token struct {
	Kind   Kind      `json:"kind"`
	Lexeme string    `json:"lexeme"`
	Span   span.Span `json:"span"`
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span)
}
