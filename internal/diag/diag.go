// Package diag provides the diagnostic (error/warning) types reported
// by the lexer.
package diag

import (
	"fmt"

	"github.com/kdgonz7/newton/internal/span"
)

// Stable diagnostic codes for the lexical failure taxonomy.
const (
	CodeUnterminatedString = "E1001" // string literal reached end of input
	CodeInvalidNumberChar  = "E1002" // disallowed character inside a number
	CodeUnrecognizedChar   = "E1003" // character starts no known token
	CodeMissingSecondColon = "E1004" // ':' not followed by a second ':'
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents a located lexical diagnostic message.
type Diagnostic struct {
	Code     string    `json:"code"`           // stable error code, e.g. "E1001"
	Severity Severity  `json:"severity"`       // error or warning
	Message  string    `json:"message"`        // human-readable description
	File     string    `json:"file,omitempty"` // source name, e.g. "main.newton" or "<repl>"
	Span     span.Span `json:"span"`           // offending source range
	Hint     string    `json:"hint,omitempty"` // optional hint
}

// String returns a human-readable representation of the diagnostic.
func (d *Diagnostic) String() string {
	loc := d.Span.String()
	if d.File != "" {
		loc = d.File + ":" + loc
	}
	msg := fmt.Sprintf("[%s] %s at %s: %s", d.Code, d.Severity, loc, d.Message)
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}

// Error makes *Diagnostic usable as an error value.
func (d *Diagnostic) Error() string {
	return d.String()
}

// Errorf creates an error diagnostic at the given span.
func Errorf(code string, s span.Span, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

// Warningf creates a warning diagnostic at the given span.
func Warningf(code string, s span.Span, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}
