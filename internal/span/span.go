// Package span provides the source range type attached to tokens and
// diagnostics for error reporting.
package span

import "fmt"

// Span represents a half-open range [Start, End) of rune offsets into
// some source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// New creates a span from start to end.
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Len returns the rune length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span is zero-width (Start == End).
func (s Span) Empty() bool {
	return s.Len() == 0
}

// Perfect reports whether the span is well-formed, i.e. Start <= End.
func (s Span) Perfect() bool {
	return s.Start <= s.End
}

// Forward reports whether the span covers at least one rune.
func (s Span) Forward() bool {
	return s.Start < s.End
}

// Backward reports whether the span is inverted (Start > End).
// Construction does not forbid such spans; callers check.
func (s Span) Backward() bool {
	return s.Start > s.End
}

// Extract returns the substring of text covered by the span. Offsets
// are rune offsets, matching what the lexer records. An out-of-range
// or backward span panics; nothing is clamped. The bounds are checked
// against the rune count explicitly because the []rune conversion can
// allocate spare capacity, and slicing into that slack would otherwise
// succeed and return fabricated NUL runes.
func (s Span) Extract(text string) string {
	runes := []rune(text)
	if s.Start < 0 || s.End > len(runes) || s.Backward() {
		panic(fmt.Sprintf("span: %s out of range for %d runes", s, len(runes)))
	}
	return string(runes[s.Start:s.End])
}

// LineCol derives the 1-based line and column of a rune offset in text.
// Used when rendering diagnostics; spans themselves carry only offsets.
func LineCol(text string, offset int) (line, col int) {
	line, col = 1, 1
	for i, r := range []rune(text) {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
