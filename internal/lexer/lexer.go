// Package lexer implements lexical analysis (tokenization) for newton.
package lexer

import (
	"unicode"

	"github.com/kdgonz7/newton/internal/diag"
	"github.com/kdgonz7/newton/internal/span"
	"github.com/kdgonz7/newton/internal/token"
)

// Lexer tokenizes source code into a sequence of tokens. It owns a
// single scan cursor over the pre-decoded source; the cursor only moves
// forward, with at most one rune of lookahead.
type Lexer struct {
	src      []rune
	filename string

	pos int // current read position, starts one before the first rune
}

// New creates a new Lexer for the given source text. The source is
// decoded into runes once so every cursor step is constant-time; all
// recorded spans are rune offsets.
func New(source, filename string) *Lexer {
	return &Lexer{
		src:      []rune(source),
		filename: filename,
		pos:      -1,
	}
}

// Tokenize scans the entire source and returns all tokens, or a single
// diagnostic for the first lexical error with no partial output. The
// cursor is exhausted afterwards; a Lexer is not meant to be reused.
func (l *Lexer) Tokenize() ([]token.Token, *diag.Diagnostic) {
	var tokens []token.Token

	for {
		ch, ok := l.next()
		if !ok {
			break
		}
		if unicode.IsSpace(ch) {
			continue
		}

		switch {
		case isIdentStart(ch):
			tokens = append(tokens, l.scanIdent())

		case ch == '"':
			tok, err := l.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case isDigit(ch):
			tok, err := l.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case ch == '(':
			tokens = append(tokens, l.punct(token.LPAREN, ch))
		case ch == ')':
			tokens = append(tokens, l.punct(token.RPAREN, ch))
		case ch == '{':
			tokens = append(tokens, l.punct(token.LBRACE, ch))
		case ch == '}':
			tokens = append(tokens, l.punct(token.RBRACE, ch))

		case ch == ':':
			access, err := l.scanAccess()
			if err != nil {
				return nil, err
			}
			// The identifier after '::' is scanned unconditionally and
			// emitted only as the second half of an access pair.
			ident := l.scanIdent()
			if access != nil {
				tokens = append(tokens, *access, ident)
			}

		case ch == ';':
			l.skipComment()

		default:
			return nil, l.errorf(diag.CodeUnrecognizedChar,
				span.New(l.pos, l.pos+1), "unrecognized character %q", ch)
		}
	}

	return tokens, nil
}

// ---- cursor primitives ----

// cur returns the rune under the cursor, or false if the cursor is
// outside the source.
func (l *Lexer) cur() (rune, bool) {
	if l.pos < 0 || l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

// next advances the cursor and returns the rune it lands on.
func (l *Lexer) next() (rune, bool) {
	l.pos++
	return l.cur()
}

// peek returns the rune after the cursor without advancing.
func (l *Lexer) peek() (rune, bool) {
	if l.pos+1 >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos+1], true
}

// advance moves the cursor forward without reading.
func (l *Lexer) advance() {
	l.pos++
}

// errorf builds an error diagnostic tagged with the lexer's source name.
func (l *Lexer) errorf(code string, s span.Span, format string, args ...interface{}) *diag.Diagnostic {
	d := diag.Errorf(code, s, format, args...)
	d.File = l.filename
	return d
}

// ---- sub-scanners ----

// punct builds a single-character punctuation token at the cursor.
// These spans are zero-width, anchored at the character's offset.
func (l *Lexer) punct(kind token.Kind, ch rune) token.Token {
	return token.Token{Kind: kind, Lexeme: string(ch), Span: span.New(l.pos, l.pos)}
}

// scanIdent consumes the maximal run of letters, digits, and
// underscores starting at the cursor, leaving the cursor on the first
// rune past the run. Reserved words come back as KEYWORD.
func (l *Lexer) scanIdent() token.Token {
	start := l.pos
	var body []rune

	for {
		ch, ok := l.cur()
		if !ok || !isIdentPart(ch) {
			break
		}
		body = append(body, ch)
		l.advance()
	}

	lexeme := string(body)
	return token.Token{
		Kind:   token.LookupIdent(lexeme),
		Lexeme: lexeme,
		Span:   span.New(start, l.pos),
	}
}

// scanString consumes a double-quoted string literal starting at the
// opening quote. Escape sequences are decoded one step at a time: \n
// becomes a newline, every other escaped rune passes through literally.
// The lexeme keeps both quotes around the decoded interior.
func (l *Lexer) scanString() (token.Token, *diag.Diagnostic) {
	start := l.pos
	escaped := false
	body := []rune{'"'}

	for {
		ch, ok := l.next()
		if !ok {
			break
		}

		switch {
		case ch == '"' && !escaped:
			l.pos++ // step past the closing quote
			body = append(body, '"')
			return token.Token{
				Kind:   token.STRING,
				Lexeme: string(body),
				Span:   span.New(start, l.pos),
			}, nil
		case ch == '\\' && !escaped:
			escaped = true
		case escaped:
			if ch == 'n' {
				body = append(body, '\n')
			} else {
				body = append(body, ch)
			}
			escaped = false
		default:
			body = append(body, ch)
		}
	}

	return token.Token{}, l.errorf(diag.CodeUnterminatedString,
		span.New(start, l.pos), "unterminated string literal")
}

// scanNumber consumes a run of digits, '.', and '_' starting at the
// cursor. Underscores are cosmetic grouping; no placement or decimal
// point validation happens here, and the lexeme stays undecoded text.
// Any other rune while the run is still being consumed is an error,
// so a number token is only produced when input ends with the run.
func (l *Lexer) scanNumber() (token.Token, *diag.Diagnostic) {
	start := l.pos
	var body []rune

	for {
		ch, ok := l.cur()
		if !ok {
			break
		}
		if !isDigit(ch) && ch != '.' && ch != '_' {
			return token.Token{}, l.errorf(diag.CodeInvalidNumberChar,
				span.New(l.pos, l.pos+1), "invalid character %q in number", ch)
		}
		body = append(body, ch)
		l.advance()
	}

	return token.Token{
		Kind:   token.NUMBER,
		Lexeme: string(body),
		Span:   span.New(start, l.pos),
	}, nil
}

// scanAccess handles a leading ':'. A second ':' is required; its
// absence is an error. With both colons present, the next rune must be
// alphabetic for a MEMBER_ACCESS token to be produced — otherwise no
// token and no error, and scanning continues from where the lookahead
// left the cursor.
func (l *Lexer) scanAccess() (*token.Token, *diag.Diagnostic) {
	start := l.pos

	ch, ok := l.next()
	if !ok || ch != ':' {
		d := l.errorf(diag.CodeMissingSecondColon,
			span.New(start, start+1), "member access expects a second ':'")
		d.Hint = "member access is written ::name"
		return nil, d
	}

	if _, ok := l.peek(); ok {
		ch, _ = l.next()
		if unicode.IsLetter(ch) {
			return &token.Token{
				Kind:   token.MEMBER_ACCESS,
				Lexeme: "::",
				Span:   span.New(start, l.pos),
			}, nil
		}
	}

	return nil, nil
}

// skipComment skips from ';' to end of line (or end of input).
func (l *Lexer) skipComment() {
	for {
		ch, ok := l.cur()
		if !ok || ch == '\n' {
			break
		}
		l.advance()
	}
}

// ---- character classification ----

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isIdentStart matches the runes that begin an identifier at dispatch
// time: ASCII letters and underscore only.
func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdentPart matches identifier continuation runes; unlike the start
// set this accepts any Unicode letter or digit.
func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
