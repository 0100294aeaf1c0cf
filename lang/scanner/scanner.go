// Package scanner implements the Dang lexer: it turns source bytes into a
// stream of token.Token values with associated literal text and position.
package scanner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/darrenclark/dang/lang/token"
)

// Error is a single scan-time diagnostic, tied to the position in the
// source where it was detected.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e Error) Error() string {
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%d:%d: %s", line, col, e.Msg)
}

// ErrorList accumulates Errors raised while scanning so the caller can
// report every lexical problem found in a pass rather than only the first.
type ErrorList []Error

// Add appends an error to the list.
func (el *ErrorList) Add(pos token.Pos, msg string) {
	*el = append(*el, Error{Pos: pos, Msg: msg})
}

// Sort orders the list by source position.
func (el ErrorList) Sort() {
	sort.Slice(el, func(i, j int) bool { return el[i].Pos < el[j].Pos })
}

func (el ErrorList) Error() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual errors so errors.Is/As work across the list.
func (el ErrorList) Unwrap() []error {
	errs := make([]error, len(el))
	for i, e := range el {
		errs[i] = e
	}
	return errs
}

// Err returns nil if the list is empty, otherwise the list itself as an
// error.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// ScanSource is a helper that tokenizes the full src in one pass, returning
// the token stream and any lexical errors encountered. Scanning continues
// past recoverable errors (illegal characters, unterminated strings are
// still fatal per the language's lexer contract, but are still reported
// through the returned error).
func ScanSource(ctx context.Context, src []byte) ([]token.TokenAndValue, error) {
	var (
		s      Scanner
		tokVal token.Value
		el     ErrorList
	)
	s.Init(src, el.Add)

	var toks []token.TokenAndValue
	for {
		tok := s.Scan(&tokVal)
		toks = append(toks, token.TokenAndValue{Token: tok, Value: tokVal})
		if tok == token.EOF {
			break
		}
	}
	el.Sort()
	return toks, el.Err()
}

// ScanFile reads path (or stdin if path is "-") and scans it.
func ScanFile(ctx context.Context, path string) ([]token.TokenAndValue, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return ScanSource(ctx, b)
}

// Scanner tokenizes a source buffer held entirely in memory, tracking line
// and column as it consumes bytes.
type Scanner struct {
	src []byte
	err func(pos token.Pos, msg string)

	off  int // byte offset of cur
	roff int // byte offset just past cur
	cur  byte
	line int
	col  int
}

// Init prepares the scanner to tokenize src. errHandler, if non-nil, is
// called for every lexical diagnostic raised while scanning.
func (s *Scanner) Init(src []byte, errHandler func(token.Pos, string)) {
	s.src = src
	s.err = errHandler
	s.off = 0
	s.roff = 0
	s.line = 1
	s.col = 0
	s.advance()
}

// peek returns the byte following cur without advancing, or 0 at EOF.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.cur == '\n' {
		s.line++
		s.col = 0
	}
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = 0
		return
	}
	s.off = s.roff
	s.cur = s.src[s.roff]
	s.roff++
	s.col++
}

func (s *Scanner) pos() token.Pos {
	return token.MakePos(s.line, s.col)
}

func (s *Scanner) error(pos token.Pos, msg string) {
	if s.err != nil {
		s.err(pos, msg)
	}
}

func (s *Scanner) errorf(pos token.Pos, format string, args ...any) {
	s.error(pos, fmt.Sprintf(format, args...))
}

// Scan returns the next token in the source, writing its literal/position
// payload into tokVal.
func (s *Scanner) Scan(tokVal *token.Value) token.Token {
	s.skipWhitespaceAndComments()

	pos := s.pos()
	start := s.off

	if s.isAtEnd() {
		*tokVal = token.Value{Pos: pos}
		return token.EOF
	}

	cur := s.cur
	switch {
	case isLetter(cur):
		lit := s.ident()
		*tokVal = token.Value{Raw: lit, Pos: pos}
		return token.LookupIdent(lit)

	case isDigit(cur):
		tok, lit := s.number()
		*tokVal = token.Value{Raw: lit, Pos: pos}
		return tok

	case cur == '"':
		lit := s.string(pos)
		*tokVal = token.Value{Raw: lit, Pos: pos}
		return token.STRING
	}

	s.advance()
	var tok token.Token
	switch cur {
	case '=':
		tok = token.EQ
	case '(':
		tok = token.LPAREN
	case ')':
		tok = token.RPAREN
	case '{':
		tok = token.LBRACE
	case '}':
		tok = token.RBRACE
	case ',':
		tok = token.COMMA
	case '-':
		tok = token.MINUS
	case '+':
		tok = token.PLUS
	case ';':
		tok = token.SEMI
	case '/':
		tok = token.SLASH
	case '*':
		tok = token.STAR
	default:
		s.errorf(pos, "unexpected character %q", cur)
		*tokVal = token.Value{Raw: string(cur), Pos: pos}
		return token.ILLEGAL
	}
	*tokVal = token.Value{Raw: string(s.src[start:s.off]), Pos: pos}
	return tok
}

func (s *Scanner) isAtEnd() bool {
	return s.off >= len(s.src)
}

func (s *Scanner) ident() string {
	start := s.off
	for !s.isAtEnd() && (isLetter(s.cur) || isDigit(s.cur)) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

func (s *Scanner) number() (token.Token, string) {
	start := s.off
	for !s.isAtEnd() && isDigit(s.cur) {
		s.advance()
	}
	tok := token.INT
	if !s.isAtEnd() && s.cur == '.' && isDigit(s.peek()) {
		tok = token.DOUBLE
		s.advance() // consume '.'
		for !s.isAtEnd() && isDigit(s.cur) {
			s.advance()
		}
	}
	return tok, string(s.src[start:s.off])
}

func (s *Scanner) string(pos token.Pos) string {
	s.advance() // consume opening quote
	start := s.off
	for !s.isAtEnd() && s.cur != '"' {
		s.advance()
	}
	if s.isAtEnd() {
		s.error(pos, "unterminated string literal")
		return string(s.src[start:s.off])
	}
	lit := string(s.src[start:s.off])
	s.advance() // consume closing quote
	return lit
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case !s.isAtEnd() && isWhitespace(s.cur):
			s.advance()
		case !s.isAtEnd() && s.cur == '/' && s.peek() == '/':
			for !s.isAtEnd() && s.cur != '\n' {
				s.advance()
			}
		case !s.isAtEnd() && s.cur == '/' && s.peek() == '*':
			s.advance()
			s.advance()
			for !s.isAtEnd() && !(s.cur == '*' && s.peek() == '/') {
				s.advance()
			}
			if !s.isAtEnd() {
				s.advance()
				s.advance()
			}
		default:
			return
		}
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == '_'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
