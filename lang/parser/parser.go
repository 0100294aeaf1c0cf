// Package parser implements the Dang parser: recursive descent with
// precedence climbing for expressions, producing an *ast.Program.
package parser

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/darrenclark/dang/lang/ast"
	"github.com/darrenclark/dang/lang/scanner"
	"github.com/darrenclark/dang/lang/token"
)

// ParseSource parses a full program from src. The error, if non-nil, is
// guaranteed to be a scanner.ErrorList.
func ParseSource(ctx context.Context, src []byte) (*ast.Program, error) {
	var p parser
	p.init(src)
	prog := p.parseProgram()
	p.errors.Sort()
	return prog, p.errors.Err()
}

// ParseFile reads path (or stdin if path is "-") and parses it.
func ParseFile(ctx context.Context, path string) (*ast.Program, error) {
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
	return ParseSource(ctx, b)
}

// parser parses a token stream produced by scanner.Scanner into an AST. It
// buffers one token beyond the current one (peekTok), but every decision is
// made on the current token: an IDENT at the start of a statement is always
// parsed as an assignment, and an IDENT term followed by `(` is a call.
type parser struct {
	scanner scanner.Scanner
	errors  scanner.ErrorList

	tok token.Token
	val token.Value

	peekTok token.Token
	peekVal token.Value
}

func (p *parser) init(src []byte) {
	p.scanner.Init(src, p.errors.Add)
	p.tok = p.scanner.Scan(&p.val)
	p.peekTok = p.scanner.Scan(&p.peekVal)
}

func (p *parser) advance() {
	p.tok, p.val = p.peekTok, p.peekVal
	p.peekTok = p.scanner.Scan(&p.peekVal)
}

var errPanicMode = errors.New("panic")

// expect consumes the current token if it matches tok, otherwise records a
// diagnostic and aborts the current statement via panic(errPanicMode),
// recovered at the statement boundary in parseStmtRecover.
func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.val.Pos
	if p.tok != tok {
		p.errorExpected(pos, tok.GoString())
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

func (p *parser) error(pos token.Pos, msg string) {
	p.errors.Add(pos, msg)
}

func (p *parser) errorExpected(pos token.Pos, msg string) {
	var sb strings.Builder
	sb.WriteString("expected ")
	sb.WriteString(msg)
	if pos == p.val.Pos {
		sb.WriteString(", found ")
		if lit := p.tok.Literal(p.val); lit != "" {
			sb.WriteString(lit)
		} else {
			sb.WriteString(p.tok.GoString())
		}
	}
	p.error(pos, sb.String())
}

// parseProgram parses statements until EOF, recovering from a syntax error
// by resynchronizing to the next statement boundary so that as many
// diagnostics as possible are collected in one pass.
func (p *parser) parseProgram() *ast.Program {
	var body []ast.Stmt
	for p.tok != token.EOF {
		if s := p.parseStmtRecover(); s != nil {
			body = append(body, s)
		} else if p.tok == token.RBRACE {
			// a '}' with no open block: resync stops in front of it, so skip
			// it here (its error is already recorded) to keep making progress
			p.advance()
		}
	}
	return &ast.Program{Body: body}
}

func (p *parser) parseStmtRecover() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.resync()
			stmt = nil
		}
	}()
	return p.parseStmt()
}

// resync skips tokens until a statement boundary: past the next ';', or up
// to (not past) a '}', or EOF.
func (p *parser) resync() {
	for p.tok != token.EOF {
		if p.tok == token.SEMI {
			p.advance()
			return
		}
		if p.tok == token.RBRACE {
			return
		}
		p.advance()
	}
}
