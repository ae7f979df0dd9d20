package expr

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse parses a Boolean expression such as "A & B # C & !D".
//
// Operators, lowest precedence first: OR ('#', '|', '+', '∨'), XOR ('$'),
// AND ('&', '*', '∧') and NOT ('!', '~', '¬'). The constants 0 and 1 are
// accepted wherever an identifier is.
func Parse(src string) (Expr, error) {
	lex := newLexer(src)
	p := parser{lex: lex}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := lex.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("col %d: unexpected token %q", tok.pos+1, tok.text)
	}
	return x, nil
}

// Lexer

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokNot
	tokAnd
	tokOr
	tokXor
	tokLParen
	tokRParen
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	s string
	i int
}

func newLexer(s string) *lexer { return &lexer{s: s} }

func (l *lexer) peek() token {
	pos := l.i
	tok := l.next()
	l.i = pos
	return tok
}

// glyphs are the multi-byte operator spellings.
var glyphs = []struct {
	text string
	kind tokenKind
}{
	{"¬", tokNot},
	{"∧", tokAnd},
	{"∨", tokOr},
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	start := l.i
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: start}
	}
	for _, g := range glyphs {
		if strings.HasPrefix(l.s[l.i:], g.text) {
			l.i += len(g.text)
			return token{kind: g.kind, text: g.text, pos: start}
		}
	}
	ch := l.s[l.i]
	switch ch {
	case '!', '~':
		l.i++
		return token{kind: tokNot, text: string(ch), pos: start}
	case '&', '*':
		l.i++
		return token{kind: tokAnd, text: string(ch), pos: start}
	case '|', '#', '+':
		l.i++
		return token{kind: tokOr, text: string(ch), pos: start}
	case '$':
		l.i++
		return token{kind: tokXor, text: "$", pos: start}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "(", pos: start}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")", pos: start}
	}

	if isIdentStart(ch) {
		l.i++
		for l.i < len(l.s) && isIdentPart(l.s[l.i]) {
			l.i++
		}
		return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
	}
	if isDigit(ch) {
		l.i++
		for l.i < len(l.s) && isDigit(l.s[l.i]) {
			l.i++
		}
		return token{kind: tokNumber, text: l.s[start:l.i], pos: start}
	}

	l.i++
	return token{kind: tokInvalid, text: string(ch), pos: start}
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Parser

type parser struct {
	lex *lexer
}

func (p *parser) parseExpr() (Expr, error) { return p.parseOr() }

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.lex.peek()
		if tok.kind != tokOr {
			break
		}
		p.lex.next()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = Or{A: left, B: right}
	}
	return left, nil
}

func (p *parser) parseXor() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.lex.peek()
		if tok.kind != tokXor {
			break
		}
		p.lex.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Xor{A: left, B: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.lex.peek()
		if tok.kind != tokAnd {
			break
		}
		p.lex.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And{A: left, B: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	tok := p.lex.peek()
	if tok.kind == tokNot {
		p.lex.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.lex.next()
	switch tok.kind {
	case tokIdent:
		return Ident{Name: tok.text}, nil
	case tokNumber:
		switch tok.text {
		case "0":
			return Const{Value: false}, nil
		case "1":
			return Const{Value: true}, nil
		}
		return nil, fmt.Errorf("col %d: invalid constant %q", tok.pos+1, tok.text)
	case tokLParen:
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if next := p.lex.next(); next.kind != tokRParen {
			return nil, fmt.Errorf("col %d: expected )", next.pos+1)
		}
		return x, nil
	case tokEOF:
		return nil, fmt.Errorf("col %d: unexpected end of expression", tok.pos+1)
	default:
		return nil, fmt.Errorf("col %d: unexpected token %q", tok.pos+1, tok.text)
	}
}
