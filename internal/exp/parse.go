package exp

import (
	"fmt"
	"strconv"
)

// Parse reads a term from the syntax String produces: integer literals,
// names, '*' products (left associative), parentheses and
// "let name = init in body". "let" and "in" are reserved words.
func Parse(src string) (Exp, error) {
	p := &parser{src: src}
	e, err := p.parseExpr()
	if err != nil {
		return Exp{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Exp{}, fmt.Errorf("exp: unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return e, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) parseExpr() (Exp, error) {
	e, err := p.parseTerm()
	if err != nil {
		return Exp{}, err
	}
	for {
		p.skipSpace()
		if !p.eat('*') {
			return e, nil
		}
		r, err := p.parseTerm()
		if err != nil {
			return Exp{}, err
		}
		e = Mul(e, r)
	}
}

func (p *parser) parseTerm() (Exp, error) {
	p.skipSpace()
	if p.pos == len(p.src) {
		return Exp{}, fmt.Errorf("exp: unexpected end of input")
	}
	switch {
	case p.eat('('):
		e, err := p.parseExpr()
		if err != nil {
			return Exp{}, err
		}
		p.skipSpace()
		if !p.eat(')') {
			return Exp{}, fmt.Errorf("exp: missing ')' at offset %d", p.pos)
		}
		return e, nil
	case p.startsNumber():
		return p.parseNumber()
	case p.startsIdent():
		start := p.pos
		name := p.ident()
		switch name {
		case "let":
			return p.parseLet()
		case "in":
			return Exp{}, fmt.Errorf("exp: unexpected keyword %q at offset %d", name, start)
		}
		return Var(name), nil
	}
	return Exp{}, fmt.Errorf("exp: unexpected character %q at offset %d", p.src[p.pos], p.pos)
}

// parseLet is entered with the "let" keyword already consumed.
func (p *parser) parseLet() (Exp, error) {
	p.skipSpace()
	if !p.startsIdent() {
		return Exp{}, fmt.Errorf("exp: expected name after \"let\" at offset %d", p.pos)
	}
	start := p.pos
	name := p.ident()
	if name == "let" || name == "in" {
		return Exp{}, fmt.Errorf("exp: %q cannot be bound at offset %d", name, start)
	}
	p.skipSpace()
	if !p.eat('=') {
		return Exp{}, fmt.Errorf("exp: expected '=' at offset %d", p.pos)
	}
	bind, err := p.parseExpr()
	if err != nil {
		return Exp{}, err
	}
	p.skipSpace()
	if kwStart := p.pos; !p.startsIdent() || p.ident() != "in" {
		return Exp{}, fmt.Errorf("exp: expected \"in\" at offset %d", kwStart)
	}
	body, err := p.parseExpr()
	if err != nil {
		return Exp{}, err
	}
	return Let(name, bind, body), nil
}

func (p *parser) parseNumber() (Exp, error) {
	start := p.pos
	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return Exp{}, fmt.Errorf("exp: bad number %q at offset %d: %w", p.src[start:p.pos], start, err)
	}
	return Num(n), nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eat(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) startsNumber() bool {
	if p.pos >= len(p.src) {
		return false
	}
	if isDigit(p.src[p.pos]) {
		return true
	}
	return p.src[p.pos] == '-' && p.pos+1 < len(p.src) && isDigit(p.src[p.pos+1])
}

func (p *parser) startsIdent() bool {
	return p.pos < len(p.src) && isIdentStart(p.src[p.pos])
}

// ident is entered with startsIdent already checked.
func (p *parser) ident() string {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
