// Package expr implements the arithmetic expression engine: a small AST,
// a precedence-climbing parser, and a pure evaluator over float64 bindings.
// Computed columns are its main consumer.
package expr

import (
	"fmt"
	"strconv"

	"gradedb/internal/expr/ast"
	"gradedb/internal/expr/lexer"
)

// Operator precedences. Higher binds tighter.
const (
	precLowest  = 0
	precSum     = 1 // + -
	precProduct = 2 // * /
)

var precedences = map[lexer.TokenType]int{
	lexer.PLUS:     precSum,
	lexer.MINUS:    precSum,
	lexer.ASTERISK: precProduct,
	lexer.SLASH:    precProduct,
}

type parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

// Parse tokenizes and parses an arithmetic expression.
func Parse(input string) (ast.Expr, error) {
	l := lexer.New(input)
	var tokens []lexer.Token
	for {
		tok := l.NextToken()
		if tok.Type == lexer.ILLEGAL {
			return nil, fmt.Errorf("illegal character %q at column %d", tok.Literal, tok.Column)
		}
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	p := &parser{tokens: tokens}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()

	e, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if p.curTok.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected token %q at column %d", p.curTok.Literal, p.curTok.Column)
	}
	return e, nil
}

func (p *parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

func (p *parser) parseExpression(minPrec int) (ast.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		prec, isOp := precedences[p.curTok.Type]
		if !isOp || prec <= minPrec {
			return left, nil
		}
		op := p.curTok.Literal
		p.nextToken()
		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parsePrefix() (ast.Expr, error) {
	switch p.curTok.Type {
	case lexer.NUMBER:
		val, err := strconv.ParseFloat(p.curTok.Literal, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p.curTok.Literal, err)
		}
		e := &ast.NumberLiteral{Literal: p.curTok.Literal, Value: val}
		p.nextToken()
		return e, nil

	case lexer.IDENTIFIER:
		e := &ast.Variable{Name: p.curTok.Literal}
		p.nextToken()
		return e, nil

	case lexer.MINUS:
		p.nextToken()
		operand, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "-", Operand: operand}, nil

	case lexer.PAREN_OPEN:
		p.nextToken()
		e, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if p.curTok.Type != lexer.PAREN_CLOSE {
			return nil, fmt.Errorf("expected ), got %q at column %d", p.curTok.Literal, p.curTok.Column)
		}
		p.nextToken()
		return e, nil
	}
	return nil, fmt.Errorf("unexpected token %q at column %d", p.curTok.Literal, p.curTok.Column)
}
