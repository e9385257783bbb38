// Package calc evaluates restricted arithmetic expressions. Only digits, the
// decimal point, + - * /, and parentheses are accepted; anything else is
// rejected during tokenization, before any evaluation happens.
package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Errors returned by Evaluate. Syntax and tokenization failures all wrap
// ErrInvalidExpression so callers can classify them with errors.Is.
var (
	ErrInvalidExpression = fmt.Errorf("invalid expression")
	ErrEmptyExpression   = fmt.Errorf("expression is empty")
	ErrDivisionByZero    = fmt.Errorf("division by zero")
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
)

type token struct {
	kind  tokenKind
	value float64
}

// Evaluate parses and evaluates expr with the usual precedence
// (* / before + -, parentheses override). Unary minus is supported.
func Evaluate(expr string) (float64, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}

	p := &parser{tokens: tokens}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.tokens) {
		return 0, fmt.Errorf("%w: unexpected token at position %d", ErrInvalidExpression, p.pos)
	}
	return result, nil
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	runes := []rune(expr)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '+':
			tokens = append(tokens, token{kind: tokenPlus})
			i++
		case r == '-':
			tokens = append(tokens, token{kind: tokenMinus})
			i++
		case r == '*':
			tokens = append(tokens, token{kind: tokenStar})
			i++
		case r == '/':
			tokens = append(tokens, token{kind: tokenSlash})
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokenLParen})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokenRParen})
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			lit := string(runes[start:i])
			if strings.Count(lit, ".") > 1 {
				return nil, fmt.Errorf("%w: invalid number %q", ErrInvalidExpression, lit)
			}
			n, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid number %q", ErrInvalidExpression, lit)
			}
			tokens = append(tokens, token{kind: tokenNumber, value: n})
		default:
			return nil, fmt.Errorf("%w: character %q is not allowed", ErrInvalidExpression, string(r))
		}
	}

	return tokens, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		tok, ok := p.peek()
		if !ok || (tok.kind != tokenPlus && tok.kind != tokenMinus) {
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if tok.kind == tokenPlus {
			left += right
		} else {
			left -= right
		}
	}
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		tok, ok := p.peek()
		if !ok || (tok.kind != tokenStar && tok.kind != tokenSlash) {
			return left, nil
		}
		p.pos++

		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if tok.kind == tokenStar {
			left *= right
		} else {
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			left /= right
		}
	}
}

// parseFactor handles numbers, unary minus and parenthesized expressions.
func (p *parser) parseFactor() (float64, error) {
	tok, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrInvalidExpression)
	}

	switch tok.kind {
	case tokenNumber:
		p.pos++
		return tok.value, nil
	case tokenMinus:
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case tokenLParen:
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokenRParen {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidExpression)
		}
		p.pos++
		return v, nil
	default:
		return 0, fmt.Errorf("%w: unexpected token at position %d", ErrInvalidExpression, p.pos)
	}
}
