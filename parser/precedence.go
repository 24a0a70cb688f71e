package parser

import "github.com/gomonkey/monkey/token"

// Operator precedence constants for the Pratt parser. Higher number binds
// tighter.
//
// Precedence hierarchy (lowest to highest):
//  1. LOWEST      - starting precedence for any expression
//  2. EQUALS      - == !=
//  3. LESSGREATER - < >
//  4. SUM         - + -
//  5. PRODUCT     - * /
//  6. PREFIX      - -x, !x
//  7. CALL        - myFunction(x)
//  8. INDEX       - myArray[0]
const (
	LOWEST int = iota
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
	INDEX
)

// precedences maps infix operator tokens to their binding precedence.
// Tokens absent from this table are not infix operators and parse at
// LOWEST, ending expression parsing.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

// peekPrecedence returns the precedence of p.peekToken, or LOWEST if it is
// not a registered infix operator.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// curPrecedence returns the precedence of p.curToken, or LOWEST if it is
// not a registered infix operator.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}
