// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package expr provides a small hand-rolled lexer and recursive descent
// parser for the arithmetic/comparison language used to describe body
// kinematics: numbers, variables, function calls, implicit multiplication,
// and a single top-level comparison ("=").
//
// Package expr is provided as part of the iterative-physics engine.
package expr

import (
	"strconv"
	"unicode"
)

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// Lexer scans a string into a flat token stream with one rune of lookahead.
// A Lexer value only moves forward and has no rewind; Tokenize builds a new
// Lexer on every call, so lexing a source again starts from its beginning.
type Lexer struct {
	src []rune
	pos int
}

// NewLexer returns a Lexer over the given source string.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// Tokenize scans the full source and returns the resulting tokens, always
// terminated by a single EOF token.
func Tokenize(src string) ([]Token, error) {
	lx := NewLexer(src)
	var toks []Token
	for {
		t, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Kind == EOF {
			return toks, nil
		}
	}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.pos], true
}

// Next scans and returns the next token, advancing the lexer's position.
func (lx *Lexer) Next() (Token, error) {
	lx.skipSpace()
	start := lx.pos
	c, ok := lx.peek()
	if !ok {
		return Token{Kind: EOF, Pos: start}, nil
	}

	switch {
	case unicode.IsDigit(c) || c == '.':
		return lx.lexNumber()
	case unicode.IsLetter(c) || c == '_':
		return lx.lexText()
	case c == '+':
		lx.pos++
		return Token{Kind: OpAdd, Text: "+", Pos: start}, nil
	case c == '-':
		lx.pos++
		return Token{Kind: OpSub, Text: "-", Pos: start}, nil
	case c == '*':
		lx.pos++
		return Token{Kind: OpMul, Text: "*", Pos: start}, nil
	case c == '/':
		lx.pos++
		return Token{Kind: OpDiv, Text: "/", Pos: start}, nil
	case c == '^':
		lx.pos++
		return Token{Kind: OpPow, Text: "^", Pos: start}, nil
	case c == '(':
		lx.pos++
		return Token{Kind: OpenParen, Text: "(", Pos: start}, nil
	case c == ')':
		lx.pos++
		return Token{Kind: CloseParen, Text: ")", Pos: start}, nil
	case c == ',':
		lx.pos++
		return Token{Kind: Comma, Text: ",", Pos: start}, nil
	case c == '=':
		lx.pos++
		return Token{Kind: Equals, Text: "=", Pos: start}, nil
	default:
		return Token{}, &LexError{Pos: start, Char: c}
	}
}

func (lx *Lexer) skipSpace() {
	for {
		c, ok := lx.peek()
		if !ok || !unicode.IsSpace(c) {
			return
		}
		lx.pos++
	}
}

// lexNumber scans a run of digits with at most one decimal point.
func (lx *Lexer) lexNumber() (Token, error) {
	start := lx.pos
	sawDot := false
	for {
		c, ok := lx.peek()
		if !ok {
			break
		}
		if c == '.' {
			if sawDot {
				break
			}
			sawDot = true
			lx.pos++
			continue
		}
		if !unicode.IsDigit(c) {
			break
		}
		lx.pos++
	}
	text := string(lx.src[start:lx.pos])
	val, err := parseFloat(text)
	if err != nil {
		return Token{}, &LexError{Pos: start, Char: rune(text[0])}
	}
	return Token{Kind: Number, Num: val, Text: text, Pos: start}, nil
}

// lexText scans a letter or underscore followed by any run of letters,
// digits and underscores, the identifier alphabet for variables, function
// names (including log2), and constants.
func (lx *Lexer) lexText() (Token, error) {
	start := lx.pos
	for {
		c, ok := lx.peek()
		if !ok || !(unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_') {
			break
		}
		lx.pos++
	}
	return Token{Kind: Text, Text: string(lx.src[start:lx.pos]), Pos: start}, nil
}
