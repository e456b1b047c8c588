// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package expr

// token.go defines the lexical tokens produced by the Lexer and consumed
// by the Parser.

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

// Token kinds.
const (
	Number     Kind = iota // a floating point literal, eg: "3.14"
	Text                   // an identifier: a variable, function, or constant name
	OpAdd                  // "+"
	OpSub                  // "-"
	OpMul                  // "*"
	OpDiv                  // "/"
	OpPow                  // "^"
	OpenParen              // "("
	CloseParen             // ")"
	Comma                  // ","
	Equals                 // "="
	EOF                    // end of input, synthesized by the Lexer
)

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind Kind    // the class of token.
	Num  float64 // valid when Kind == Number.
	Text string  // valid when Kind == Text; the raw lexeme otherwise.
	Pos  int     // rune offset into the source where this token starts.
}

// String renders a Token for error messages and debugging.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("%g", t.Num)
	case Text:
		return t.Text
	case EOF:
		return "<eof>"
	default:
		return t.Text
	}
}

// isAddSub and isMulDiv report whether the token is one of the four
// arithmetic operators at their two precedence levels (OpPow, which
// parses at its own precedence level, is excluded).
func (t Token) isAddSub() bool { return t.Kind == OpAdd || t.Kind == OpSub }
func (t Token) isMulDiv() bool { return t.Kind == OpMul || t.Kind == OpDiv }

// startsAtom reports whether this token can begin an atom, used to detect
// implicit multiplication: "2x", "3(y+2)", "2sin(x)".
func (t Token) startsAtom() bool {
	return t.Kind == Number || t.Kind == Text || t.Kind == OpenParen
}
