// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package expr

import "testing"

func TestLexNumber(t *testing.T) {
	toks, err := Tokenize("3.14")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(toks) != 2 || toks[0].Kind != Number || toks[0].Num != 3.14 {
		t.Errorf("got %v, want a single Number(3.14) token", toks)
	}
}

func TestLexIdentifier(t *testing.T) {
	toks, err := Tokenize("hati")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(toks) != 2 || toks[0].Kind != Text || toks[0].Text != "hati" {
		t.Errorf("got %v, want a single Text(hati) token", toks)
	}
}

func TestLexOperatorsAndStructure(t *testing.T) {
	toks, err := Tokenize("a_B = (x+1)*2, y^3")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	want := []Kind{Text, Equals, OpenParen, Text, OpAdd, Number, CloseParen,
		OpMul, Number, Comma, Text, OpPow, Number, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got kind %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexSkipsWhitespace(t *testing.T) {
	toks, err := Tokenize("  1   +\t2\n")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(toks) != 4 {
		t.Errorf("got %d tokens, want 4 (1, +, 2, eof): %v", len(toks), toks)
	}
}

func TestLexUnexpectedChar(t *testing.T) {
	if _, err := Tokenize("1 + @"); err == nil {
		t.Error("expected LexError for '@', got nil")
	} else if _, ok := err.(*LexError); !ok {
		t.Errorf("got %T, want *LexError", err)
	}
}
