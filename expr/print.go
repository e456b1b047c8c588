// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package expr

import (
	"strconv"
	"strings"
)

// Print renders a canonical, fully-parenthesized textual form of a Node.
// Print always wraps binary operations in parentheses so that the result
// re-parses to a Node equal to the input regardless of the grammar's
// precedence rules -- the round-trip property relied on in tests.
func Print(n Node) string {
	var b strings.Builder
	print_(&b, n)
	return b.String()
}

func print_(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case *NumberNode:
		// plain decimal: the lexer has no exponent syntax such as 1e+06.
		b.WriteString(strconv.FormatFloat(t.Value, 'f', -1, 64))
	case *VariableNode:
		b.WriteString(t.Name)
	case *Arithmetic:
		b.WriteByte('(')
		print_(b, t.Left)
		b.WriteString(t.Op.String())
		print_(b, t.Right)
		b.WriteByte(')')
	case *Function:
		b.WriteString(t.Name)
		b.WriteByte('(')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			print_(b, a)
		}
		b.WriteByte(')')
	case *Comparison:
		print_(b, t.Left)
		b.WriteByte('=')
		print_(b, t.Right)
	default:
		b.WriteString("?")
	}
}

// Equal reports whether two Nodes have the same shape and values. Used by
// round-trip tests since Node has no comparable identity of its own.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *NumberNode:
		y, ok := b.(*NumberNode)
		return ok && x.Value == y.Value
	case *VariableNode:
		y, ok := b.(*VariableNode)
		return ok && x.Name == y.Name
	case *Arithmetic:
		y, ok := b.(*Arithmetic)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Function:
		y, ok := b.(*Function)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Comparison:
		y, ok := b.(*Comparison)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}
