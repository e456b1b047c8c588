// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package symbolic

import "github.com/durganmcbroom/iterative-physics/expr"

// Function is a callable entry in an Environment's function table. It is
// implemented by MathFunction (user-defined, parsed from an equation
// string) and BakedFunction (a built-in implemented in Go).
type Function interface {
	function()
	// Arity returns the number of parameters the function accepts.
	Arity() int
}

// MathFunction is a user-defined function such as f(x,y) = x^2+y^2,
// registered by classify when an equation's left side is a Function
// node whose arguments are all bare variables.
type MathFunction struct {
	Name   string
	Params []string
	Body   expr.Node
}

func (*MathFunction) function()   {}
func (f *MathFunction) Arity() int { return len(f.Params) }

// BakedFunction wraps a Go implementation of a built-in such as sin or
// sqrt. Call receives already-evaluated argument values in order.
type BakedFunction struct {
	Name  string
	NArgs int
	Call  func(args []float64) (float64, error)
}

func (*BakedFunction) function()    {}
func (f *BakedFunction) Arity() int { return f.NArgs }
