// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package symbolic

// Frame carries the state threaded through one call to Evaluate: the
// local bindings introduced by a MathFunction's parameters, the stack of
// equation IDs currently being solved (for cycle detection), and the
// current recursion depth.
//
// A Frame is cheap to derive: withLocals and withStackEntry each copy the
// map/slice they extend so a parent Frame is never mutated by a child
// evaluation.
type Frame struct {
	locals map[string]float64
	stack  []int
	depth  int
}

// NewFrame returns the empty root Frame used to start evaluating a
// top-level expression (an equation's right side, or a tick's variable
// query).
func NewFrame() Frame {
	return Frame{}
}

func (f Frame) local(name string) (float64, bool) {
	v, ok := f.locals[name]
	return v, ok
}

func (f Frame) withLocals(names []string, values []float64) Frame {
	next := make(map[string]float64, len(f.locals)+len(names))
	for k, v := range f.locals {
		next[k] = v
	}
	for i, n := range names {
		next[n] = values[i]
	}
	return Frame{locals: next, stack: f.stack, depth: f.depth + 1}
}

func (f Frame) onStack(eqID int) bool {
	for _, id := range f.stack {
		if id == eqID {
			return true
		}
	}
	return false
}

func (f Frame) withStackEntry(eqID int) Frame {
	next := make([]int, len(f.stack)+1)
	copy(next, f.stack)
	next[len(next)-1] = eqID
	return Frame{locals: f.locals, stack: next, depth: f.depth + 1}
}
