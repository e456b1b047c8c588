// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package symbolic

import (
	"math"

	"github.com/durganmcbroom/iterative-physics/expr"
)

// OverrideLookup resolves a body-derived published variable such as
// s_α_B, v_α_B, m_B, I_B, theta_B or omega_B. It is supplied by the
// rigidbody package at tick time and is nil when evaluating outside any
// body context (build-time constant folding, standalone queries).
type OverrideLookup func(name string) (float64, bool)

// Evaluator evaluates expr.Node trees against an Environment, following
// the §4.5 variable resolution hierarchy:
//
//  1. frame.locals (a MathFunction's bound parameters)
//  2. constants (built-in or registered, including hati/hatj/hatk)
//  3. body-derived published overrides
//  4. the equation solver (Newton's method over registered Equations)
type Evaluator struct {
	Env    *Environment
	Limits Limits // zero value is treated as DefaultLimits.
}

// limits returns e.Limits, substituting DefaultLimits when e.Limits is
// the zero value (MaxIterations unset).
func (e *Evaluator) limits() Limits {
	if e.Limits.MaxIterations == 0 {
		return DefaultLimits()
	}
	return e.Limits
}

// Evaluate computes the numeric value of n under frame, resolving
// hati/hatj/hatk against axis and consulting overrides for body-derived
// names before falling back to the equation solver.
func (e *Evaluator) Evaluate(n expr.Node, frame Frame, axis Axis, overrides OverrideLookup) (float64, error) {
	lim := e.limits()
	if frame.depth > lim.MaxDepth {
		return 0, &DepthExceeded{Max: lim.MaxDepth}
	}
	switch t := n.(type) {
	case *expr.NumberNode:
		return t.Value, nil
	case *expr.VariableNode:
		return e.resolve(t.Name, frame, axis, overrides)
	case *expr.Arithmetic:
		return e.evalArithmetic(t, frame, axis, overrides)
	case *expr.Function:
		return e.evalCall(t, frame, axis, overrides)
	case *expr.Comparison:
		// Only meaningful as a standalone query ("does lhs equal rhs");
		// evaluation subtracts the two sides the way a root search does.
		l, err := e.Evaluate(t.Left, frame, axis, overrides)
		if err != nil {
			return 0, err
		}
		r, err := e.Evaluate(t.Right, frame, axis, overrides)
		if err != nil {
			return 0, err
		}
		return l - r, nil
	}
	return 0, &Unresolved{Name: "<unknown node>"}
}

func (e *Evaluator) evalArithmetic(a *expr.Arithmetic, frame Frame, axis Axis, overrides OverrideLookup) (float64, error) {
	l, err := e.Evaluate(a.Left, frame, axis, overrides)
	if err != nil {
		return 0, err
	}
	r, err := e.Evaluate(a.Right, frame, axis, overrides)
	if err != nil {
		return 0, err
	}
	switch a.Op {
	case expr.Add:
		return l + r, nil
	case expr.Sub:
		return l - r, nil
	case expr.Mul:
		return l * r, nil
	case expr.Div:
		if r == 0 {
			return 0, &DivisionByZero{}
		}
		return l / r, nil
	case expr.Pow:
		if l < 0 && r != math.Trunc(r) {
			return 0, &DomainError{Base: l, Exp: r}
		}
		return math.Pow(l, r), nil
	}
	return 0, &Unresolved{Name: "<unknown operator>"}
}

func (e *Evaluator) evalCall(fn *expr.Function, frame Frame, axis Axis, overrides OverrideLookup) (float64, error) {
	f, ok := e.Env.Functions[fn.Name]
	if !ok {
		return 0, &Unresolved{Name: fn.Name}
	}
	args := make([]float64, len(fn.Args))
	for i, a := range fn.Args {
		v, err := e.Evaluate(a, frame, axis, overrides)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	switch t := f.(type) {
	case *BakedFunction:
		if len(args) != t.NArgs {
			return 0, &Unresolved{Name: fn.Name}
		}
		return t.Call(args)
	case *MathFunction:
		if len(args) != len(t.Params) {
			return 0, &Unresolved{Name: fn.Name}
		}
		next := frame.withLocals(t.Params, args)
		return e.Evaluate(t.Body, next, axis, overrides)
	}
	return 0, &Unresolved{Name: fn.Name}
}

// resolve implements the §4.5 variable lookup hierarchy for a bare
// Variable reference.
func (e *Evaluator) resolve(name string, frame Frame, axis Axis, overrides OverrideLookup) (float64, error) {
	if v, ok := frame.local(name); ok {
		return v, nil
	}
	if v, ok := axisConstant(name, axis); ok {
		return v, nil
	}
	if v, ok := e.Env.Constants[name]; ok {
		return v, nil
	}
	if overrides != nil {
		if v, ok := overrides(name); ok {
			return v, nil
		}
	}
	return e.solve(name, frame, axis, overrides)
}

// solve searches registered equations for one that can be driven to
// zero as a function of name, via Newton's method (§4.6). Equations
// already on frame.stack are skipped (cycle detection): re-entering an
// equation that's already being solved silently disqualifies it rather
// than erroring, per §4.5/§4.6.
func (e *Evaluator) solve(name string, frame Frame, axis Axis, overrides OverrideLookup) (float64, error) {
	var lastErr error
	for _, eq := range e.Env.Equations {
		if !eq.FreeVars[name] {
			continue
		}
		if frame.onStack(eq.ID) {
			lastErr = &cycleDetected{eqID: eq.ID}
			continue
		}
		next := frame.withStackEntry(eq.ID)
		residual := func(x float64) (float64, error) {
			withGuess := next.withLocals([]string{name}, []float64{x})
			return e.Evaluate(eq.Ast, withGuess, axis, overrides)
		}
		root, err := newtonSolve(name, e.limits(), residual)
		if err != nil {
			lastErr = err
			continue
		}
		return root, nil
	}
	return 0, &Unresolved{Name: name, Err: lastErr}
}
