// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package symbolic

import (
	"fmt"

	"github.com/durganmcbroom/iterative-physics/expr"
)

// Equation is a general, unsolved relation registered from an equation
// string that did not classify as a function definition or a
// build-time constant. Its Ast root is always a Comparison. FreeVars is
// computed once, after every string in the input set has been
// classified, against the Environment's final function/constant tables.
type Equation struct {
	ID       int
	Ast      *expr.Comparison
	FreeVars map[string]bool
	Source   string
}

// Environment holds everything built from a body's (or the scene's)
// list of equation strings: the function table, the constant table, and
// the list of general equations available to the root-finder. Once
// constructed an Environment is never mutated -- a tick re-derives
// body-state overrides separately and layers them on top via Evaluate.
type Environment struct {
	Functions map[string]Function
	Constants map[string]float64
	Equations []*Equation
}

// equationCandidate is an equation string that survived classification
// as neither a function definition nor a constant, pending the
// free-vars finalization pass.
type equationCandidate struct {
	id     int
	ast    *expr.Comparison
	source string
}

// NewEnvironment parses and classifies every raw equation string in
// order, per §4.3:
//
//  1. If the left side is Function{name, args} and every arg is a bare
//     variable, register a MathFunction and drop any existing constant
//     of the same name.
//  2. Else if the left side is a bare Variable and the right side's
//     free variables are all already-registered functions/constants
//     (resolvable without any body state), evaluate it immediately and
//     register the result as a constant.
//  3. Else register it as a general Equation.
//
// Classification is strictly left-to-right and order sensitive: a
// constant can only be recognized from variables already known at that
// point in the list, matching the "at build time" language in the
// spec. Equation.FreeVars, by contrast, is computed once at the end
// against the environment's final tables, since an equation is only
// ever consulted after construction completes.
func NewEnvironment(raws []string) (*Environment, error) {
	env := &Environment{
		Functions: baseFunctions(),
		Constants: baseConstants(),
	}
	var candidates []equationCandidate

	for i, raw := range raws {
		node, err := expr.Parse(raw)
		if err != nil {
			return nil, &ClassifyError{Index: i, Raw: raw, Msg: err.Error()}
		}
		cmp, ok := node.(*expr.Comparison)
		if !ok {
			return nil, &ClassifyError{Index: i, Raw: raw, Msg: "expected an '=' comparison"}
		}

		if fn, ok := cmp.Left.(*expr.Function); ok {
			params, allVars := functionParams(fn)
			if allVars {
				delete(env.Constants, fn.Name)
				env.Functions[fn.Name] = &MathFunction{Name: fn.Name, Params: params, Body: cmp.Right}
				continue
			}
		}

		if v, ok := cmp.Left.(*expr.VariableNode); ok {
			if val, resolvable := env.tryResolveConstant(cmp.Right); resolvable {
				env.Constants[v.Name] = val
				continue
			}
		}

		candidates = append(candidates, equationCandidate{id: len(candidates), ast: cmp, source: raw})
	}

	for _, c := range candidates {
		env.Equations = append(env.Equations, &Equation{
			ID:       c.id,
			Ast:      c.ast,
			Source:   c.source,
			FreeVars: env.finalFreeVars(c.ast),
		})
	}
	return env, nil
}

func functionParams(fn *expr.Function) (params []string, allVars bool) {
	params = make([]string, len(fn.Args))
	for i, a := range fn.Args {
		v, ok := a.(*expr.VariableNode)
		if !ok {
			return nil, false
		}
		params[i] = v.Name
	}
	return params, true
}

// tryResolveConstant reports whether rhs can be evaluated purely from
// functions and constants already registered (no body state, no
// unresolved variables), and if so returns its value. A basis token
// (hati/hatj/hatk) never counts as resolvable here: it has no single
// value until an axis is chosen at query time, so any RHS referencing
// one must stay a general Equation, re-evaluated per axis, rather than
// being folded into a single build-time number.
func (env *Environment) tryResolveConstant(rhs expr.Node) (float64, bool) {
	free := expr.FreeVars(rhs, nil)
	for name := range free {
		if _, ok := env.Constants[name]; ok {
			continue
		}
		return 0, false
	}
	eval := &Evaluator{Env: env}
	val, err := eval.Evaluate(rhs, NewFrame(), AxisX, nil)
	if err != nil {
		return 0, false
	}
	return val, true
}

// finalFreeVars computes an Equation's free variables against env's
// completed function/constant tables: every Variable name reached minus
// names that resolve to a built-in basis token or a registered
// constant "at the time of use" (i.e. evaluation time, which for an
// immutable Environment is indistinguishable from build-completion
// time).
func (env *Environment) finalFreeVars(cmp *expr.Comparison) map[string]bool {
	raw := expr.FreeVars(cmp, nil)
	out := map[string]bool{}
	for name := range raw {
		if _, ok := axisConstant(name, AxisX); ok {
			continue
		}
		if _, ok := env.Constants[name]; ok {
			continue
		}
		out[name] = true
	}
	return out
}

func (env *Environment) String() string {
	return fmt.Sprintf("Environment{functions=%d constants=%d equations=%d}",
		len(env.Functions), len(env.Constants), len(env.Equations))
}
