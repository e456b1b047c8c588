// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package symbolic

import (
	"math"
	"testing"

	"github.com/durganmcbroom/iterative-physics/expr"
)

func TestClassifyFunctionDefinition(t *testing.T) {
	env, err := NewEnvironment([]string{"f(x,y)=x^2+y^2"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	fn, ok := env.Functions["f"].(*MathFunction)
	if !ok {
		t.Fatalf("f not registered as a MathFunction")
	}
	if len(fn.Params) != 2 || fn.Params[0] != "x" || fn.Params[1] != "y" {
		t.Errorf("got params %v, want [x y]", fn.Params)
	}
}

func TestClassifyConstantChain(t *testing.T) {
	env, err := NewEnvironment([]string{"g=9.8", "a=2*g"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if env.Constants["g"] != 9.8 {
		t.Errorf("g = %g, want 9.8", env.Constants["g"])
	}
	if got := env.Constants["a"]; got != 19.6 {
		t.Errorf("a = %g, want 19.6", got)
	}
	if len(env.Equations) != 0 {
		t.Errorf("got %d equations, want 0 (both strings should be constants)", len(env.Equations))
	}
}

func TestClassifyVectorEquationStaysGeneral(t *testing.T) {
	env, err := NewEnvironment([]string{"a_A = -100*hatj"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if _, ok := env.Constants["a_A"]; ok {
		t.Fatalf("a_A folded into Constants; hati/hatj/hatk have no single value until an axis is chosen")
	}
	if len(env.Equations) != 1 {
		t.Fatalf("got %d equations, want 1", len(env.Equations))
	}
	eval := &Evaluator{Env: env}
	x, err := eval.Evaluate(&expr.VariableNode{Name: "a_A"}, NewFrame(), AxisX, nil)
	if err != nil {
		t.Fatalf("unexpected error resolving a_A on AxisX: %s", err)
	}
	// a_A is solved by Newton's method, which stops once the residual is
	// below its 1e-9 tolerance, so the x component is 0 only to that
	// tolerance.
	if math.Abs(x) >= 1e-9 {
		t.Errorf("a_A on AxisX = %g, want 0 (hatj is 0 on the x axis)", x)
	}
	y, err := eval.Evaluate(&expr.VariableNode{Name: "a_A"}, NewFrame(), AxisY, nil)
	if err != nil {
		t.Fatalf("unexpected error resolving a_A on AxisY: %s", err)
	}
	if y != -100 {
		t.Errorf("a_A on AxisY = %g, want -100", y)
	}
}

func TestClassifyEquationFallback(t *testing.T) {
	env, err := NewEnvironment([]string{"x+y=5"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(env.Equations) != 1 {
		t.Fatalf("got %d equations, want 1", len(env.Equations))
	}
	fv := env.Equations[0].FreeVars
	if !fv["x"] || !fv["y"] {
		t.Errorf("free vars = %v, want x and y", fv)
	}
}

func TestClassifyFunctionRemovesPriorConstant(t *testing.T) {
	env, err := NewEnvironment([]string{"c=3", "c(x)=x+1"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if _, ok := env.Constants["c"]; ok {
		t.Error("constant c should have been removed once c(x) was registered as a function")
	}
	if _, ok := env.Functions["c"]; !ok {
		t.Error("function c(x) was not registered")
	}
}

func TestClassifyRejectsNonComparison(t *testing.T) {
	if _, err := NewEnvironment([]string{"x+1"}); err == nil {
		t.Error("expected a ClassifyError for an equation string with no '='")
	}
}

func TestClassifyOrderSensitiveConstantResolution(t *testing.T) {
	// b references a before a is defined, so b cannot be folded to a
	// build-time constant yet and instead becomes a general equation.
	env, err := NewEnvironment([]string{"b=a+1", "a=5"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(env.Equations) != 1 {
		t.Fatalf("got %d equations, want 1 (b should not fold early)", len(env.Equations))
	}
	if env.Constants["a"] != 5 {
		t.Errorf("a = %g, want 5", env.Constants["a"])
	}
}
