// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package symbolic

import "math"

// initialGuess is Newton's method's starting point, per §4.6. Every
// solve starts from it; no caller-supplied starting guess is taken (a
// variable already bound in frame.locals is returned as is and never
// reaches the root-finder).
const initialGuess = 1.0

// newtonSolve finds x such that residual(x) is within limits.Tolerance
// of zero, starting from initialGuess and stepping by Newton's method
// with a forward-difference derivative estimate. name is only used to
// annotate errors.
func newtonSolve(name string, limits Limits, residual func(float64) (float64, error)) (float64, error) {
	x := initialGuess
	for i := 0; i < limits.MaxIterations; i++ {
		fx, err := residual(x)
		if err != nil {
			return 0, err
		}
		if math.Abs(fx) < limits.Tolerance {
			return x, nil
		}
		fxh, err := residual(x + limits.DiffEpsilon)
		if err != nil {
			return 0, err
		}
		deriv := (fxh - fx) / limits.DiffEpsilon
		if math.Abs(deriv) < limits.SingularThreshold {
			return 0, &SingularDerivative{Var: name}
		}
		x = x - fx/deriv
	}
	return 0, &NoConvergence{Var: name, Iterations: limits.MaxIterations}
}
