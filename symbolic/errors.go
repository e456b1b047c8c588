// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package symbolic

import "fmt"

// ClassifyError reports that a parsed equation string could not be
// classified as a function definition, constant, or general equation.
type ClassifyError struct {
	Index int    // position of the offending string in the input list.
	Raw   string // the offending source string.
	Msg   string
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("classify error in equation %d (%q): %s", e.Index, e.Raw, e.Msg)
}

// Unresolved reports that no local, constant, body-derived override, or
// equation could provide a value for a requested variable. Err, when
// non-nil, is the reason the last candidate equation tried during the
// solver search failed -- e.g. a *cycleDetected if every candidate that
// referenced the variable was already on the evaluation stack.
type Unresolved struct {
	Name string
	Err  error
}

func (e *Unresolved) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unresolved variable %q: %s", e.Name, e.Err)
	}
	return fmt.Sprintf("unresolved variable %q", e.Name)
}

func (e *Unresolved) Unwrap() error { return e.Err }

// cycleDetected is raised internally when an equation already on the
// evaluation stack would have to be re-entered to resolve a variable.
// The solver search treats it like any other failed candidate and moves
// on to the next equation; it only surfaces past this package wrapped
// inside an Unresolved, as the reason the search ultimately gave up.
type cycleDetected struct{ eqID int }

func (e *cycleDetected) Error() string { return fmt.Sprintf("cycle at equation %d", e.eqID) }

// DivisionByZero reports x/0 during arithmetic evaluation.
type DivisionByZero struct{}

func (e *DivisionByZero) Error() string { return "division by zero" }

// DomainError reports a negative base raised to a non-integer exponent.
type DomainError struct {
	Base, Exp float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %g ^ %g is not a real number", e.Base, e.Exp)
}

// DepthExceeded reports that recursive evaluation exceeded Frame's depth
// cap, guarding against runaway function/equation recursion.
type DepthExceeded struct{ Max int }

func (e *DepthExceeded) Error() string { return fmt.Sprintf("recursion depth exceeded (max %d)", e.Max) }

// NoConvergence reports that Newton's method failed to converge within
// the configured iteration budget.
type NoConvergence struct {
	Var        string
	Iterations int
}

func (e *NoConvergence) Error() string {
	return fmt.Sprintf("no convergence solving for %q after %d iterations", e.Var, e.Iterations)
}

// SingularDerivative reports that Newton's method hit a near-zero
// derivative and could not continue.
type SingularDerivative struct{ Var string }

func (e *SingularDerivative) Error() string {
	return fmt.Sprintf("singular derivative solving for %q", e.Var)
}
