// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rigidbody

import "fmt"

// DegeneratePolygon reports that a body's polygon has fewer than 3
// vertices and so cannot produce a collision manifold. A contact whose
// computation yields NaN is not reported this way; DetectCollisions
// drops it.
type DegeneratePolygon struct {
	Body string
	Msg  string
}

func (e *DegeneratePolygon) Error() string {
	return fmt.Sprintf("degenerate polygon on body %q: %s", e.Body, e.Msg)
}

// NumericalInstability reports that a body's state became non-finite
// (NaN or +/-Inf) after integration or resolution.
type NumericalInstability struct {
	Body string
}

func (e *NumericalInstability) Error() string {
	return fmt.Sprintf("numerical instability on body %q", e.Body)
}

// Warning is a non-fatal per-DoF integration failure: every candidate
// in the §4.7 precedence ladder failed to resolve, so the DoF was left
// unchanged this tick.
type Warning struct {
	Body   string
	DOF    string
	Reason error
}

func (w Warning) String() string {
	return fmt.Sprintf("body %q dof %q left unchanged: %s", w.Body, w.DOF, w.Reason)
}
