// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package symbolic

// Limits bundles the configurable numeric knobs of §4.5 (recursion
// depth) and §4.6 (Newton's method), so callers outside this package
// (rigidbody.Config, via the engine) can tune them without this
// package depending on anything above it. The zero Limits is not
// valid on its own -- use DefaultLimits and override from there.
type Limits struct {
	MaxDepth          int
	DiffEpsilon       float64
	Tolerance         float64
	MaxIterations     int
	SingularThreshold float64
}

// DefaultLimits returns the numeric defaults named in spec §4.5/§4.6:
// recursion depth 64, forward-difference epsilon 1e-6, convergence
// tolerance 1e-9, 100 Newton iterations, singular-derivative threshold
// 1e-12.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:          64,
		DiffEpsilon:       1e-6,
		Tolerance:         1e-9,
		MaxIterations:     100,
		SingularThreshold: 1e-12,
	}
}
