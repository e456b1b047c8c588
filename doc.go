// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package iterphys provides a headless, interactive 2D rigid-body
// physics engine whose distinguishing feature is that forces,
// velocities, and positions are not hard-coded physics formulas but
// user-supplied symbolic equations, parsed once at construction and
// evaluated numerically every tick.
//
// iterphys wraps three subsystems to provide its Engine:
//   - package expr: the lexer/parser producing the equation AST.
//   - package symbolic: environment construction, the evaluator, and
//     the Newton root-finder used to resolve unknown variables.
//   - package rigidbody: body state, the symplectic integrator, the
//     polygon collision detector, and the impulse resolver.
//
// Refer to the example_test.go file for a complete free-fall scene run
// through Engine.Tick.
package iterphys
