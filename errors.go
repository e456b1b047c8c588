// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package iterphys

import "fmt"

// BuildError wraps a failure to construct an Engine: a malformed
// equation string, a duplicate body name, or a body with non-positive
// mass/MOI or a degenerate shape. Construction aborts entirely on a
// BuildError -- no partial Engine is returned.
type BuildError struct {
	Msg string
	Err error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("iterphys: build: %s: %s", e.Msg, e.Err)
	}
	return fmt.Sprintf("iterphys: build: %s", e.Msg)
}

func (e *BuildError) Unwrap() error { return e.Err }

// RuntimeError reports a fatal failure during Tick: collision detection
// or resolution hit a degenerate polygon or produced non-finite state.
// A tick that fails this way leaves the Engine's bodies unchanged --
// the caller sees the world exactly as it was before the failed Tick.
type RuntimeError struct {
	Msg string
	Err error
}

func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("iterphys: tick: %s: %s", e.Msg, e.Err)
	}
	return fmt.Sprintf("iterphys: tick: %s", e.Msg)
}

func (e *RuntimeError) Unwrap() error { return e.Err }
