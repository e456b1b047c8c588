// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rigidbody

import (
	"fmt"

	"github.com/durganmcbroom/iterative-physics/symbolic"
)

// PublishOverrides builds the body-derived variable snapshot described
// in spec §4.5/§5: for every body B, x_B/y_B/s_x_B/s_y_B (position),
// v_x_B/v_y_B (velocity), m_B/I_B (scalars), and theta_B/omega_B
// (angular state). The snapshot is taken once, before any body in this
// tick is integrated, so every DoF resolution during the tick sees the
// same pre-tick world regardless of processing order.
func PublishOverrides(bodies []*Body) symbolic.OverrideLookup {
	vars := make(map[string]float64, len(bodies)*8)
	for _, b := range bodies {
		vars[fmt.Sprintf("x_%s", b.Name)] = b.Linear.Disp.X
		vars[fmt.Sprintf("y_%s", b.Name)] = b.Linear.Disp.Y
		vars[fmt.Sprintf("s_x_%s", b.Name)] = b.Linear.Disp.X
		vars[fmt.Sprintf("s_y_%s", b.Name)] = b.Linear.Disp.Y
		vars[fmt.Sprintf("v_x_%s", b.Name)] = b.Linear.Vel.X
		vars[fmt.Sprintf("v_y_%s", b.Name)] = b.Linear.Vel.Y
		vars[fmt.Sprintf("theta_%s", b.Name)] = b.Angular.Disp
		vars[fmt.Sprintf("omega_%s", b.Name)] = b.Angular.Vel
		vars[fmt.Sprintf("m_%s", b.Name)] = b.Mass
		vars[fmt.Sprintf("I_%s", b.Name)] = b.MOI
	}
	return func(name string) (float64, bool) {
		v, ok := vars[name]
		return v, ok
	}
}
