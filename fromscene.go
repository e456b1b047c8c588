// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package iterphys

import "github.com/durganmcbroom/iterative-physics/scene"

// FromScene converts a loaded scene.Document into New's construction
// inputs.
func FromScene(doc scene.Document) (bodies []BodySpec, equations []string, dt float64) {
	bodies = make([]BodySpec, len(doc.Bodies))
	for i, b := range doc.Bodies {
		bodies[i] = BodySpec{
			Name: b.Name, Mass: b.Mass, Width: b.Width, Height: b.Height,
			X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Theta: b.Theta, Color: b.Color,
		}
	}
	return bodies, doc.Equations, doc.DT
}
