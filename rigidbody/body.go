// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rigidbody

// StaticMassThreshold is the mass at or above which a Body is treated as
// immovable: its inverse mass and inverse moment of inertia are treated
// as zero in all dynamics rather than encoding "static" as a separate
// flag, per spec's Design Notes.
const StaticMassThreshold = 1e12

// BodyState pairs a displacement with a velocity for one set of degrees
// of freedom. T is Vector for the linear state and float64 for the
// angular state.
type BodyState[T any] struct {
	Disp T
	Vel  T
}

// BodyProperties holds the two scalar properties every Body carries:
// mass and moment of inertia. Both must be strictly positive; a body at
// or above StaticMassThreshold is treated as static.
type BodyProperties struct {
	Mass float64
	MOI  float64
}

// Body is one rigid body in the simulation: a unique name (how it is
// addressed from user equations), a polygon shape in local coordinates,
// linear and angular state, and its physical properties. Color is
// opaque to the core -- it is carried through so a host renderer can
// style bodies, but no simulation code reads it.
type Body struct {
	Name  string
	Shape []Vector // local-space polygon vertices, >= 3, CCW winding.
	Color string

	Linear  BodyState[Vector]
	Angular BodyState[float64]

	BodyProperties
}

// InvMass returns 0 for a static body (mass >= StaticMassThreshold),
// otherwise 1/mass.
func (b *Body) InvMass() float64 {
	if b.Mass >= StaticMassThreshold {
		return 0
	}
	return 1 / b.Mass
}

// InvMOI returns 0 for a static body, otherwise 1/MOI.
func (b *Body) InvMOI() float64 {
	if b.Mass >= StaticMassThreshold {
		return 0
	}
	return 1 / b.MOI
}

// WorldVertices transforms b's local-space polygon into world space
// using its current displacement and angle.
func (b *Body) WorldVertices() []Vector {
	out := make([]Vector, len(b.Shape))
	for i, v := range b.Shape {
		out[i] = v.RotatedBy(b.Angular.Disp).Add(b.Linear.Disp)
	}
	return out
}

// Rectangle returns the four local-space vertices (CCW, starting at the
// bottom-left) of an axis-aligned rectangle of the given width and
// height, centered at the local origin -- the shape construction used
// by the supplied reference implementation (spec §3).
func Rectangle(width, height float64) []Vector {
	hw, hh := width/2, height/2
	return []Vector{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	}
}
