// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package rigidbody

import "testing"

func unitSquareAt(x, y float64) *Body {
	return &Body{
		Name:           "sq",
		Shape:          Rectangle(1, 1),
		Linear:         BodyState[Vector]{Disp: Vector{x, y}},
		BodyProperties: BodyProperties{Mass: 1, MOI: 1},
	}
}

func TestDetectCollisionsNoOverlap(t *testing.T) {
	a := unitSquareAt(0, 0)
	b := unitSquareAt(1.5, 0)
	cols, err := DetectCollisions([]*Body{a, b})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(cols) != 0 {
		t.Errorf("got %d collisions, want 0 for non-overlapping squares", len(cols))
	}
}

func TestDetectCollisionsOverlap(t *testing.T) {
	a := unitSquareAt(0, 0)
	b := unitSquareAt(0.5, 0)
	cols, err := DetectCollisions([]*Body{a, b})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(cols) != 1 {
		t.Fatalf("got %d collisions, want 1 for overlapping squares", len(cols))
	}
	c := cols[0]
	if c.Depth <= 0 {
		t.Errorf("penetration depth = %g, want > 0", c.Depth)
	}
	if absf(c.Normal.X) < 0.99 || absf(c.Normal.Y) > 0.01 {
		t.Errorf("normal = %v, want ~(+-1, 0)", c.Normal)
	}
}

func TestDetectCollisionsRejectsDegeneratePolygon(t *testing.T) {
	a := unitSquareAt(0, 0)
	a.Shape = []Vector{{0, 0}, {1, 0}}
	b := unitSquareAt(0.5, 0)
	if _, err := DetectCollisions([]*Body{a, b}); err == nil {
		t.Error("expected a *DegeneratePolygon error for a 2-vertex shape")
	}
}

func TestNearestFaceNormalFlipsForBEdge(t *testing.T) {
	// A CCW-wound B polygon occupying x in [0,2]; its left edge at x=0
	// is the nearest face to the origin-centered contact.
	edgesB := []edge{
		{p0: Vector{0, 1}, p1: Vector{0, -1}, index: 0},
	}
	// A single far-away A edge so B's edge always wins on distance.
	edgesA := []edge{
		{p0: Vector{-10, 1}, p1: Vector{-10, -1}, index: 0},
	}
	n, ref, ok := nearestFaceNormal(Vector{0, 0}, edgesA, edgesB)
	if !ok {
		t.Fatal("expected a normal to be found")
	}
	if ref.which != "b" {
		t.Fatalf("got nearest edge from polygon %q, want \"b\"", ref.which)
	}
	// B's own outward normal here is (-1,0) (pointing away from B, into
	// A); Collision.Normal's documented A-to-B convention requires the
	// opposite: (+1,0), pointing from A's side toward B's interior.
	if n.X < 0.99 || absf(n.Y) > 1e-9 {
		t.Errorf("normal = %v, want ~(1, 0) pointing from A toward B", n)
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
