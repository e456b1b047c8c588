// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rigidbody

import "math"

// Collision is one detected contact between bodies A and B (A.id <
// B.id), per §4.8: an outward normal n, penetration depth d, contact
// centroid C, and contact-point offsets from each body's center of
// mass.
type Collision struct {
	A, B       int     // indices into the body slice DetectCollisions was given.
	Normal     Vector  // outward normal, pointing from A toward B.
	Depth      float64 // penetration depth, >= 0.
	Centroid   Vector  // mean of all edge-edge intersection points.
	ContactA   Vector  // Centroid - A's center of mass.
	ContactB   Vector  // Centroid - B's center of mass.
}

type edge struct {
	p0, p1 Vector // endpoints, world space.
	index  int    // position in the owning polygon's edge list.
}

func edgesOf(vertices []Vector) []edge {
	edges := make([]edge, len(vertices))
	for i := range vertices {
		j := (i + 1) % len(vertices)
		edges[i] = edge{p0: vertices[i], p1: vertices[j], index: i}
	}
	return edges
}

// DetectCollisions runs §4.8's edge-edge intersection test over every
// ordered pair of bodies with A's index less than B's, to avoid
// duplicate and self pairs. bodies must each have >= 3 polygon
// vertices; a *DegeneratePolygon error is returned for any that don't.
func DetectCollisions(bodies []*Body) ([]Collision, error) {
	worlds := make([][]Vector, len(bodies))
	for i, b := range bodies {
		if len(b.Shape) < 3 {
			return nil, &DegeneratePolygon{Body: b.Name, Msg: "fewer than 3 vertices"}
		}
		worlds[i] = b.WorldVertices()
	}

	var out []Collision
	for a := 0; a < len(bodies); a++ {
		for b := a + 1; b < len(bodies); b++ {
			c, ok := detectPair(worlds[a], worlds[b])
			if !ok {
				continue
			}
			c.A, c.B = a, b
			c.ContactA = c.Centroid.Sub(bodies[a].Linear.Disp)
			c.ContactB = c.Centroid.Sub(bodies[b].Linear.Disp)
			out = append(out, c)
		}
	}
	return out, nil
}

// detectPair implements §4.8 steps 1-4 for a single ordered pair of
// world-space polygons.
func detectPair(worldA, worldB []Vector) (Collision, bool) {
	edgesA, edgesB := edgesOf(worldA), edgesOf(worldB)

	var points []Vector
	for _, ea := range edgesA {
		for _, eb := range edgesB {
			if p, ok := segmentIntersection(ea, eb); ok {
				points = append(points, p)
			}
		}
	}
	if len(points) < 2 {
		return Collision{}, false
	}

	centroid := Vector{}
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(points)))

	normal, refEdge, ok := nearestFaceNormal(centroid, edgesA, edgesB)
	if !ok {
		return Collision{}, false
	}

	depth := penetrationDepth(centroid, points, worldA, worldB, refEdge)
	if math.IsNaN(depth) || math.IsNaN(centroid.X) || math.IsNaN(centroid.Y) {
		return Collision{}, false
	}

	return Collision{Normal: normal, Depth: depth, Centroid: centroid}, true
}

// segmentIntersection solves P_a + t_a*d_a = P_b + t_b*d_b via 2x2
// matrix inversion, per §4.8 step 2. Parallel (singular) edges are
// ignored.
func segmentIntersection(ea, eb edge) (Vector, bool) {
	da := ea.p1.Sub(ea.p0)
	db := eb.p1.Sub(eb.p0)

	det := da.X*(-db.Y) - (-db.X)*da.Y
	if AeqZero(det) {
		return Vector{}, false
	}

	rhs := eb.p0.Sub(ea.p0)
	ta := (rhs.X*(-db.Y) - (-db.X)*rhs.Y) / det
	tb := (da.X*rhs.Y - da.Y*rhs.X) / det

	if ta < 0 || ta > 1 || tb < 0 || tb > 1 {
		return Vector{}, false
	}
	return ea.p0.Add(da.Scale(ta)), true
}

// refEdge names which polygon ("a" or "b") and which edge index within
// it produced the chosen contact normal.
type refEdge struct {
	which string
	index int
}

// nearestFaceNormal picks the outward normal of whichever edge (from
// either polygon) has its midpoint nearest to centroid, breaking ties
// by lowest edge index -- per §4.8 step 4 and the spec's explicit
// resolution of the Design Notes' open question on tie-breaking.
// Candidates from polygon A are considered before polygon B's, so an
// exact tie between an A edge and a B edge favors A's (lower
// encountered index first).
func nearestFaceNormal(centroid Vector, edgesA, edgesB []edge) (Vector, refEdge, bool) {
	type candidate struct {
		dist   float64
		normal Vector
		ref    refEdge
	}
	var best *candidate

	consider := func(edges []edge, which string) {
		for _, e := range edges {
			mid := e.p0.Add(e.p1).Scale(0.5)
			dist := mid.Sub(centroid).Len()
			n := e.p1.Sub(e.p0).Perp().Normalize()
			// Perp() rotates CCW; for a CCW-wound polygon that points
			// inward, so flip to get the outward normal.
			n = n.Scale(-1)
			if which == "b" {
				// n is B's own outward normal, which at a touching face
				// points roughly from B toward A -- flip it to match
				// Collision.Normal's documented A-to-B convention.
				n = n.Scale(-1)
			}
			cand := candidate{dist: dist, normal: n, ref: refEdge{which: which, index: e.index}}
			if best == nil || dist < best.dist {
				best = &cand
			}
		}
	}
	consider(edgesA, "a")
	consider(edgesB, "b")
	if best == nil {
		return Vector{}, refEdge{}, false
	}
	return best.normal, best.ref, true
}

// penetrationDepth implements §4.8 step 4's signed-area computation:
// the intersection polygon is the set of edge-edge intersection points
// together with each body's vertices that lie inside the other body,
// ordered angularly around centroid. Twice the absolute value of its
// shoelace area, divided by the reference edge's length, gives the
// penetration depth.
func penetrationDepth(centroid Vector, points []Vector, worldA, worldB []Vector, ref refEdge) float64 {
	poly := append([]Vector{}, points...)
	for _, v := range worldA {
		if pointInPolygon(v, worldB) {
			poly = append(poly, v)
		}
	}
	for _, v := range worldB {
		if pointInPolygon(v, worldA) {
			poly = append(poly, v)
		}
	}
	poly = sortAngularly(poly, centroid)

	area := shoelaceArea(poly)

	refEdges := worldA
	if ref.which == "b" {
		refEdges = worldB
	}
	i, j := ref.index, (ref.index+1)%len(refEdges)
	edgeLen := refEdges[j].Sub(refEdges[i]).Len()
	if AeqZero(edgeLen) {
		return 0
	}
	return math.Abs(2*area) / edgeLen
}

func pointInPolygon(p Vector, poly []Vector) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

func sortAngularly(points []Vector, about Vector) []Vector {
	out := append([]Vector{}, points...)
	angle := func(v Vector) float64 { return math.Atan2(v.Y-about.Y, v.X-about.X) }
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && angle(out[j-1]) > angle(out[j]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// shoelaceArea returns the signed area of poly via the shoelace
// formula.
func shoelaceArea(poly []Vector) float64 {
	if len(poly) < 3 {
		return 0
	}
	sum := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return sum / 2
}
