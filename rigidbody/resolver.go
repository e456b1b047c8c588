// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rigidbody

// Resolve applies §4.9's impulse resolution and positional correction
// to bodies for every detected collision, using cfg's restitution,
// correction slop, and correction pass count. Collisions are resolved
// in the order given -- callers are expected to have already sorted
// them by ascending (A,B) pair id, per spec §5.
func Resolve(bodies []*Body, collisions []Collision, cfg Config) {
	for _, c := range collisions {
		applyImpulse(bodies[c.A], bodies[c.B], c, cfg)
	}
	for pass := 0; pass < cfg.correctionPasses; pass++ {
		for _, c := range collisions {
			positionalCorrection(bodies[c.A], bodies[c.B], c, cfg)
		}
	}
}

// applyImpulse implements §4.9's impulse magnitude and application
// formulas for one collision.
func applyImpulse(a, b *Body, c Collision, cfg Config) {
	n := c.Normal
	relVel := relativeVelocity(a, b, c)
	closingSpeed := relVel.Dot(n)
	if closingSpeed > 0 {
		return // bodies already separating.
	}

	invMA, invMB := a.InvMass(), b.InvMass()
	invIA, invIB := a.InvMOI(), b.InvMOI()

	raCrossN := c.ContactA.Cross(n)
	rbCrossN := c.ContactB.Cross(n)
	denom := invMA + invMB + raCrossN*raCrossN*invIA + rbCrossN*rbCrossN*invIB
	if AeqZero(denom) {
		return
	}

	j := -(1 + cfg.restitution) * closingSpeed / denom

	impulse := n.Scale(j)
	a.Linear.Vel = a.Linear.Vel.Sub(impulse.Scale(invMA))
	b.Linear.Vel = b.Linear.Vel.Add(impulse.Scale(invMB))
	a.Angular.Vel = a.Angular.Vel - c.ContactA.Cross(impulse)*invIA
	b.Angular.Vel = b.Angular.Vel + c.ContactB.Cross(impulse)*invIB
}

// relativeVelocity returns the contact-point relative velocity
// (v_B + omega_B x r_B) - (v_A + omega_A x r_A).
func relativeVelocity(a, b *Body, c Collision) Vector {
	vA := a.Linear.Vel.Add(Vector{-a.Angular.Vel * c.ContactA.Y, a.Angular.Vel * c.ContactA.X})
	vB := b.Linear.Vel.Add(Vector{-b.Angular.Vel * c.ContactB.Y, b.Angular.Vel * c.ContactB.X})
	return vB.Sub(vA)
}

// positionalCorrection implements §4.9's iterative sinking correction:
// push the bodies apart along the normal by depth*slop, weighted by
// inverse mass. Static bodies (inverse mass 0) never move.
func positionalCorrection(a, b *Body, c Collision, cfg Config) {
	invMA, invMB := a.InvMass(), b.InvMass()
	total := invMA + invMB
	if AeqZero(total) {
		return
	}
	correction := c.Normal.Scale(c.Depth * cfg.correctionSlop / total)
	a.Linear.Disp = a.Linear.Disp.Sub(correction.Scale(invMA))
	b.Linear.Disp = b.Linear.Disp.Add(correction.Scale(invMB))
}
