// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package rigidbody

import (
	"testing"

	"github.com/durganmcbroom/iterative-physics/symbolic"
)

func TestIntegrateBodyFreeFallMatchesLeapfrogFormula(t *testing.T) {
	env, err := symbolic.NewEnvironment([]string{"a_A = -g*hatj", "g = 10"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	eval := &symbolic.Evaluator{Env: env}

	body := &Body{Name: "A", BodyProperties: BodyProperties{Mass: 1, MOI: 1}}
	const dt = 0.01
	const steps = 100

	for i := 0; i < steps; i++ {
		overrides := PublishOverrides([]*Body{body})
		// No equation drives theta_A, so theta (and only theta) warns.
		if warns := IntegrateBody(eval, body, dt, overrides); len(warns) != 1 || warns[0].DOF != "theta" {
			t.Fatalf("step %d: got warnings %v, want exactly one, for theta", i, warns)
		}
	}

	if !Aeq(body.Linear.Vel.Y, -10.0) {
		t.Errorf("final v_y = %g, want ~-10.0", body.Linear.Vel.Y)
	}
	wantY := -5.05 // y0=0 - 1/2*10*1^2 - 10*dt/2
	if got := body.Linear.Disp.Y; got < wantY-1e-6 || got > wantY+1e-6 {
		t.Errorf("final y = %g, want ~%g", got, wantY)
	}
	// a_A on the x axis is solved by Newton's method to within its 1e-9
	// tolerance of 0, not to exactly 0.
	if !AeqZero(body.Linear.Vel.X) || !AeqZero(body.Linear.Disp.X) {
		t.Errorf("x DoF should be untouched by a purely-y acceleration, got vel=%g disp=%g",
			body.Linear.Vel.X, body.Linear.Disp.X)
	}
}

func TestIntegrateBodyPositionOverrideZeroesVelocity(t *testing.T) {
	env, err := symbolic.NewEnvironment([]string{"s_x_A = 5"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	eval := &symbolic.Evaluator{Env: env}
	body := &Body{Name: "A", BodyProperties: BodyProperties{Mass: 1, MOI: 1}}
	body.Linear.Vel.X = 99 // should be discarded: a position override is purely kinematic.

	overrides := PublishOverrides([]*Body{body})
	warns := IntegrateBody(eval, body, 0.01, overrides)
	if len(warns) != 2 || warns[0].DOF != "y" || warns[1].DOF != "theta" {
		t.Fatalf("got warnings %v, want exactly two, for y and theta (no equation drives them)", warns)
	}
	if body.Linear.Disp.X != 5 {
		t.Errorf("x disp = %g, want 5 (position override)", body.Linear.Disp.X)
	}
	if body.Linear.Vel.X != 0 {
		t.Errorf("x vel = %g, want 0 (position override is purely kinematic)", body.Linear.Vel.X)
	}
}

func TestIntegrateBodyWarnsWhenNoCandidateResolves(t *testing.T) {
	env, err := symbolic.NewEnvironment(nil)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	eval := &symbolic.Evaluator{Env: env}
	body := &Body{Name: "Lonely", BodyProperties: BodyProperties{Mass: 1, MOI: 1}}
	overrides := PublishOverrides([]*Body{body})

	warns := IntegrateBody(eval, body, 0.01, overrides)
	if len(warns) != 3 {
		t.Fatalf("got %d warnings, want 3 (x, y, theta all unresolved)", len(warns))
	}
}

func TestIntegrateBodyCycleProducesWarningNotCrash(t *testing.T) {
	env, err := symbolic.NewEnvironment([]string{"a = b+1", "b = a+1"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	eval := &symbolic.Evaluator{Env: env}
	body := &Body{Name: "C", BodyProperties: BodyProperties{Mass: 1, MOI: 1}}
	overrides := PublishOverrides([]*Body{body})

	warns := IntegrateBody(eval, body, 0.01, overrides)
	if len(warns) == 0 {
		t.Error("expected at least one warning: neither a nor b ever resolves without an anchor")
	}
}
