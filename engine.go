// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package iterphys

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/durganmcbroom/iterative-physics/rigidbody"
	"github.com/durganmcbroom/iterative-physics/symbolic"
)

// BodySpec is one body's construction input, per spec §6: name, mass,
// a (width, height) rectangle centered on (x, y) in local space, and
// initial linear/angular state.
type BodySpec struct {
	Name   string
	Mass   float64
	Width  float64
	Height float64
	X, Y   float64
	VX, VY float64
	Theta  float64
	Color  string
}

// BodySnapshot is one body's externally-visible state, per spec §6's
// state() operation.
type BodySnapshot struct {
	Name  string
	X, Y  float64
	Theta float64
}

// TickEvents is returned by Engine.Tick: the contact centroids produced
// by this tick's collision phase and any non-fatal per-DoF integration
// warnings. TickID is a run-correlation id attached to every slog call
// this tick made -- purely observability, never consulted by the
// simulation itself.
type TickEvents struct {
	TickID     uuid.UUID
	Collisions []rigidbody.Vector
	Warnings   []rigidbody.Warning
}

// Engine orchestrates one simulation: a symbolic Environment shared by
// every body, the bodies themselves, and the fixed tick size.
type Engine struct {
	id     uuid.UUID
	env    *symbolic.Environment
	eval   *symbolic.Evaluator
	bodies []*rigidbody.Body
	dt     float64
	cfg    rigidbody.Config
}

// New classifies equations into an Environment (§4.3) and builds one
// rigidbody.Body per spec, returning a *BuildError for any malformed
// equation, duplicate body name, or non-positive mass/dimension. Body
// moment of inertia is derived from its rectangle's mass and
// dimensions (I = m*(w²+h²)/12) since spec §6's construction tuple
// carries no explicit MOI field.
func New(bodies []BodySpec, equations []string, dt float64, opts ...rigidbody.Attr) (*Engine, error) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, &BuildError{Msg: fmt.Sprintf("dt must be positive and finite, got %g", dt)}
	}

	env, err := symbolic.NewEnvironment(equations)
	if err != nil {
		return nil, &BuildError{Msg: "classifying equations", Err: err}
	}

	seen := make(map[string]bool, len(bodies))
	built := make([]*rigidbody.Body, 0, len(bodies))
	for _, spec := range bodies {
		if seen[spec.Name] {
			return nil, &BuildError{Msg: fmt.Sprintf("duplicate body name %q", spec.Name)}
		}
		seen[spec.Name] = true
		if spec.Mass <= 0 {
			return nil, &BuildError{Msg: fmt.Sprintf("body %q: mass must be positive, got %g", spec.Name, spec.Mass)}
		}
		if spec.Width <= 0 || spec.Height <= 0 {
			return nil, &BuildError{Msg: fmt.Sprintf("body %q: width and height must be positive", spec.Name)}
		}
		moi := spec.Mass * (spec.Width*spec.Width + spec.Height*spec.Height) / 12

		b := &rigidbody.Body{
			Name:           spec.Name,
			Shape:          rigidbody.Rectangle(spec.Width, spec.Height),
			Color:          spec.Color,
			BodyProperties: rigidbody.BodyProperties{Mass: spec.Mass, MOI: moi},
		}
		b.Linear.Disp = rigidbody.Vector{X: spec.X, Y: spec.Y}
		b.Linear.Vel = rigidbody.Vector{X: spec.VX, Y: spec.VY}
		b.Angular.Disp = spec.Theta
		built = append(built, b)
	}

	cfg := rigidbody.NewConfig(opts...)
	id := uuid.New()
	slog.Info("engine constructed", "engine_id", id, "bodies", len(built), "equations", len(equations))

	return &Engine{
		id:     id,
		env:    env,
		eval:   &symbolic.Evaluator{Env: env, Limits: cfg.Limits()},
		bodies: built,
		dt:     dt,
		cfg:    cfg,
	}, nil
}

// Tick advances the world by dt, strictly in the order given by spec
// §4.10: publish a pre-tick variable snapshot, integrate every body
// (§4.7), detect collisions (§4.8), resolve them (§4.9). A fatal error
// during collision/resolution rolls the world back to its pre-tick
// state and returns a *RuntimeError; bodies are left unchanged in that
// case, per spec §7.
func (e *Engine) Tick() (TickEvents, error) {
	tickID := uuid.New()
	snapshot := e.snapshot()

	overrides := rigidbody.PublishOverrides(e.bodies)
	var warnings []rigidbody.Warning
	for _, b := range e.bodies {
		ws := rigidbody.IntegrateBody(e.eval, b, e.dt, overrides)
		for _, w := range ws {
			slog.Warn("dof left unchanged", "engine_id", e.id, "tick_id", tickID, "body", w.Body, "dof", w.DOF, "reason", w.Reason)
		}
		warnings = append(warnings, ws...)
	}

	collisions, err := rigidbody.DetectCollisions(e.bodies)
	if err != nil {
		e.restore(snapshot)
		slog.Error("tick aborted: collision detection failed", "engine_id", e.id, "tick_id", tickID, "error", err)
		return TickEvents{}, &RuntimeError{Msg: "collision detection", Err: err}
	}

	rigidbody.Resolve(e.bodies, collisions, e.cfg)

	if unstable := e.firstUnstable(); unstable != nil {
		e.restore(snapshot)
		slog.Error("tick aborted: non-finite state after resolution", "engine_id", e.id, "tick_id", tickID, "body", unstable.Body)
		return TickEvents{}, &RuntimeError{Msg: "non-finite body state after resolution", Err: unstable}
	}

	events := TickEvents{TickID: tickID, Warnings: warnings}
	for _, c := range collisions {
		events.Collisions = append(events.Collisions, c.Centroid)
	}
	return events, nil
}

// State returns a snapshot of every body's externally-visible state,
// per spec §6.
func (e *Engine) State() []BodySnapshot {
	out := make([]BodySnapshot, len(e.bodies))
	for i, b := range e.bodies {
		out[i] = BodySnapshot{Name: b.Name, X: b.Linear.Disp.X, Y: b.Linear.Disp.Y, Theta: b.Angular.Disp}
	}
	return out
}

type bodyBackup struct {
	linear  rigidbody.BodyState[rigidbody.Vector]
	angular rigidbody.BodyState[float64]
}

func (e *Engine) snapshot() []bodyBackup {
	out := make([]bodyBackup, len(e.bodies))
	for i, b := range e.bodies {
		out[i] = bodyBackup{linear: b.Linear, angular: b.Angular}
	}
	return out
}

func (e *Engine) restore(snapshot []bodyBackup) {
	for i, b := range e.bodies {
		b.Linear = snapshot[i].linear
		b.Angular = snapshot[i].angular
	}
}

// firstUnstable returns a *rigidbody.NumericalInstability naming the
// first body whose state went non-finite (NaN or +/-Inf) this tick, or
// nil if every body is still finite.
func (e *Engine) firstUnstable() *rigidbody.NumericalInstability {
	finite := func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
	for _, b := range e.bodies {
		if !finite(b.Linear.Disp.X) || !finite(b.Linear.Disp.Y) ||
			!finite(b.Linear.Vel.X) || !finite(b.Linear.Vel.Y) ||
			!finite(b.Angular.Disp) || !finite(b.Angular.Vel) {
			return &rigidbody.NumericalInstability{Body: b.Name}
		}
	}
	return nil
}
