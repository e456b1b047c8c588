// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rigidbody

import (
	"fmt"

	"github.com/durganmcbroom/iterative-physics/expr"
	"github.com/durganmcbroom/iterative-physics/symbolic"
)

// dofCandidates is the ordered list of variable names the integrator
// tries, per degree of freedom, for a body named name. Modeling the
// §4.7 precedence ladder as a table rather than special-cased branches
// per spec's own Design Notes: within a rung the first resolvable name
// wins; a rung is skipped entirely if every name in it fails to
// resolve.
type dofCandidates struct {
	position     []string
	velocity     []string
	acceleration []string
}

func xCandidates(name string) dofCandidates {
	return dofCandidates{
		position:     []string{"s_x_" + name, "x_" + name, "s_" + name},
		velocity:     []string{"v_x_" + name, "v_" + name},
		acceleration: []string{"a_x_" + name, "a_" + name},
	}
}

func yCandidates(name string) dofCandidates {
	return dofCandidates{
		position:     []string{"s_y_" + name, "y_" + name, "s_" + name},
		velocity:     []string{"v_y_" + name, "v_" + name},
		acceleration: []string{"a_y_" + name, "a_" + name},
	}
}

func angularCandidates(name string) dofCandidates {
	return dofCandidates{
		position:     []string{"theta_" + name},
		velocity:     []string{"omega_" + name},
		acceleration: []string{"alpha_" + name},
	}
}

// resolveDOF tries each rung of cands in order (position, velocity,
// acceleration), and within a rung tries each candidate name in order,
// returning the first value that resolves without error and which rung
// produced it. ok is false if every candidate in every rung failed.
// A candidate name itself is never answered from overrides: the
// snapshot publishes x_B, v_x_B, theta_B and the like for every body, so
// it would otherwise resolve every position rung to the current state.
// The rest of the snapshot stays visible to the equations consulted.
func resolveDOF(eval *symbolic.Evaluator, frame symbolic.Frame, axis symbolic.Axis,
	overrides symbolic.OverrideLookup, cands dofCandidates) (value float64, rung string, ok bool, lastErr error) {

	rungs := []struct {
		name  string
		names []string
	}{
		{"position", cands.position},
		{"velocity", cands.velocity},
		{"acceleration", cands.acceleration},
	}
	for _, r := range rungs {
		for _, n := range r.names {
			lookup := func(name string) (float64, bool) {
				if name == n || overrides == nil {
					return 0, false
				}
				return overrides(name)
			}
			v, err := eval.Evaluate(&expr.VariableNode{Name: n}, frame, axis, lookup)
			if err == nil {
				return v, r.name, true, nil
			}
			lastErr = err
		}
	}
	return 0, "", false, lastErr
}

// IntegrateBody advances body b by dt following the §4.7 precedence
// ladder for each of its three degrees of freedom (x, y, theta),
// against the given Environment/Evaluator and the tick's pre-tick
// overrides snapshot. It returns a Warning for every DoF whose entire
// ladder failed to resolve (the DoF is left unchanged in that case).
func IntegrateBody(eval *symbolic.Evaluator, b *Body, dt float64, overrides symbolic.OverrideLookup) []Warning {
	var warnings []Warning

	newX, newVX, warnX := integrateAxis(eval, b.Name, symbolic.AxisX, overrides, dt, b.Linear.Disp.X, b.Linear.Vel.X)
	newY, newVY, warnY := integrateAxis(eval, b.Name, symbolic.AxisY, overrides, dt, b.Linear.Disp.Y, b.Linear.Vel.Y)
	newTheta, newOmega, warnT := integrateAngular(eval, b.Name, overrides, dt, b.Angular.Disp, b.Angular.Vel)

	b.Linear.Disp = Vector{newX, newY}
	b.Linear.Vel = Vector{newVX, newVY}
	b.Angular.Disp = newTheta
	b.Angular.Vel = newOmega

	if warnX != nil {
		warnings = append(warnings, Warning{Body: b.Name, DOF: "x", Reason: warnX})
	}
	if warnY != nil {
		warnings = append(warnings, Warning{Body: b.Name, DOF: "y", Reason: warnY})
	}
	if warnT != nil {
		warnings = append(warnings, Warning{Body: b.Name, DOF: "theta", Reason: warnT})
	}
	return warnings
}

func integrateAxis(eval *symbolic.Evaluator, name string, axis symbolic.Axis, overrides symbolic.OverrideLookup,
	dt, disp, vel float64) (newDisp, newVel float64, warn error) {

	var cands dofCandidates
	if axis == symbolic.AxisX {
		cands = xCandidates(name)
	} else {
		cands = yCandidates(name)
	}
	frame := symbolic.NewFrame()

	if v, rung, ok, err := resolveDOF(eval, frame, axis, overrides, cands); ok {
		switch rung {
		case "position":
			return v, 0, nil
		case "velocity":
			return disp + v*dt, v, nil
		case "acceleration":
			nv := vel + v*dt
			return disp + nv*dt, nv, nil
		}
		return disp, vel, nil
	} else {
		return disp, vel, fmt.Errorf("no candidate resolved for body %q axis: %w", name, err)
	}
}

func integrateAngular(eval *symbolic.Evaluator, name string, overrides symbolic.OverrideLookup,
	dt, disp, vel float64) (newDisp, newVel float64, warn error) {

	cands := angularCandidates(name)
	frame := symbolic.NewFrame()
	if v, rung, ok, err := resolveDOF(eval, frame, symbolic.AxisX, overrides, cands); ok {
		switch rung {
		case "position":
			return v, 0, nil
		case "velocity":
			return disp + v*dt, v, nil
		case "acceleration":
			nv := vel + v*dt
			return disp + nv*dt, nv, nil
		}
		return disp, vel, nil
	} else {
		return disp, vel, fmt.Errorf("no candidate resolved for body %q theta: %w", name, err)
	}
}
