// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rigidbody

import "github.com/durganmcbroom/iterative-physics/symbolic"

// config.go reduces the Resolver/root-finder API footprint using
// functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
//      https://commandcenter.blogspot.ca/2014/01/self-referential-functions-and-design.html

// Config holds the numerical tuning knobs spec'd with defaults in
// §4.6/§4.9/Design Notes: the root-finder's convergence behavior and
// the resolver's restitution and positional-correction behavior. All
// have reasonable defaults so a Config never has to be constructed by
// hand.
type Config struct {
	// root-finder (§4.6)
	diffEpsilon       float64 // forward-difference derivative step.
	tolerance         float64 // |f(x)| below this counts as a root.
	maxIterations     int     // Newton iteration cap.
	singularThreshold float64 // |f'(x)| below this aborts as singular.

	// evaluator (§4.5)
	maxDepth int // recursion depth cap.

	// resolver (§4.9)
	restitution     float64 // coefficient of restitution, e.
	correctionSlop  float64 // fraction of penetration depth corrected per pass.
	correctionPasses int    // number of positional-correction passes per tick.
}

// configDefaults provides the numeric defaults named in spec §4.6/§4.9/
// Design Notes so the engine runs correctly even if no Attr is given.
var configDefaults = Config{
	diffEpsilon:       1e-6,
	tolerance:         1e-9,
	maxIterations:     100,
	singularThreshold: 1e-12,
	maxDepth:          64,
	restitution:       0.2,
	correctionSlop:    0.8,
	correctionPasses:  4,
}

// Attr defines optional engine attributes used to tune the root-finder
// and resolver away from their spec'd defaults.
//
//	eng, err := iterphys.New(bodies, equations, dt,
//	    rigidbody.Restitution(0.5),
//	    rigidbody.MaxIterations(200),
//	)
type Attr func(*Config)

// Restitution sets the resolver's coefficient of restitution e, clamped
// to [0,1].
func Restitution(e float64) Attr {
	return func(c *Config) {
		if e < 0 {
			e = 0
		}
		if e > 1 {
			e = 1
		}
		c.restitution = e
	}
}

// CorrectionSlop sets the fraction of penetration depth removed per
// positional-correction pass.
func CorrectionSlop(slop float64) Attr {
	return func(c *Config) { c.correctionSlop = slop }
}

// CorrectionPasses sets the number of positional-correction passes run
// after each tick's impulse resolution.
func CorrectionPasses(n int) Attr {
	return func(c *Config) {
		if n >= 0 {
			c.correctionPasses = n
		}
	}
}

// MaxIterations sets the root-finder's Newton iteration cap.
func MaxIterations(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// MaxDepth sets the evaluator's recursion depth cap.
func MaxDepth(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// NewConfig builds a Config from configDefaults overridden by attrs, in
// order.
func NewConfig(attrs ...Attr) Config {
	c := configDefaults
	for _, a := range attrs {
		a(&c)
	}
	return c
}

// Limits projects the root-finder/evaluator knobs of a Config into a
// symbolic.Limits, so the engine's Evaluator is tuned by the same Attrs
// that tune the resolver.
func (c Config) Limits() symbolic.Limits {
	return symbolic.Limits{
		MaxDepth:          c.maxDepth,
		DiffEpsilon:       c.diffEpsilon,
		Tolerance:         c.tolerance,
		MaxIterations:     c.maxIterations,
		SingularThreshold: c.singularThreshold,
	}
}
