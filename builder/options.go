// SPDX-License-Identifier: MIT
// Package: pedroute/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and BuildCity themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter displaces every grid coordinate by up to f·spacing on each
// axis. It has effect only with an RNG. Panics unless 0 ≤ f < MaxJitter.
func WithJitter(f float64) BuilderOption {
	if f < 0 || f >= MaxJitter {
		panic("builder: WithJitter(f) requires 0 ≤ f < 0.5")
	}
	return func(c *builderConfig) {
		c.jitter = f
	}
}
