// SPDX-License-Identifier: MIT
// Package: contactnet/rng
//
// source.go - the Source contract and functional options.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs (nil source).
//   - No hidden globals: every Gonum owns its own stream.

package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the random collaborator of network.Network.
type Source interface {
	// Normal replaces every element of buf with an independent standard-normal draw.
	Normal(buf []float64)

	// Poisson returns one draw from a Poisson distribution with the given mean.
	// Non-positive means yield 0.
	Poisson(mean float64) int

	// Uniform returns one real number drawn uniformly from [low, high].
	Uniform(low, high float64) float64
}

// Option customizes a Gonum source before its distributions are built.
type Option func(*config)

// config holds the resolved stream for New.
type config struct {
	src rand.Source
}

// WithSeed seeds a PCG stream deterministically. Use it in tests and
// examples to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = rand.NewPCG(seed, seed^pcgStreamSalt)
	}
}

// WithRand attaches an explicit math/rand/v2 source.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic("rng: WithRand(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// pcgStreamSalt derives the second PCG word from the seed.
const pcgStreamSalt = 0x9e3779b97f4a7c15

// newConfig applies opts in order (last wins). Without a seed the stream is
// seeded from the wall clock.
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		seed := uint64(time.Now().UnixNano())
		c.src = rand.NewPCG(seed, seed^pcgStreamSalt)
	}
	return c
}
