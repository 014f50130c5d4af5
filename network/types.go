// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// types.go - Network, Link, options, sentinel errors and the constructor.

package network

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/contactnet/rng"
)

// Sentinel errors for RandomConnect.
var (
	// ErrInvalidMeanDegree indicates a negative, NaN or infinite mean degree.
	ErrInvalidMeanDegree = errors.New("network: invalid mean degree")

	// ErrNodeSaturated indicates a node already links to every other node
	// while more links were requested for it.
	ErrNodeSaturated = errors.New("network: node saturated")

	// ErrAttemptsExhausted indicates the candidate draw budget for one link
	// ran out before a free neighbor was hit.
	ErrAttemptsExhausted = errors.New("network: link attempts exhausted")
)

// DefaultAttemptFactor scales the per-link draw budget with the node count
// when WithMaxAttempts is not set: budget = DefaultAttemptFactor * Size().
const DefaultAttemptFactor = 32

// methodRandomConnect tags RandomConnect errors.
const methodRandomConnect = "RandomConnect"

// Link is one undirected link reported with A < B.
type Link struct {
	A int
	B int
}

// Option configures a Network before creation.
type Option func(nw *Network)

// WithSource injects the random source used by Resize and RandomConnect.
// Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("network: WithSource(nil)")
	}
	return func(nw *Network) { nw.src = src }
}

// WithSeed installs a gonum-backed source seeded deterministically.
func WithSeed(seed uint64) Option {
	return func(nw *Network) { nw.src = rng.New(rng.WithSeed(seed)) }
}

// WithMaxAttempts caps the number of candidate draws RandomConnect spends
// on a single link. Zero restores the size-scaled default. Panics if k < 0.
func WithMaxAttempts(k int) Option {
	if k < 0 {
		panic("network: WithMaxAttempts(k<0)")
	}
	return func(nw *Network) { nw.maxAttempts = k }
}

// WithLogger attaches a zerolog logger for generation events.
func WithLogger(l zerolog.Logger) Option {
	return func(nw *Network) { nw.log = l }
}

// Network is an undirected contact graph with one value per node.
//
// adj[n] holds the neighbors of n in ascending order; the mirror of every
// entry is present in the other endpoint's slice.
type Network struct {
	mu sync.RWMutex // guards values, adj and linkCount

	src         rng.Source
	maxAttempts int // 0 → DefaultAttemptFactor * Size()
	log         zerolog.Logger

	values    []float64
	adj       [][]int
	linkCount int // undirected links
}

// New creates an empty Network. Without WithSource or WithSeed a
// clock-seeded gonum source is used.
// Complexity: O(len(opts)).
func New(opts ...Option) *Network {
	nw := &Network{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(nw)
	}
	if nw.src == nil {
		nw.src = rng.New()
	}

	return nw
}
