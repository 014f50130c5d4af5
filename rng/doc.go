// Package rng defines the random Source consumed by network.Network and a
// gonum-backed implementation of it.
//
// Three distributions are required by the contact-graph generator:
//
//	Normal(buf)          – fill buf with independent N(0,1) draws (initial node values)
//	Poisson(mean)        – one non-negative integer draw (per-node target degree)
//	Uniform(low, high)   – one real draw in [low, high] (candidate neighbor index)
//
// Gonum implements Source on top of gonum.org/v1/gonum/stat/distuv and a
// math/rand/v2 PCG stream, so a fixed seed reproduces the same sequence of
// draws and therefore the same network.
//
// A Source is NOT safe for concurrent use; give each goroutine its own.
package rng
