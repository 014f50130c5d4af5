// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// methods_clone.go - deep copy of a Network.

package network

// Clone returns a deep copy of values and links. The clone shares the
// random source and logger with nw; do not drive both from different
// goroutines.
// Complexity: O(N + L).
func (nw *Network) Clone() *Network {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	out := &Network{
		src:         nw.src,
		maxAttempts: nw.maxAttempts,
		log:         nw.log,
		values:      make([]float64, len(nw.values)),
		adj:         make([][]int, len(nw.adj)),
		linkCount:   nw.linkCount,
	}
	copy(out.values, nw.values)
	for i, nbrs := range nw.adj {
		if len(nbrs) == 0 {
			continue
		}
		out.adj[i] = make([]int, len(nbrs))
		copy(out.adj[i], nbrs)
	}

	return out
}
