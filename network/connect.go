// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// connect.go - RandomConnect: Poisson-driven link generation.
//
// Model:
//   - All links are cleared first; values are never touched.
//   - For each node i ascending, a target k_i ~ Poisson(meanDeg) is drawn.
//   - Each of the k_i links is realized by drawing candidates c uniformly
//     over node indices until AddLink(i, c) succeeds.
//   - Links made by earlier nodes count toward later nodes' degree, so the
//     realized mean degree is about 2·meanDeg.
//
// Bounded retries:
//   - A node already linked to all Size()-1 others fails with ErrNodeSaturated.
//   - A single link gets at most maxAttempts draws, else ErrAttemptsExhausted.
//   - On error the links made so far stay in place and their count is returned.
//
// Determinism:
//   - Fixed source seed ⇒ identical draw sequence ⇒ identical links.

package network

import (
	"fmt"
	"math"
)

// RandomConnect regenerates all links with Poisson(meanDeg) target degrees
// and returns the number of links created.
// Complexity: O(N·k·(log d + d)) expected when the network is far from
// saturation, where k is the mean target degree.
func (nw *Network) RandomConnect(meanDeg float64) (int, error) {
	if meanDeg < 0 || math.IsNaN(meanDeg) || math.IsInf(meanDeg, 0) {
		return 0, fmt.Errorf("%s: mean degree %g: %w", methodRandomConnect, meanDeg, ErrInvalidMeanDegree)
	}

	nw.mu.Lock()
	defer nw.mu.Unlock()

	nw.clearLinksLocked()

	n := len(nw.values)
	budget := nw.attemptBudget(n)
	count := 0

	for i := 0; i < n; i++ {
		target := nw.src.Poisson(meanDeg)
		if target < 0 {
			target = 0
		}
		for j := 0; j < target; j++ {
			if len(nw.adj[i]) >= n-1 {
				nw.log.Warn().
					Int("node", i).
					Int("degree", len(nw.adj[i])).
					Int("requested", target-j).
					Msg("node saturated")
				return count, fmt.Errorf("%s: node %d has all %d possible links, %d more requested: %w",
					methodRandomConnect, i, n-1, target-j, ErrNodeSaturated)
			}
			if !nw.linkRandomLocked(i, n, budget) {
				return count, fmt.Errorf("%s: node %d: no free neighbor after %d draws: %w",
					methodRandomConnect, i, budget, ErrAttemptsExhausted)
			}
			count++
		}
	}

	nw.log.Debug().
		Int("nodes", n).
		Float64("mean_degree", meanDeg).
		Int("links", count).
		Msg("random connect done")

	return count, nil
}

// linkRandomLocked draws up to budget candidates for node i and reports
// whether one of them was linked.
func (nw *Network) linkRandomLocked(i, n, budget int) bool {
	for attempt := 0; attempt < budget; attempt++ {
		if nw.addLinkLocked(i, nw.drawCandidate(n)) {
			return true
		}
	}
	return false
}

// drawCandidate maps one Uniform(0, n) draw to a node index in [0, n).
// Flooring over the half-open width n gives every index equal weight.
func (nw *Network) drawCandidate(n int) int {
	c := int(math.Floor(nw.src.Uniform(0, float64(n))))
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

// attemptBudget resolves the per-link draw cap for n nodes.
func (nw *Network) attemptBudget(n int) int {
	if nw.maxAttempts > 0 {
		return nw.maxAttempts
	}
	if n < 1 {
		return DefaultAttemptFactor
	}
	return DefaultAttemptFactor * n
}
