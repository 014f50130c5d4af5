// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// methods_links.go - symmetric link storage and queries.
//
// Invariants kept by every mutation:
//   - adj[a] contains b  ⇔  adj[b] contains a
//   - adj[a] never contains a
//   - adj[a] is strictly ascending (no duplicates)
//   - linkCount == Σ len(adj[a]) / 2

package network

import "slices"

// AddLink links a and b. It returns false without side effects when a == b,
// either index is out of range, or the pair is already linked in either order.
// Complexity: O(log d) duplicate check + O(d) insert, d = max degree of a, b.
func (nw *Network) AddLink(a, b int) bool {
	nw.mu.Lock()
	defer nw.mu.Unlock()

	return nw.addLinkLocked(a, b)
}

// addLinkLocked is AddLink without locking; caller holds nw.mu.
func (nw *Network) addLinkLocked(a, b int) bool {
	n := len(nw.values)
	if a == b || a < 0 || b < 0 || a >= n || b >= n {
		return false
	}

	ia, found := slices.BinarySearch(nw.adj[a], b)
	if found {
		return false
	}
	ib, _ := slices.BinarySearch(nw.adj[b], a)

	nw.adj[a] = slices.Insert(nw.adj[a], ia, b)
	nw.adj[b] = slices.Insert(nw.adj[b], ib, a)
	nw.linkCount++

	return true
}

// HasLink reports whether a and b are linked.
func (nw *Network) HasLink(a, b int) bool {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	if a < 0 || a >= len(nw.adj) {
		return false
	}
	_, found := slices.BinarySearch(nw.adj[a], b)
	return found
}

// Degree returns the number of neighbors of n, or 0 if n is out of range.
func (nw *Network) Degree(n int) int {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	if n < 0 || n >= len(nw.adj) {
		return 0
	}
	return len(nw.adj[n])
}

// Neighbors returns the neighbors of n in ascending order. The slice is a
// copy; it is empty for isolated nodes and nil when n is out of range.
func (nw *Network) Neighbors(n int) []int {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	if n < 0 || n >= len(nw.adj) {
		return nil
	}
	out := make([]int, len(nw.adj[n]))
	copy(out, nw.adj[n])
	return out
}

// Links returns every undirected link once with A < B, ordered by (A, B).
// Complexity: O(N + L).
func (nw *Network) Links() []Link {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	out := make([]Link, 0, nw.linkCount)
	for a, nbrs := range nw.adj {
		// skip the mirrored half (b < a) already reported from b
		i, _ := slices.BinarySearch(nbrs, a)
		for _, b := range nbrs[i:] {
			out = append(out, Link{A: a, B: b})
		}
	}
	return out
}

// LinkCount returns the number of undirected links.
func (nw *Network) LinkCount() int {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return nw.linkCount
}

// ClearLinks removes every link and keeps the values.
func (nw *Network) ClearLinks() {
	nw.mu.Lock()
	defer nw.mu.Unlock()

	nw.clearLinksLocked()
}

// clearLinksLocked resets adjacency, reusing slice capacity.
func (nw *Network) clearLinksLocked() {
	for i := range nw.adj {
		nw.adj[i] = nw.adj[i][:0]
	}
	nw.linkCount = 0
}
