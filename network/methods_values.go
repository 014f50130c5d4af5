// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// methods_values.go - node value storage and queries.

package network

import "sort"

// Resize grows the Network to n nodes. New slots are filled from the
// source's standard normal; existing values and links are not touched.
// n ≤ Size() (including n ≤ 0) is a no-op: shrinking is not supported.
// Complexity: O(n - Size()).
func (nw *Network) Resize(n int) {
	nw.mu.Lock()
	defer nw.mu.Unlock()

	old := len(nw.values)
	if n <= old {
		return
	}

	fresh := make([]float64, n-old)
	nw.src.Normal(fresh)
	nw.values = append(nw.values, fresh...)
	nw.adj = append(nw.adj, make([][]int, n-old)...)
}

// SetValues overwrites values[0:k] with v[0:k], k = min(len(v), Size()),
// and returns k. Remaining values are untouched.
// Complexity: O(k).
func (nw *Network) SetValues(v []float64) int {
	nw.mu.Lock()
	defer nw.mu.Unlock()

	return copy(nw.values, v)
}

// Size returns the number of nodes.
func (nw *Network) Size() int {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return len(nw.values)
}

// Value returns the value of node n, or 0 if n is out of range.
func (nw *Network) Value(n int) float64 {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	if n < 0 || n >= len(nw.values) {
		return 0
	}
	return nw.values[n]
}

// Values returns a copy of all node values in index order.
func (nw *Network) Values() []float64 {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	out := make([]float64, len(nw.values))
	copy(out, nw.values)
	return out
}

// SortedValues returns a copy of the values sorted in descending order.
// Complexity: O(N log N).
func (nw *Network) SortedValues() []float64 {
	out := nw.Values()
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}
