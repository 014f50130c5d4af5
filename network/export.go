// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// export.go - conversion to gonum graph types.

package network

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum returns the network as a gonum simple.UndirectedGraph whose node
// IDs equal the node indices. Isolated nodes are included.
// Complexity: O(N + L).
func (nw *Network) ToGonum() *simple.UndirectedGraph {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	g := simple.NewUndirectedGraph()
	for i := range nw.values {
		g.AddNode(simple.Node(int64(i)))
	}
	for a, nbrs := range nw.adj {
		for _, b := range nbrs {
			if b < a {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(int64(a)), T: simple.Node(int64(b))})
		}
	}

	return g
}
