// Package traverse provides breadth-first search over a network.Network,
// returning hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Result carries:
//   - Order:  visit sequence
//   - Depth:  node → hops from start
//   - Parent: node → predecessor in the BFS tree
//   - Hooks: OnVisit (may abort with an error) and FilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Cancellation through WithContext.
//
// Why
//
//	Diffusion and epidemic models built on a contact network ask "who can be
//	reached from the seed within k steps"; BFS answers that in O(N + L).
//
// Determinism
//
//	network.Neighbors returns ascending node ids, so the visit order is fully
//	reproducible for a given network.
package traverse
