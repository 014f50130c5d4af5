// Package network provides an undirected random contact graph over indexed
// nodes, each node carrying one float64 value.
//
// The Network N = (V, L) holds:
//
//   - values: one real number per node, indexed 0..Size()-1
//   - links:  a symmetric relation over node indices; every stored (a,b) has
//     its mirror (b,a), no self-loops, no parallel links
//
// Typical lifecycle:
//
//	nw := network.New(network.WithSeed(42))
//	nw.Resize(1000)                // values ~ N(0,1)
//	nw.SetValues(initial)          // optional prefix overwrite
//	n, err := nw.RandomConnect(4)  // Poisson(4) target degree per node
//	for _, nb := range nw.Neighbors(0) { ... }
//
// Core Methods:
//
//	// Values
//	Resize(n int)                      // grow only; n ≤ 0 is a no-op
//	SetValues(v []float64) int         // prefix copy, returns copied count
//	Size() int                         // O(1)
//	Value(n int) float64               // 0 when out of range
//	Values() []float64                 // copy
//	SortedValues() []float64           // descending copy
//
//	// Links
//	AddLink(a, b int) bool             // O(d) insert, O(log d) duplicate check
//	HasLink(a, b int) bool             // O(log d)
//	Degree(n int) int                  // O(1), 0 when out of range
//	Neighbors(n int) []int             // ascending, copy
//	Links() []Link                     // every undirected link once, A<B
//	LinkCount() int                    // O(1)
//	ClearLinks()                       // keep values, drop links
//
//	// Generation
//	RandomConnect(meanDeg float64) (int, error)
//
// Invalid reads and link requests never fail loudly: Value and Degree return
// 0, AddLink returns false. Only RandomConnect returns errors, because its
// retry loop is bounded:
//
//	ErrInvalidMeanDegree  – meanDeg negative, NaN or infinite
//	ErrNodeSaturated      – a node already links to every other node
//	ErrAttemptsExhausted  – too many rejected candidate draws for one link
//
// Concurrency: all methods take an internal sync.RWMutex, so concurrent
// readers are safe. The injected rng.Source is only touched under the write
// lock (Resize, RandomConnect).
package network
