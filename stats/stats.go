// Package stats summarizes a network.Network: degree distribution, node
// value moments and connected components.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/contactnet/network"
)

// Summary describes one generated network.
type Summary struct {
	Nodes int
	Links int

	MeanDegree     float64
	DegreeVariance float64 // sample variance; 0 for fewer than two nodes
	MaxDegree      int
	Isolated       int // nodes with degree 0

	Components       int
	LargestComponent int

	ValueMean   float64
	ValueStdDev float64
	ValueMedian float64
}

// Degrees returns the degree of every node as float64, in index order.
func Degrees(nw *network.Network) []float64 {
	n := nw.Size()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(nw.Degree(i))
	}
	return out
}

// DegreeHistogram returns h where h[k] is the number of nodes of degree k.
// The slice has length MaxDegree+1, or 0 for an empty network.
func DegreeHistogram(nw *network.Network) []int {
	n := nw.Size()
	if n == 0 {
		return nil
	}
	maxDeg := 0
	degs := make([]int, n)
	for i := range degs {
		degs[i] = nw.Degree(i)
		if degs[i] > maxDeg {
			maxDeg = degs[i]
		}
	}
	h := make([]int, maxDeg+1)
	for _, d := range degs {
		h[d]++
	}
	return h
}

// Summarize computes a Summary. An empty network yields the zero Summary.
// Complexity: O(N log N + L).
func Summarize(nw *network.Network) Summary {
	s := Summary{Nodes: nw.Size(), Links: nw.LinkCount()}
	if s.Nodes == 0 {
		return s
	}

	degs := Degrees(nw)
	s.MeanDegree, s.DegreeVariance = stat.MeanVariance(degs, nil)
	for _, d := range degs {
		if int(d) > s.MaxDegree {
			s.MaxDegree = int(d)
		}
		if d == 0 {
			s.Isolated++
		}
	}

	values := nw.Values()
	s.ValueMean, s.ValueStdDev = stat.MeanStdDev(values, nil)
	sort.Float64s(values)
	s.ValueMedian = stat.Quantile(0.5, stat.Empirical, values, nil)

	if s.Nodes < 2 {
		s.DegreeVariance, s.ValueStdDev = 0, 0
	}

	comps := topo.ConnectedComponents(nw.ToGonum())
	s.Components = len(comps)
	for _, c := range comps {
		if len(c) > s.LargestComponent {
			s.LargestComponent = len(c)
		}
	}

	return s
}
