// SPDX-License-Identifier: MIT
// Package network_test shared fixtures.

package network_test

import (
	"testing"

	"github.com/katalvlaran/contactnet/network"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws so link generation can be asserted
// step by step.
//   - Normal writes next, next+1, ... starting at 1.
//   - Poisson pops from degrees, 0 once drained.
//   - Uniform pops from picks, cycling when drained.
type scriptedSource struct {
	next    float64
	degrees []int
	picks   []float64
	pos     int

	normalCalls  int
	uniformCalls int
}

func (s *scriptedSource) Normal(buf []float64) {
	s.normalCalls++
	for i := range buf {
		s.next++
		buf[i] = s.next
	}
}

func (s *scriptedSource) Poisson(float64) int {
	if len(s.degrees) == 0 {
		return 0
	}
	k := s.degrees[0]
	s.degrees = s.degrees[1:]
	return k
}

func (s *scriptedSource) Uniform(low, high float64) float64 {
	s.uniformCalls++
	if len(s.picks) == 0 {
		return low
	}
	v := s.picks[s.pos%len(s.picks)]
	s.pos++
	return v
}

// newScripted builds a Network of size n over a scripted source.
func newScripted(t *testing.T, n int, src *scriptedSource, opts ...network.Option) *network.Network {
	t.Helper()
	nw := network.New(append([]network.Option{network.WithSource(src)}, opts...)...)
	nw.Resize(n)
	require.Equal(t, n, nw.Size())
	return nw
}

// requireInvariants checks symmetry, no self-loops, no duplicates, valid
// endpoints and the LinkCount / Links agreement.
func requireInvariants(t *testing.T, nw *network.Network) {
	t.Helper()
	n := nw.Size()
	directed := 0
	for a := 0; a < n; a++ {
		nbrs := nw.Neighbors(a)
		require.Len(t, nbrs, nw.Degree(a), "Degree(%d) vs Neighbors", a)
		seen := make(map[int]bool, len(nbrs))
		for _, b := range nbrs {
			require.NotEqual(t, a, b, "self-loop at %d", a)
			require.GreaterOrEqual(t, b, 0)
			require.Less(t, b, n)
			require.False(t, seen[b], "duplicate %d-%d", a, b)
			seen[b] = true
			require.Contains(t, nw.Neighbors(b), a, "missing mirror %d-%d", b, a)
		}
		directed += len(nbrs)
	}
	require.Equal(t, 0, directed%2)
	require.Equal(t, directed/2, nw.LinkCount())
	require.Len(t, nw.Links(), nw.LinkCount())
}
