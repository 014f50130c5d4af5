package stats_test

import (
	"testing"

	"github.com/katalvlaran/contactnet/network"
	"github.com/katalvlaran/contactnet/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture: 6 nodes, triangle 0-1-2, link 3-4, isolated 5, values 1..6.
func fixture(t *testing.T) *network.Network {
	t.Helper()
	nw := network.New(network.WithSeed(1))
	nw.Resize(6)
	require.Equal(t, 6, nw.SetValues([]float64{1, 2, 3, 4, 5, 6}))
	for _, l := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}} {
		require.True(t, nw.AddLink(l[0], l[1]))
	}
	return nw
}

// TestSummarize_Fixture checks every field on a hand-built network.
func TestSummarize_Fixture(t *testing.T) {
	s := stats.Summarize(fixture(t))

	assert.Equal(t, 6, s.Nodes)
	assert.Equal(t, 4, s.Links)
	// degrees: 2,2,2,1,1,0 → mean 8/6
	assert.InDelta(t, 8.0/6.0, s.MeanDegree, 1e-12)
	assert.Equal(t, 2, s.MaxDegree)
	assert.Equal(t, 1, s.Isolated)
	assert.Equal(t, 3, s.Components)
	assert.Equal(t, 3, s.LargestComponent)
	assert.InDelta(t, 3.5, s.ValueMean, 1e-12)
	assert.Greater(t, s.DegreeVariance, 0.0)
	assert.Greater(t, s.ValueStdDev, 0.0)
	assert.InDelta(t, 3.0, s.ValueMedian, 1e-12)
}

// TestDegreeHistogram counts nodes per degree.
func TestDegreeHistogram(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, stats.DegreeHistogram(fixture(t)))
	assert.Nil(t, stats.DegreeHistogram(network.New()))
}

// TestSummarize_Empty yields the zero summary.
func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, stats.Summary{}, stats.Summarize(network.New()))
}

// TestSummarize_SingleNode avoids NaN spreads.
func TestSummarize_SingleNode(t *testing.T) {
	nw := network.New(network.WithSeed(1))
	nw.Resize(1)
	s := stats.Summarize(nw)
	assert.Equal(t, 1, s.Components)
	assert.Equal(t, 1, s.Isolated)
	assert.Equal(t, 0.0, s.DegreeVariance)
	assert.Equal(t, 0.0, s.ValueStdDev)
}

// TestSummarize_RandomNetwork checks the realized mean degree is about twice
// the Poisson mean and agrees with the link count.
func TestSummarize_RandomNetwork(t *testing.T) {
	nw := network.New(network.WithSeed(4))
	nw.Resize(2000)
	count, err := nw.RandomConnect(3)
	require.NoError(t, err)

	s := stats.Summarize(nw)
	assert.Equal(t, count, s.Links)
	assert.InDelta(t, 2*float64(count)/2000, s.MeanDegree, 1e-9)
	assert.InDelta(t, 6.0, s.MeanDegree, 0.5)
	assert.Greater(t, s.LargestComponent, 1900)

	hist := stats.DegreeHistogram(nw)
	total := 0
	for _, c := range hist {
		total += c
	}
	assert.Equal(t, 2000, total)
	assert.Equal(t, s.MaxDegree+1, len(hist))
}
