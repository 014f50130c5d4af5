package network_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/contactnet/network"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReaders runs queries from many goroutines against a
// generated network; run with -race.
func TestConcurrentReaders(t *testing.T) {
	nw := network.New(network.WithSeed(21))
	nw.Resize(400)
	_, err := nw.RandomConnect(3)
	require.NoError(t, err)
	links := nw.LinkCount()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < nw.Size(); i += 8 {
				for _, b := range nw.Neighbors(i) {
					if !nw.HasLink(b, i) {
						t.Errorf("missing mirror %d-%d", b, i)
					}
				}
				_ = nw.Degree(i)
				_ = nw.Value(i)
			}
			_ = nw.SortedValues()
		}(w)
	}
	wg.Wait()
	require.Equal(t, links, nw.LinkCount())
}
