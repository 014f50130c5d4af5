// Package traverse provides tunable options and error definitions
// for breadth-first search over a network.Network.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start node is out of range.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("traverse: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks for one BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. A non-nil error aborts BFS.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor skips the link curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback; returning an error stops BFS.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond depth d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the node path from the start to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
