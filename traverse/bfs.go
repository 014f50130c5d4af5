package traverse

import (
	"fmt"

	"github.com/katalvlaran/contactnet/network"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	nw      *network.Network
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on nw starting from start.
// Returns ErrNetworkNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error wrapped with the node id.
func BFS(nw *network.Network, start int, opts ...Option) (*Result, error) {
	if nw == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := nw.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartNotFound, start, n)
	}

	w := &walker{
		nw:      nw,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// Reachable returns every node reachable from start in visit order.
func Reachable(nw *network.Network, start int) ([]int, error) {
	res, err := BFS(nw, start)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}

// enqueue marks node visited at depth d and records its parent (-1 for root).
func (w *walker) enqueue(node, d, parent int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	if parent >= 0 {
		w.res.Parent[node] = parent
	}
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %d: %w", item.node, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues unseen neighbors.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.nw.Neighbors(item.node) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.node)
	}
}
