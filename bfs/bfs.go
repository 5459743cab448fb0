package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pedroute/core"
)

// queueItem pairs a region ID with its BFS depth.
type queueItem struct {
	id    core.RegionID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.RegionID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on the region graph of g starting from
// start, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartRegionNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.RegionID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if _, err := g.Region(start); err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartRegionNotFound, start)
	}

	n := g.RegionCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.RegionID]bool, n),
		res: &BFSResult{
			Order:  make([]core.RegionID, 0, n),
			Depth:  make(map[core.RegionID]int, n),
			Parent: make(map[core.RegionID]core.RegionID, n),
		},
	}

	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// Reachable reports whether region to can be reached from region from by
// following gateways.
func Reachable(g *core.Graph, from, to core.RegionID) (bool, error) {
	if from == to {
		if g == nil {
			return false, ErrGraphNil
		}
		if _, err := g.Region(from); err != nil {
			return false, fmt.Errorf("%w: %d", ErrStartRegionNotFound, from)
		}

		return true, nil
	}
	res, err := BFS(g, from)
	if err != nil {
		return false, err
	}
	_, ok := res.Depth[to]

	return ok, nil
}

// enqueue marks id visited at depth d, records its parent and adds it to
// the queue.
func (w *walker) enqueue(id core.RegionID, d int, parent core.RegionID, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at region %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor region in ascending ID order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.RegionNeighbors(item.id) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id, true)
	}
}
