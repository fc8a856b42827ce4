// Package bfs provides breadth-first search over integer-indexed graphs,
// returning unweighted distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	next  NeighborFunc
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search from start, expanding vertices with next and
// applying any number of functional Options.
func BFS(start int, next NeighborFunc, opts ...Option) (*Result, error) {
	if next == nil {
		return nil, ErrNilNeighborFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		next: next,
		opts: o,
		ctx:  o.Ctx,
		res: &Result{
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
	}
	w.enqueue(start, 0, start, true)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent (unless root),
// calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(id, d, parent int, root bool) {
	w.res.Depth[id] = d
	if !root {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
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

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors expands item, applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.next(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to expand %d: %w", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.res.Visited(nbr) {
			w.enqueue(nbr, nextDepth, item.id, false)
		}
	}

	return nil
}
