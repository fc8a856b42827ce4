// Package bfs provides tunable options and error definitions
// for breadth‐first search over integer-indexed graphs.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNeighborFunc is returned if a nil NeighborFunc is passed.
	ErrNilNeighborFunc = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when the NeighborFunc fails for a vertex.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// NeighborFunc returns the successors of vertex id.
// Duplicates are allowed; each vertex is still visited once.
type NeighborFunc func(id int) ([]int, error)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(id, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
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

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips edges curr→neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists vertices in visit sequence.
	Order []int
	// Depth maps a vertex to its distance (in edges) from the start.
	Depth map[int]int
	// Parent maps a vertex to its predecessor in the BFS tree.
	// The start vertex has no entry.
	Parent map[int]int
}

// Visited reports whether id was reached.
func (r *Result) Visited(id int) bool {
	_, ok := r.Depth[id]

	return ok
}

// Sorted returns the reached vertices in ascending order.
func (r *Result) Sorted() []int {
	out := make([]int, len(r.Order))
	copy(out, r.Order)
	sort.Ints(out)

	return out
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
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
