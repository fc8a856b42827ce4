// Package bfs provides breadth-first search over an implicit graph whose
// vertices are non-negative integer indices, such as the states of a finite
// automaton. Edges are supplied lazily by a NeighborFunc.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Epsilon-closure: BFS along epsilon edges only, Result.Sorted() is the
//     canonical closure key.
//   - Reachability pruning: BFS along every defined transition; unvisited
//     states are unreachable.
//
// Termination
//
//	Every vertex is enqueued at most once, so traversal terminates on cyclic
//	graphs (including self-loops and epsilon cycles).
//
// Determinism
//
//	Neighbors are enqueued in the order NeighborFunc returns them, so the
//	visit sequence is reproducible for a deterministic NeighborFunc.
//
// Complexity (V = reached vertices, E = edges inspected)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(0, func(id int) ([]int, error) { return adj[id], nil })
//	if err != nil {
//	    // ErrNilNeighborFunc, ErrOptionViolation, ErrNeighbors, ctx errors or hook errors
//	}
//	closure := res.Sorted()
//
// Errors
//
//   - ErrNilNeighborFunc  if next is nil.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. negative MaxDepth).
//   - ErrNeighbors        wrapping any error returned by the NeighborFunc.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
