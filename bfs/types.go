// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction selects which relationship index the search follows.
type Direction int

const (
	// Forward walks Parent → Child, i.e. towards descendants.
	Forward Direction = iota
	// Reverse walks Child → Parent, i.e. towards ancestors.
	Reverse
)

// String returns "forward" or "reverse".
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}

	return "forward"
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction picks descendants (Forward) or ancestors (Reverse).
	Direction Direction

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip relationships by returning false.
	// Called for each traversed link curr→neighbor with its kind.
	FilterNeighbor func(curr, neighbor string, kind core.RelationKind) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - Forward direction
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all relationships allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		Direction:      Forward,
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string, _ core.RelationKind) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects Forward (descendants) or Reverse (ancestors).
// Any other value is an ErrOptionViolation.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		if d != Forward && d != Reverse {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Direction = d
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips relationships when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string, kind core.RelationKind) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithKinds restricts traversal to relationships of the listed kinds.
// An empty list is an ErrOptionViolation.
func WithKinds(kinds ...core.RelationKind) Option {
	return func(o *BFSOptions) {
		if len(kinds) == 0 {
			o.err = fmt.Errorf("%w: WithKinds needs at least one kind", ErrOptionViolation)
			return
		}
		allowed := make(map[core.RelationKind]struct{}, len(kinds))
		for _, k := range kinds {
			allowed[k] = struct{}{}
		}
		o.FilterNeighbor = func(_, _ string, kind core.RelationKind) bool {
			_, ok := allowed[kind]
			return ok
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: terms in visit sequence.
//   - Depth: hop count from the start for every discovered term.
//   - Parent: predecessor in the BFS tree (absent for the start).
//   - Via: kind of the relationship that discovered each term.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Via    map[string]core.RelationKind
}

// Levels groups the visited terms by depth, in visit order.
func (r *BFSResult) Levels() [][]string {
	var out [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], id)
	}

	return out
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Distance returns the hop count from the start to dest and whether dest
// was reached.
func (r *BFSResult) Distance(dest string) (int, bool) {
	d, ok := r.Depth[dest]
	return d, ok
}
