// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, BFS-tree parents and the visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

// ErrNeighbors is returned when the graph cannot list a term's links.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// pending is one queued term: where it sits and how it was reached.
type pending struct {
	id    string
	depth int
	from  string // "" for the start term
	kind  core.RelationKind
}

// search is the state of one BFS run. The queue is consumed through head so
// the backing array is never re-sliced from the front.
type search struct {
	g    *core.Graph
	opts BFSOptions
	ctx  context.Context

	queue []pending
	head  int
	seen  map[string]struct{}
	res   *BFSResult
}

// BFS walks g from startID in the configured direction.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound for bad input.
//   - ErrOptionViolation for a rejected option.
//   - ErrNeighbors if the graph fails to list links.
//   - the context error on cancellation, or the OnVisit error, wrapped.
//
// Complexity: O(V + E) time and memory over the reachable part of the graph.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasTerm(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	s := newSearch(g, o)
	s.push(pending{id: startID})

	return s.res, s.run()
}

func newSearch(g *core.Graph, o BFSOptions) *search {
	return &search{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]pending, 0, 16),
		seen:  make(map[string]struct{}),
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
			Via:    make(map[string]core.RelationKind),
		},
	}
}

// push records p as discovered and queues it.
func (s *search) push(p pending) {
	s.seen[p.id] = struct{}{}
	s.res.Depth[p.id] = p.depth
	if p.from != "" {
		s.res.Parent[p.id] = p.from
		s.res.Via[p.id] = p.kind
	}
	s.opts.OnEnqueue(p.id, p.depth)
	s.queue = append(s.queue, p)
}

func (s *search) run() error {
	for s.head < len(s.queue) {
		if err := s.ctx.Err(); err != nil {
			return err
		}

		p := s.queue[s.head]
		s.head++
		s.opts.OnDequeue(p.id, p.depth)

		s.res.Order = append(s.res.Order, p.id)
		if err := s.opts.OnVisit(p.id, p.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", p.id, err)
		}
		if s.opts.MaxDepth > 0 && p.depth >= s.opts.MaxDepth {
			continue
		}
		if err := s.expand(p); err != nil {
			return err
		}
	}

	return nil
}

// expand queues every unseen neighbour of p that passes the filter.
// Links come sorted by ID, which fixes the visit order.
func (s *search) expand(p pending) error {
	var (
		links []core.Link
		err   error
	)
	if s.opts.Direction == Reverse {
		links, err = s.g.Parents(p.id)
	} else {
		links, err = s.g.Children(p.id)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, p.id, err)
	}

	for _, l := range links {
		if _, ok := s.seen[l.ID]; ok {
			continue
		}
		if !s.opts.FilterNeighbor(p.id, l.ID, l.Kind) {
			continue
		}
		s.push(pending{id: l.ID, depth: p.depth + 1, from: p.id, kind: l.Kind})
	}

	return nil
}

// Distances returns the hop count from startID to every term reachable in
// the chosen direction, startID included at 0.
func Distances(g *core.Graph, startID string, opts ...Option) (map[string]int, error) {
	res, err := BFS(g, startID, opts...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}
