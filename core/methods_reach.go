// SPDX-License-Identifier: MIT
//
// File: methods_reach.go
// Role: Reachability queries (Ancestors, Descendants, AncestorsOrSelf).
// Policy:
//   - Results are true reachable sets, never path counts: a node reachable
//     through several routes (diamonds) is counted once.
//   - Once the graph is ready, sets are memoized per node; the memo is
//     dropped together with the lower bounds on any mutation.
//   - Callers receive copies; mutating a returned Set never leaks into the graph.

package core

import "fmt"

// Ancestors returns every term with a directed path to id; id itself is excluded.
//
// Errors:
//   - ErrEmptyTermID, ErrTermNotFound.
//
// Complexity:
//   - Time O(V+E) on a cache miss, O(|result|) on a hit; Space O(|result|).
func (g *Graph) Ancestors(id string) (Set, error) {
	return g.reach(id, true)
}

// Descendants returns every term reachable from id; id itself is excluded.
//
// Errors:
//   - ErrEmptyTermID, ErrTermNotFound.
//
// Complexity:
//   - Time O(V+E) on a cache miss, O(|result|) on a hit; Space O(|result|).
func (g *Graph) Descendants(id string) (Set, error) {
	return g.reach(id, false)
}

// AncestorsOrSelf returns Ancestors(id) ∪ {id}.
func (g *Graph) AncestorsOrSelf(id string) (Set, error) {
	s, err := g.reach(id, true)
	if err != nil {
		return nil, err
	}
	s[id] = struct{}{}

	return s, nil
}

func (g *Graph) reach(id string, up bool) (Set, error) {
	if id == "" {
		return nil, ErrEmptyTermID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.terms[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrTermNotFound, id)
	}

	if g.state != StateLowerBoundsReady {
		return g.walkLocked(id, up), nil
	}

	g.muCache.Lock()
	defer g.muCache.Unlock()
	cache := &g.descendantCache
	if up {
		cache = &g.ancestorCache
	}
	if *cache == nil {
		*cache = make(map[string]Set)
	}
	if s, ok := (*cache)[id]; ok {
		return s.clone(), nil
	}
	s := g.walkLocked(id, up)
	(*cache)[id] = s

	return s.clone(), nil
}

// walkLocked collects every node reachable from start along the parents
// index (up) or the children index. Caller must hold mu.
func (g *Graph) walkLocked(start string, up bool) Set {
	index := g.children
	if up {
		index = g.parents
	}
	seen := make(Set)
	stack := []string{start}
	var cur string
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for nbr := range index[cur] {
			if _, ok := seen[nbr]; ok {
				continue
			}
			seen[nbr] = struct{}{}
			stack = append(stack, nbr)
		}
	}
	// A cycle through start would put it in its own reachable set.
	delete(seen, start)

	return seen
}
