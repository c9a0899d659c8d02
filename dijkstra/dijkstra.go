// Package dijkstra implements Dijkstra's algorithm for the strongest
// (maximum product) path over the relationships of an ontology graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each term is extracted at most once: V extractions from the heap.
//   - Each relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all relationship kinds to detect factors
//     outside [0, 1] and fail fast.
//   - We stop exploring once the strongest entry in the heap is below MinStrength.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal strengths pop in ascending ID order, so results do not depend on map iteration.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

// Dijkstra computes the strongest path strength from the source term
// (Options.Source) to every term reachable in the configured direction.
//
// Returns:
//
//   - strength: map from term ID to the best path product; the source maps to 1.
//     Unreachable terms are not present.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the strongest path to v goes through u.
//   - err: error if inputs are invalid or a factor is out of range.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. Factor must stay within [0, 1] for every kind in g (ErrFactorOutOfRange).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasTerm(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	checked := make(map[core.RelationKind]bool)
	for _, rel := range g.Relationships() {
		if checked[rel.Kind] {
			continue
		}
		checked[rel.Kind] = true
		if f := cfg.Factor(rel.Kind); f < 0 || f > 1 {
			return nil, nil, fmt.Errorf("%w: kind %q factor=%v", ErrFactorOutOfRange, rel.Kind, f)
		}
	}

	r := &runner{
		g:        g,
		options:  cfg,
		strength: make(map[string]float64),
		visited:  make(map[string]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.strength, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph
	options  Options
	strength map[string]float64 // best-known product from Source
	prev     map[string]string  // predecessor on the strongest path; nil unless ReturnPath
	visited  map[string]bool    // finalized terms
	pq       nodePQ
}

// init seeds the heap with Source at strength 1.
func (r *runner) init() {
	r.strength[r.options.Source] = 1
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, strength: 1})
}

// process pops the strongest pending term until the heap is empty or the
// best remaining strength is below MinStrength.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.strength < r.options.MinStrength {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax extends the strongest path to u by one relationship and records any
// neighbour whose strength strictly improves.
func (r *runner) relax(u string) error {
	var (
		links []core.Link
		err   error
	)
	if r.options.Direction == Forward {
		links, err = r.g.Children(u)
	} else {
		links, err = r.g.Parents(u)
	}
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	su := r.strength[u]
	for _, l := range links {
		cand := su * r.options.Factor(l.Kind)
		if cur, ok := r.strength[l.ID]; ok && cand <= cur {
			continue
		}
		r.strength[l.ID] = cand
		if r.prev != nil {
			r.prev[l.ID] = u
		}
		heap.Push(&r.pq, &nodeItem{id: l.ID, strength: cand})
	}

	return nil
}

// nodeItem represents a term and its current path strength from the source.
type nodeItem struct {
	id       string
	strength float64
}

// nodePQ is a max-heap of *nodeItem ordered by strength, ties by ID.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].strength != pq[j].strength {
		return pq[i].strength > pq[j].strength
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Path rebuilds the strongest path from the source to target using the
// predecessor map returned with WithReturnPath. It returns nil when target
// was not reached.
func Path(prev map[string]string, source, target string) []string {
	if target != source {
		if _, ok := prev[target]; !ok {
			return nil
		}
	}
	path := []string{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
