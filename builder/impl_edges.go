// SPDX-License-Identifier: MIT
// Package: gosemsim/builder
//
// impl_edges.go - explicit fixtures: Edges(rels...) and Pairs(pairs...).
//
// Contract:
//   - Relationships are added in the given order.
//   - Edges keeps each relationship's kind; an empty kind takes the next
//     configured kind. Pairs always takes configured kinds.
//   - Endpoints are created implicitly by core.Graph with the configured
//     namespace applied first.
//   - Acyclicity is NOT checked; explicit fixtures may describe any graph.
//
// Complexity:
//   - Time: O(k) for k relationships.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

const methodEdges = "Edges"

// Edges returns a Constructor that adds the given relationships verbatim.
func Edges(rels ...core.Relationship) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, r := range rels {
			if r.Parent == "" || r.Child == "" {
				return fmt.Errorf("%s: relationship %d has an empty endpoint: %w", methodEdges, i, ErrConstructFailed)
			}
			for _, id := range []string{r.Parent, r.Child} {
				if err := g.AddTerm(id, core.Attributes{Namespace: cfg.namespace}); err != nil {
					return fmt.Errorf("%s: AddTerm(%s): %w", methodEdges, id, err)
				}
			}
			if r.Kind == "" {
				if err := cfg.link(g, methodEdges, r.Parent, r.Child); err != nil {
					return err
				}
				continue
			}
			if err := g.AddRelationship(r.Parent, r.Child, r.Kind); err != nil {
				return fmt.Errorf("%s: AddRelationship(%s→%s, %s): %w", methodEdges, r.Parent, r.Child, r.Kind, err)
			}
		}

		return nil
	}
}

// Pairs returns a Constructor that adds parent→child pairs using the
// configured kinds.
func Pairs(pairs ...[2]string) Constructor {
	rels := make([]core.Relationship, len(pairs))
	for i, p := range pairs {
		rels[i] = core.Relationship{Parent: p[0], Child: p[1]}
	}

	return Edges(rels...)
}
