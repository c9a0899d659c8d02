package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gosemsim/similarity"
)

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load the ontology, precompute lower bounds and print graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			g := res.Graph

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "format-version\t%s\n", res.Header.FormatVersion)
			fmt.Fprintf(tw, "data-version\t%s\n", res.Header.DataVersion)
			fmt.Fprintf(tw, "terms\t%d\n", g.TermCount())
			fmt.Fprintf(tw, "relationships\t%d\n", g.RelationshipCount())
			fmt.Fprintf(tw, "aliases\t%d\n", len(g.Aliases()))
			fmt.Fprintf(tw, "obsolete skipped\t%d\n", res.Obsolete)
			fmt.Fprintf(tw, "roots\t%v\n", g.Roots())
			fmt.Fprintf(tw, "state\t%s\n", g.State())

			return tw.Flush()
		},
	}
}

func termCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term TERM_A TERM_B",
		Short: "Compare two ontology terms",
		Long: `Print the information content of both terms, their lowest common ancestor
and the score of the configured similarity method. Alternate ids are resolved.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			g := res.Graph

			x, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			y, err := resolve(g, args[1])
			if err != nil {
				return err
			}
			m, err := a.method()
			if err != nil {
				return err
			}

			icX, err := similarity.InformationContent(g, x)
			if err != nil {
				return err
			}
			icY, err := similarity.InformationContent(g, y)
			if err != nil {
				return err
			}
			lca, ok, err := similarity.LowestCommonAncestor(g, x, y)
			if err != nil {
				return err
			}
			if !ok {
				lca = similarity.Absent().String()
			}
			score, err := m(g, x, y)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ic(%s)\t%v\n", x, icX)
			fmt.Fprintf(tw, "ic(%s)\t%v\n", y, icY)
			fmt.Fprintf(tw, "lca\t%s\n", lca)
			fmt.Fprintf(tw, "%s\t%s\n", a.cfg.Similarity.Method, score)

			return tw.Flush()
		},
	}
}

func entityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "entity ENTITY_A ENTITY_B",
		Short: "Compare two annotated gene products",
		Long: `Score the annotation term sets of two entities (GAF DB Object IDs) with the
configured similarity method and term-set strategy. Annotated ids missing from
the ontology are dropped with a warning.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			ann, err := a.loadAnnotations()
			if err != nil {
				return err
			}

			score, err := a.compareEntities(cmd.Context(), res.Graph, ann, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s\t%s\t%s\n", args[0], args[1], score)

			return nil
		},
	}
}
