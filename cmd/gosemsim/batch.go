package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gosemsim/metrics"
	"github.com/katalvlaran/gosemsim/similarity"
)

func batchCmd(a *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "batch PAIRS_FILE",
		Short: "Score entity pairs listed in a TSV file",
		Long: `Read "ENTITY_A<TAB>ENTITY_B" lines (blank lines and lines starting with #
are skipped) and write "ENTITY_A<TAB>ENTITY_B<TAB>SCORE" lines. Pairs that
cannot be scored are reported as absent and logged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			addr := metricsAddr
			if addr == "" {
				addr = a.cfg.Metrics.Addr
			}
			if addr != "" {
				stop := a.serveMetrics(addr)
				defer stop()
			}

			res, err := a.loadGraph(ctx)
			if err != nil {
				return err
			}
			ann, err := a.loadAnnotations()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			w := bufio.NewWriter(a.out)
			sc := bufio.NewScanner(f)
			lineNo, pairs := 0, 0
			for sc.Scan() {
				lineNo++
				line := strings.TrimSpace(sc.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				fields := strings.Split(line, "\t")
				if len(fields) < 2 {
					return fmt.Errorf("%s:%d: expected two tab-separated entity ids", args[0], lineNo)
				}
				x, y := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])

				score, err := a.compareEntities(ctx, res.Graph, ann, x, y)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					a.logger.Warn("pair not scored", "a", x, "b", y, "error", err)
					score = similarity.Absent()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", x, y, score)
				pairs++
			}
			if err := sc.Err(); err != nil {
				return err
			}
			a.logger.Info("batch complete", "pairs", pairs)

			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running (e.g. :9100)")

	return cmd
}

// serveMetrics starts the metrics endpoint and returns its shutdown function.
func (a *app) serveMetrics(addr string) func() {
	srv := metrics.NewServer(addr, a.registry)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
