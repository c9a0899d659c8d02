package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gosemsim/config"
	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/gaf"
	"github.com/katalvlaran/gosemsim/lowerbound"
	"github.com/katalvlaran/gosemsim/metrics"
	"github.com/katalvlaran/gosemsim/obo"
	"github.com/katalvlaran/gosemsim/similarity"
	"github.com/katalvlaran/gosemsim/termset"
)

var (
	errNoOntology    = errors.New("no ontology file configured (--ontology or ontology.path)")
	errNoAnnotations = errors.New("no annotation file configured (--annotations or annotations.path)")
	errUnknownEntity = errors.New("entity not found in annotations")
)

// app carries everything a subcommand needs once flags and config are resolved.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	out      io.Writer
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func (a *app) init(cfg *config.Config, out, errOut io.Writer) error {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.out = out
	a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	a.registry = prometheus.NewRegistry()
	a.metrics, err = metrics.New(a.registry)

	return err
}

// loadGraph parses the ontology and runs the lower bound pass under the
// configured timeout.
func (a *app) loadGraph(ctx context.Context) (*obo.Result, error) {
	if a.cfg.Ontology.Path == "" {
		return nil, errNoOntology
	}
	var opts []obo.Option
	if a.cfg.Ontology.IncludeObsolete {
		opts = append(opts, obo.WithIncludeObsolete())
	}
	res, err := obo.ParseFile(a.cfg.Ontology.Path, append(opts, obo.WithLogger(a.logger))...)
	if err != nil {
		return nil, err
	}

	strategy, err := lowerbound.ParseStrategy(a.cfg.Precompute.Strategy)
	if err != nil {
		return nil, err
	}
	if a.cfg.Precompute.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Precompute.Timeout)
		defer cancel()
	}
	if _, err = lowerbound.Compute(res.Graph,
		lowerbound.WithContext(ctx),
		lowerbound.WithStrategy(strategy),
		lowerbound.WithLogger(a.logger),
		lowerbound.WithObserver(a.metrics),
	); err != nil {
		return nil, err
	}

	return res, nil
}

func (a *app) loadAnnotations() (*gaf.Annotations, error) {
	if a.cfg.Annotations.Path == "" {
		return nil, errNoAnnotations
	}
	opts := []gaf.Option{gaf.WithLogger(a.logger)}
	if a.cfg.Annotations.NotQualified {
		opts = append(opts, gaf.WithNotQualified())
	}

	return gaf.ParseFile(a.cfg.Annotations.Path, opts...)
}

func (a *app) method() (similarity.Method, error) {
	return similarity.MethodByName(a.cfg.Similarity.Method, a.cfg.Similarity.WangWeights())
}

// resolve maps an id to its canonical term, following alt_id aliases.
func resolve(g *core.Graph, id string) (string, error) {
	canonical, ok := g.Resolve(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrTermNotFound, id)
	}

	return canonical, nil
}

// termSet resolves the annotated terms of an entity, dropping (with a
// warning) ids that are neither terms nor aliases of the ontology.
func (a *app) termSet(g *core.Graph, ann *gaf.Annotations, entityID string) ([]string, error) {
	e, ok := ann.Entity(entityID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownEntity, entityID)
	}

	out := make([]string, 0, len(e.Annotations))
	for _, id := range e.Terms() {
		canonical, err := resolve(g, id)
		if err != nil {
			a.logger.Warn("annotation dropped", "entity", entityID, "term", id, "error", err)
			continue
		}
		out = append(out, canonical)
	}

	return out, nil
}

// compareEntities scores two annotated entities with the configured method and strategy.
func (a *app) compareEntities(ctx context.Context, g *core.Graph, ann *gaf.Annotations, x, y string) (similarity.Score, error) {
	m, err := a.method()
	if err != nil {
		return similarity.Absent(), err
	}
	setX, err := a.termSet(g, ann, x)
	if err != nil {
		return similarity.Absent(), err
	}
	setY, err := a.termSet(g, ann, y)
	if err != nil {
		return similarity.Absent(), err
	}

	return termset.Aggregate(a.cfg.Aggregation.Strategy, setX, setY, termset.Bind(g, m),
		termset.WithContext(ctx),
		termset.WithConcurrency(a.cfg.Aggregation.Concurrency),
		termset.WithRecorder(a.metrics),
	)
}
