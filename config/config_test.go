package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosemsim/config"
	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/similarity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "resnik", cfg.Similarity.Method)
	assert.Equal(t, "traversal", cfg.Precompute.Strategy)
	assert.Equal(t, 5*time.Minute, cfg.Precompute.Timeout)
	assert.Equal(t, "bma", cfg.Aggregation.Strategy)
	assert.Equal(t, 1, cfg.Aggregation.Concurrency)
	assert.Equal(t, similarity.DefaultWeights(), cfg.Similarity.WangWeights())
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr bool
	}{
		{name: "valid default config", modify: func(c *config.Config) {}},
		{name: "wang method", modify: func(c *config.Config) { c.Similarity.Method = "wang" }},
		{name: "unknown method", modify: func(c *config.Config) { c.Similarity.Method = "cosine" }, wantErr: true},
		{name: "weight too high", modify: func(c *config.Config) { c.Similarity.Weights["is_a"] = 1.5 }, wantErr: true},
		{name: "weight negative", modify: func(c *config.Config) { c.Similarity.Weights["regulates"] = -0.1 }, wantErr: true},
		{name: "bitset strategy", modify: func(c *config.Config) { c.Precompute.Strategy = "bitset" }},
		{name: "unknown precompute strategy", modify: func(c *config.Config) { c.Precompute.Strategy = "magic" }, wantErr: true},
		{name: "negative timeout", modify: func(c *config.Config) { c.Precompute.Timeout = -time.Second }, wantErr: true},
		{name: "unknown aggregation", modify: func(c *config.Config) { c.Aggregation.Strategy = "median" }, wantErr: true},
		{name: "zero concurrency", modify: func(c *config.Config) { c.Aggregation.Concurrency = 0 }, wantErr: true},
		{name: "bad log level", modify: func(c *config.Config) { c.Log.Level = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "gosemsim.yaml")
	content := `
ontology:
  path: go-basic.obo.gz
similarity:
  method: wang
  weights:
    is_a: 0.7
    part_of: 0.5
    regulates: 0.2
precompute:
  strategy: bitset
  timeout: 30s
aggregation:
  concurrency: 4
log:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := config.LoadFromFile(configPath)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "go-basic.obo.gz", cfg.Ontology.Path)
	assert.Equal(t, "wang", cfg.Similarity.Method)
	assert.Equal(t, similarity.Weights{core.IsA: 0.7, core.PartOf: 0.5, core.Regulates: 0.2}, cfg.Similarity.WangWeights())
	assert.Equal(t, 30*time.Second, cfg.Precompute.Timeout)
	assert.Equal(t, "bitset", cfg.Precompute.Strategy)
	// Unset keys keep their defaults.
	assert.Equal(t, "bma", cfg.Aggregation.Strategy)
	assert.Equal(t, 4, cfg.Aggregation.Concurrency)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("similarity: [unclosed"), 0o644))
	_, err = config.LoadFromFile(bad)
	assert.Error(t, err)
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gosemsim.yaml")
	cfg := config.DefaultConfig()
	cfg.Ontology.Path = "go.obo"
	cfg.Precompute.Timeout = 90 * time.Second
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMerge(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Merge(nil)
	assert.Equal(t, config.DefaultConfig(), cfg)

	cfg.Merge(&config.Config{
		Ontology:    config.OntologyConfig{Path: "a.obo"},
		Similarity:  config.SimilarityConfig{Method: "lin"},
		Aggregation: config.AggregationConfig{Concurrency: 8},
		Metrics:     config.MetricsConfig{Addr: ":9090"},
	})
	assert.Equal(t, "a.obo", cfg.Ontology.Path)
	assert.Equal(t, "lin", cfg.Similarity.Method)
	assert.Equal(t, 8, cfg.Aggregation.Concurrency)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	// Zero values leave the receiver untouched.
	assert.Equal(t, "bma", cfg.Aggregation.Strategy)
	assert.Equal(t, similarity.DefaultWeights(), cfg.Similarity.WangWeights())
}
