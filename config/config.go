// Package config provides YAML configuration loading and validation for the
// gosemsim command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/lowerbound"
	"github.com/katalvlaran/gosemsim/similarity"
	"github.com/katalvlaran/gosemsim/termset"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the complete gosemsim configuration.
type Config struct {
	Ontology    OntologyConfig    `yaml:"ontology"`
	Annotations AnnotationsConfig `yaml:"annotations"`
	Similarity  SimilarityConfig  `yaml:"similarity"`
	Precompute  PrecomputeConfig  `yaml:"precompute"`
	Aggregation AggregationConfig `yaml:"aggregation"`
	Log         LogConfig         `yaml:"log"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// OntologyConfig locates the OBO file.
type OntologyConfig struct {
	// Path to an .obo or .obo.gz file.
	Path string `yaml:"path"`
	// IncludeObsolete keeps obsolete terms in the graph.
	IncludeObsolete bool `yaml:"include_obsolete"`
}

// AnnotationsConfig locates the GAF file.
type AnnotationsConfig struct {
	// Path to a .gaf or .gaf.gz file.
	Path string `yaml:"path"`
	// NotQualified keeps NOT-qualified annotations.
	NotQualified bool `yaml:"not_qualified"`
}

// SimilarityConfig selects the pairwise measure.
type SimilarityConfig struct {
	// Method is one of similarity.MethodNames().
	Method string `yaml:"method"`
	// Weights are the Wang propagation factors per relation kind, each in [0, 1].
	Weights map[string]float64 `yaml:"weights"`
}

// PrecomputeConfig bounds the lower bound pass.
type PrecomputeConfig struct {
	// Strategy is "traversal" or "bitset".
	Strategy string `yaml:"strategy"`
	// Timeout aborts precomputation; 0 disables it.
	Timeout time.Duration `yaml:"timeout"`
}

// AggregationConfig selects the term-set strategy.
type AggregationConfig struct {
	// Strategy is one of termset.StrategyNames().
	Strategy string `yaml:"strategy"`
	// Concurrency bounds parallel pair evaluations (≥ 1).
	Concurrency int `yaml:"concurrency"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
}

// MetricsConfig configures the Prometheus endpoint of the batch command.
type MetricsConfig struct {
	// Addr is the listen address for /metrics; empty disables the endpoint.
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Similarity: SimilarityConfig{
			Method: similarity.MethodResnik,
			Weights: map[string]float64{
				string(core.IsA):    0.8,
				string(core.PartOf): 0.6,
			},
		},
		Precompute: PrecomputeConfig{
			Strategy: lowerbound.StrategyTraversal.String(),
			Timeout:  5 * time.Minute,
		},
		Aggregation: AggregationConfig{
			Strategy:    termset.StrategyBMA,
			Concurrency: 1,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks that the configuration is usable. File paths are not
// checked here; commands report missing files when they open them.
func (c *Config) Validate() error {
	if _, err := similarity.MethodByName(c.Similarity.Method, nil); err != nil {
		return fmt.Errorf("%w: similarity.method: %w", ErrInvalidConfig, err)
	}
	for kind, w := range c.Similarity.Weights {
		if kind == "" {
			return fmt.Errorf("%w: similarity.weights: empty relation kind", ErrInvalidConfig)
		}
		if w < 0 || w > 1 {
			return fmt.Errorf("%w: similarity.weights[%s] must be between 0 and 1", ErrInvalidConfig, kind)
		}
	}
	if _, err := lowerbound.ParseStrategy(c.Precompute.Strategy); err != nil {
		return fmt.Errorf("%w: precompute.strategy: %w", ErrInvalidConfig, err)
	}
	if c.Precompute.Timeout < 0 {
		return fmt.Errorf("%w: precompute.timeout must not be negative", ErrInvalidConfig)
	}
	if _, err := termset.StrategyByName(c.Aggregation.Strategy); err != nil {
		return fmt.Errorf("%w: aggregation.strategy: %w", ErrInvalidConfig, err)
	}
	if c.Aggregation.Concurrency < 1 {
		return fmt.Errorf("%w: aggregation.concurrency must be at least 1", ErrInvalidConfig)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// WangWeights converts the configured weights; nil when none are set.
func (s SimilarityConfig) WangWeights() similarity.Weights {
	if len(s.Weights) == 0 {
		return nil
	}
	w := make(similarity.Weights, len(s.Weights))
	for kind, f := range s.Weights {
		w[core.RelationKind(kind)] = f
	}

	return w
}

// SlogLevel parses Level; empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}

	return level, nil
}

// LoadFromFile loads configuration from a YAML file on top of DefaultConfig.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Inputs
	if other.Ontology.Path != "" {
		c.Ontology.Path = other.Ontology.Path
	}
	if other.Ontology.IncludeObsolete {
		c.Ontology.IncludeObsolete = true
	}
	if other.Annotations.Path != "" {
		c.Annotations.Path = other.Annotations.Path
	}
	if other.Annotations.NotQualified {
		c.Annotations.NotQualified = true
	}

	// Similarity
	if other.Similarity.Method != "" {
		c.Similarity.Method = other.Similarity.Method
	}
	if len(other.Similarity.Weights) > 0 {
		c.Similarity.Weights = other.Similarity.Weights
	}

	// Precompute
	if other.Precompute.Strategy != "" {
		c.Precompute.Strategy = other.Precompute.Strategy
	}
	if other.Precompute.Timeout != 0 {
		c.Precompute.Timeout = other.Precompute.Timeout
	}

	// Aggregation
	if other.Aggregation.Strategy != "" {
		c.Aggregation.Strategy = other.Aggregation.Strategy
	}
	if other.Aggregation.Concurrency != 0 {
		c.Aggregation.Concurrency = other.Aggregation.Concurrency
	}

	// Log / metrics
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
