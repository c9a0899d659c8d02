// Package main provides the gosemsim binary entry point.
// gosemsim loads an OBO ontology and GAF annotations, precomputes term
// statistics and scores terms or annotated gene products against each other.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gosemsim/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "gosemsim"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// flags are the persistent command-line overrides of the configuration file.
type flags struct {
	configPath  string
	logLevel    string
	ontology    string
	annotations string
	method      string
	strategy    string
	concurrency int
}

func rootCmd() *cobra.Command {
	var (
		f   flags
		env = &app{}
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Semantic similarity over ontology terms and annotated gene products",
		Long: `gosemsim computes semantic similarity between terms of an OBO ontology
(Resnik, normalized Resnik, Lin, Wang, Pekar) and between gene products
annotated in a GAF file (max, avg, best-match average).

Settings come from an optional YAML file (--config) overridden by flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return env.init(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.ontology, "ontology", "", "OBO ontology file (.obo or .obo.gz)")
	pf.StringVar(&f.annotations, "annotations", "", "GAF annotation file (.gaf or .gaf.gz)")
	pf.StringVar(&f.method, "method", "", "Similarity method (resnik, norm_resnik, lin, wang, pekar)")
	pf.StringVar(&f.strategy, "strategy", "", "Term-set strategy (max, avg, bma)")
	pf.IntVar(&f.concurrency, "concurrency", 0, "Concurrent pair evaluations per term-set comparison")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})
	cmd.AddCommand(statsCmd(env), termCmd(env), entityCmd(env), batchCmd(env))

	return cmd
}

// resolveConfig loads the config file (or defaults) and applies the flags
// the user actually set.
func resolveConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	pf := cmd.Flags()
	override := &config.Config{}
	if pf.Changed("log-level") || f.configPath == "" {
		override.Log.Level = f.logLevel
	}
	override.Ontology.Path = f.ontology
	override.Annotations.Path = f.annotations
	override.Similarity.Method = f.method
	override.Aggregation.Strategy = f.strategy
	override.Aggregation.Concurrency = f.concurrency
	cfg.Merge(override)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
