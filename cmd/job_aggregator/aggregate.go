package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-aggregator/internal/config"
	"github.com/jonathan/job-aggregator/internal/consolidate"
	"github.com/jonathan/job-aggregator/internal/dedup"
	"github.com/jonathan/job-aggregator/internal/fetch"
	"github.com/jonathan/job-aggregator/internal/observability"
	"github.com/jonathan/job-aggregator/internal/schemas"
	"github.com/jonathan/job-aggregator/internal/sources"
	"github.com/jonathan/job-aggregator/internal/store"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Scrape all configured sources and write consolidated records",
	Long:  "Scrape every active source, normalize and score the postings, remove fuzzy duplicates across sources, and write the ranked records as JSON.",
	RunE:  runAggregate,
}

var (
	configPath string
	outputPath string
	strategy   string
	verbose    bool
)

func init() {
	aggregateCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to sources config file (built-in boards when omitted)")
	aggregateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file (default from config)")
	aggregateCmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Dedup strategy: fuzzy or exact")
	aggregateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print run statistics")

	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override config file values
	if outputPath != "" {
		cfg.Output = outputPath
	}
	if strategy != "" {
		cfg.Strategy = strategy
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client := fetch.NewClient(nil)
	active := cfg.ActiveSources()
	srcs := make([]sources.Source, 0, len(active))
	for _, sc := range active {
		src, err := sources.FromConfig(sc, client)
		if err != nil {
			return fmt.Errorf("failed to build source %q: %w", sc.Name, err)
		}
		srcs = append(srcs, src)
	}
	if len(srcs) == 0 {
		return fmt.Errorf("no active sources configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := consolidate.Run(ctx, consolidate.Options{
		Sources:  srcs,
		Strategy: dedupStrategy(cfg.Strategy),
	})
	if err != nil {
		return fmt.Errorf("consolidation failed: %w", err)
	}

	records := store.RecordsFromPostings(result.Jobs)
	if err := store.Save(cfg.Output, records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	if err := schemas.ValidateRecordsFile(cfg.Output); err != nil {
		return fmt.Errorf("output failed schema validation: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %d jobs to %s (%d scraped, %d duplicates removed)\n",
		len(records), cfg.Output, result.Scraped, result.Duplicates)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRunSummary(result.RunID, result.Scraped, result.Duplicates, len(records))
		counts := make([]observability.Count, 0, len(result.BySource))
		for _, sc := range result.BySource {
			counts = append(counts, observability.Count{Label: sc.Source, N: sc.Scraped})
		}
		printer.PrintBreakdown("SCRAPED BY SOURCE", counts)
		printer.PrintTopJobs(records)
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// dedupStrategy maps the configured strategy name to a matcher. Unknown
// names are rejected by config validation before this runs.
func dedupStrategy(name string) dedup.Strategy {
	if name == "exact" {
		return dedup.ExactOrSubstring{}
	}
	return dedup.NewFuzzyRatio()
}
