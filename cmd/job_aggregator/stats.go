package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-aggregator/internal/observability"
	"github.com/jonathan/job-aggregator/internal/store"
	"github.com/jonathan/job-aggregator/internal/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print breakdowns for a previously written records file",
	RunE:  runStats,
}

var statsInput string

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "jobs.json", "Records file to summarize")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	records, err := store.Load(statsInput)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stdout, "No jobs in %s\n", statsInput)
		return nil
	}

	types.SortRecordsByScore(records)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTopJobs(records)
	printer.PrintBreakdown("JOBS BY SOURCE", observability.BreakdownBySource(records))
	printer.PrintBreakdown("SCORE DISTRIBUTION", observability.ScoreDistribution(records))
	printer.PrintBreakdown("TOP COMPANIES", top(observability.TopCompanies(records)))
	printer.PrintBreakdown("TOP TECHNOLOGIES", top(observability.TopTech(records)))
	printer.PrintBreakdown("TOP LOCATIONS", top(observability.TopLocations(records)))

	return nil
}

// top keeps the ten most frequent entries of a breakdown.
func top(counts []observability.Count) []observability.Count {
	if len(counts) > 10 {
		return counts[:10]
	}
	return counts
}
