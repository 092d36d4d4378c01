// Package main provides the entry point for the job aggregator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_aggregator",
	Short: "Job posting aggregator",
	Long:  "Job aggregator scrapes postings from multiple job boards and discussion threads, normalizes them into a canonical form, removes fuzzy duplicates, and ranks the survivors.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
