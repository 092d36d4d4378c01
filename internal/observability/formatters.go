// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/job-aggregator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// Count pairs a label with how many records carried it.
type Count struct {
	Label string
	N     int
}

// PrintRunSummary outputs the headline numbers for one aggregation run.
func (p *Printer) PrintRunSummary(runID string, scraped, duplicates, final int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", runID))
	sb.WriteString(fmt.Sprintf("Scraped:    %d\n", scraped))
	sb.WriteString(fmt.Sprintf("Duplicates: %d\n", duplicates))
	sb.WriteString(fmt.Sprintf("Final:      %d", final))

	p.printBox("AGGREGATION RUN", sb.String())
}

// PrintBreakdown outputs labeled counts in the given order, for per-source
// scrape totals and similar pre-ordered data.
func (p *Printer) PrintBreakdown(title string, counts []Count) {
	if len(counts) == 0 {
		return
	}

	var sb strings.Builder
	for i, c := range counts {
		sb.WriteString(fmt.Sprintf("%-30s %d", c.Label, c.N))
		if i < len(counts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, sb.String())
}

// PrintTopJobs outputs the highest-ranked records with their scores.
func (p *Printer) PrintTopJobs(records []types.JobRecord) {
	if len(records) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(records), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := records[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Company))
		sb.WriteString(fmt.Sprintf("    %s\n", rec.Title))
		sb.WriteString(fmt.Sprintf("    Score: %d  Source: %s", rec.HiddenScore, rec.Source))
		if rec.Location != nil {
			sb.WriteString(fmt.Sprintf("  %s", *rec.Location))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(records)-maxItemsToShow))
	}

	p.printBox("TOP RANKED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// BreakdownBySource tallies records per source label, most frequent first.
func BreakdownBySource(records []types.JobRecord) []Count {
	return tally(records, func(rec types.JobRecord) []string {
		return []string{rec.Source}
	})
}

// TopCompanies tallies records per company, most frequent first.
func TopCompanies(records []types.JobRecord) []Count {
	return tally(records, func(rec types.JobRecord) []string {
		return []string{rec.Company}
	})
}

// TopTech tallies tech stack tags across all records, most frequent first.
func TopTech(records []types.JobRecord) []Count {
	return tally(records, func(rec types.JobRecord) []string {
		return rec.TechStack
	})
}

// ScoreDistribution buckets records by hidden score into bands of 20,
// highest band first. Empty bands are omitted.
func ScoreDistribution(records []types.JobRecord) []Count {
	byBand := make(map[int]int)
	for _, rec := range records {
		band := rec.HiddenScore / 20 * 20
		if band > 80 {
			band = 80
		}
		if band < 0 {
			band = 0
		}
		byBand[band]++
	}

	counts := make([]Count, 0, len(byBand))
	for band := 80; band >= 0; band -= 20 {
		n, ok := byBand[band]
		if !ok {
			continue
		}
		upper := band + 19
		if band == 80 {
			upper = 100
		}
		counts = append(counts, Count{Label: fmt.Sprintf("%d-%d", band, upper), N: n})
	}
	return counts
}

// TopLocations tallies records per location, most frequent first. Records
// without a location are counted under "Unspecified".
func TopLocations(records []types.JobRecord) []Count {
	return tally(records, func(rec types.JobRecord) []string {
		if rec.Location == nil {
			return []string{"Unspecified"}
		}
		return []string{*rec.Location}
	})
}

// tally counts the labels produced per record and orders them descending by
// count, breaking ties alphabetically so output is stable.
func tally(records []types.JobRecord, labels func(types.JobRecord) []string) []Count {
	byLabel := make(map[string]int)
	for _, rec := range records {
		for _, label := range labels(rec) {
			if label == "" {
				continue
			}
			byLabel[label]++
		}
	}

	counts := make([]Count, 0, len(byLabel))
	for label, n := range byLabel {
		counts = append(counts, Count{Label: label, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}
