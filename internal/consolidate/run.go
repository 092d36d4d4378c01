// Package consolidate orchestrates one aggregation run: scrape every active
// source, score the candidates, deduplicate them, and rank the survivors.
package consolidate

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-aggregator/internal/dedup"
	"github.com/jonathan/job-aggregator/internal/scoring"
	"github.com/jonathan/job-aggregator/internal/sources"
	"github.com/jonathan/job-aggregator/internal/types"
)

// Options configures a consolidation run.
type Options struct {
	Sources []sources.Source
	// Strategy selects the similarity variant; nil means fuzzy matching.
	Strategy dedup.Strategy
}

// SourceCount is the number of candidates one source contributed.
type SourceCount struct {
	Source  string
	Scraped int
}

// Result summarizes one consolidation run.
type Result struct {
	RunID      string
	Scraped    int
	Duplicates int
	Jobs       []*types.JobPosting // deduplicated, sorted descending by score
	BySource   []SourceCount
}

// Run executes one batch consolidation pass. Sources are scraped
// concurrently, but their batches are merged in declared order before the
// single-threaded scoring and deduplication stages, so output is
// deterministic for a given set of scraped pages. A failing source is
// logged and contributes nothing; it never aborts the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	runID := uuid.NewString()
	batches := make([][]*types.JobPosting, len(opts.Sources))

	var g errgroup.Group
	for i, src := range opts.Sources {
		i, src := i, src
		g.Go(func() error {
			jobs, err := src.Scrape(ctx)
			if err != nil {
				log.Printf("source %s failed: %v", src.Name(), err)
				return nil
			}
			batches[i] = jobs
			return nil
		})
	}
	// Scrape goroutines never return errors; Wait is only a join point.
	_ = g.Wait()

	var all []*types.JobPosting
	counts := make([]SourceCount, 0, len(opts.Sources))
	for i, src := range opts.Sources {
		all = append(all, batches[i]...)
		counts = append(counts, SourceCount{Source: src.Name(), Scraped: len(batches[i])})
	}

	assignScores(all)

	engine := dedup.NewEngine(opts.Strategy)
	unique := engine.Deduplicate(all)
	types.SortPostingsByScore(unique)

	log.Printf("run %s: %d scraped, %d duplicates removed, %d final (strategy %s)",
		runID, len(all), len(all)-len(unique), len(unique), engine.StrategyName())

	return &Result{
		RunID:      runID,
		Scraped:    len(all),
		Duplicates: len(all) - len(unique),
		Jobs:       unique,
		BySource:   counts,
	}, nil
}

// assignScores computes the hidden score for every posting that does not
// already carry one. Postings are otherwise immutable; this is the single
// post-construction write.
func assignScores(jobs []*types.JobPosting) {
	for _, job := range jobs {
		if job.HiddenScore != nil {
			continue
		}
		var scrapedAt *time.Time
		if !job.ScrapedAt.IsZero() {
			scrapedAt = &job.ScrapedAt
		}
		score := scoring.HiddenScore(job.Source, job.PostedDate, scrapedAt)
		job.HiddenScore = &score
	}
}
