// Package dedup reduces candidate job lists to a set with no exact or
// near-duplicate entries, preserving the first-seen instance of each job.
package dedup

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/jonathan/job-aggregator/internal/types"
)

// Engine performs order-preserving deduplication over a candidate batch.
// Internal state is mutated per candidate, so a single Deduplicate call must
// not be shared across goroutines.
type Engine struct {
	strategy Strategy
}

// NewEngine creates an Engine using the given similarity strategy, falling
// back to the fuzzy-ratio strategy when nil.
func NewEngine(strategy Strategy) *Engine {
	if strategy == nil {
		strategy = NewFuzzyRatio()
	}
	return &Engine{strategy: strategy}
}

// StrategyName reports which similarity strategy the engine runs.
func (e *Engine) StrategyName() string {
	return e.strategy.Name()
}

// Deduplicate returns the input postings with duplicates removed. For each
// candidate, in input order: skip on an already-seen fingerprint, then skip
// if the strategy matches it against any accepted posting, otherwise accept.
// The worst case is O(n²) string comparisons, acceptable for the batch sizes
// of one aggregation run. Inputs are never mutated.
func (e *Engine) Deduplicate(jobs []*types.JobPosting) []*types.JobPosting {
	if len(jobs) == 0 {
		return nil
	}

	unique := make([]*types.JobPosting, 0, len(jobs))
	seen := mapset.NewThreadUnsafeSet[string]()

	for _, job := range jobs {
		fingerprint := job.Fingerprint()
		if seen.Contains(fingerprint) {
			continue
		}
		if e.matchesAny(job, unique) {
			continue
		}
		unique = append(unique, job)
		seen.Add(fingerprint)
	}

	return unique
}

func (e *Engine) matchesAny(candidate *types.JobPosting, accepted []*types.JobPosting) bool {
	for _, existing := range accepted {
		if e.strategy.Match(candidate, existing) {
			return true
		}
	}
	return false
}
