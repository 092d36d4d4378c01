package dedup

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/jonathan/job-aggregator/internal/types"
)

// Strategy decides whether two postings describe the same job. The engine
// depends only on this interface; the variant is chosen once at startup,
// never per-candidate.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string
	// Match reports whether a and b are near-duplicates.
	Match(a, b *types.JobPosting) bool
}

// Default similarity thresholds for the fuzzy strategy.
const (
	DefaultKeyThreshold     = 0.85
	DefaultCompanyThreshold = 0.95
	DefaultTitleThreshold   = 0.70
)

// FuzzyRatio matches postings by normalized edit similarity over their
// "company|title" keys. Two postings match when the full keys are similar
// enough, or when the companies are near-identical and the titles similar
// (same company, slightly reworded title).
type FuzzyRatio struct {
	KeyThreshold     float64
	CompanyThreshold float64
	TitleThreshold   float64
}

// NewFuzzyRatio returns a FuzzyRatio strategy with the default thresholds.
func NewFuzzyRatio() FuzzyRatio {
	return FuzzyRatio{
		KeyThreshold:     DefaultKeyThreshold,
		CompanyThreshold: DefaultCompanyThreshold,
		TitleThreshold:   DefaultTitleThreshold,
	}
}

func (FuzzyRatio) Name() string { return "fuzzy-ratio" }

// Match implements Strategy.
func (f FuzzyRatio) Match(a, b *types.JobPosting) bool {
	if similarity(a.DedupKey(), b.DedupKey()) >= f.KeyThreshold {
		return true
	}

	companyA := strings.ToLower(strings.TrimSpace(a.Company))
	companyB := strings.ToLower(strings.TrimSpace(b.Company))
	if similarity(companyA, companyB) < f.CompanyThreshold {
		return false
	}
	titleA := strings.ToLower(strings.TrimSpace(a.Title))
	titleB := strings.ToLower(strings.TrimSpace(b.Title))
	return similarity(titleA, titleB) >= f.TitleThreshold
}

// similarity is the normalized Levenshtein ratio in [0,1]: 1 for identical
// strings, 0 for entirely different ones.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	distance := matchr.Levenshtein(a, b)
	return 1 - float64(distance)/float64(longest)
}

// ExactOrSubstring is the degraded-mode strategy: case-insensitive exact
// match on company and title, or same company with one title contained in
// the other. It changes nothing about the engine's external contract.
type ExactOrSubstring struct{}

func (ExactOrSubstring) Name() string { return "exact-or-substring" }

// Match implements Strategy.
func (ExactOrSubstring) Match(a, b *types.JobPosting) bool {
	companyA := strings.ToLower(strings.TrimSpace(a.Company))
	companyB := strings.ToLower(strings.TrimSpace(b.Company))
	if companyA != companyB {
		return false
	}
	titleA := strings.ToLower(strings.TrimSpace(a.Title))
	titleB := strings.ToLower(strings.TrimSpace(b.Title))
	return strings.Contains(titleA, titleB) || strings.Contains(titleB, titleA)
}
