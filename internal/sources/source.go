// Package sources contains the per-site adapters that turn scraped pages
// into canonical job postings. Adapters are thin: field extraction,
// validation and all downstream policy live in the core packages.
package sources

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/job-aggregator/internal/location"
	"github.com/jonathan/job-aggregator/internal/types"
)

// maxFieldLength bounds company and title fields before they reach the core.
const maxFieldLength = 100

// Source is implemented by every job-site adapter.
type Source interface {
	// Name is the source label used for trust scoring.
	Name() string
	// Scrape fetches and parses the site, returning zero or more postings.
	Scrape(ctx context.Context) ([]*types.JobPosting, error)
}

// Candidate is the raw tuple an adapter assembles before normalization.
type Candidate struct {
	Company    string
	Title      string
	Location   string // free text; validated against the whitelist here
	TechStack  []string
	RawText    string
	Source     string
	SourceURL  string
	URL        string
	CommentID  string
	PostedDate *time.Time
}

// NewPosting normalizes the candidate into a canonical JobPosting: fields
// are trimmed and bounded, and the location only survives if the whitelist
// validator recognizes it.
func (c Candidate) NewPosting(scrapedAt time.Time) *types.JobPosting {
	return &types.JobPosting{
		Company:    bound(c.Company),
		Title:      bound(c.Title),
		Location:   location.ValidateAndNormalize(c.Location),
		TechStack:  c.TechStack,
		RawText:    c.RawText,
		Source:     c.Source,
		SourceURL:  c.SourceURL,
		URL:        c.URL,
		CommentID:  c.CommentID,
		ScrapedAt:  scrapedAt,
		PostedDate: c.PostedDate,
	}
}

// bound trims s and cuts it to maxFieldLength characters on a rune boundary.
func bound(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > maxFieldLength {
		s = strings.TrimSpace(string(runes[:maxFieldLength]))
	}
	return s
}
