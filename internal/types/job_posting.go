// Package types provides type definitions for structured data used throughout the job-aggregator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// JobPosting represents a normalized job posting scraped from one source.
// Instances are immutable after construction except for HiddenScore, which
// the scoring pass assigns once when it is nil.
type JobPosting struct {
	Company     string
	Title       string
	Location    string // validated, normalized location; empty when unknown
	TechStack   []string
	RawText     string // original excerpt, kept for auditing; not part of identity
	Source      string
	SourceURL   string
	URL         string // application URL; falls back to SourceURL at serialization
	ScrapedAt   time.Time
	PostedDate  *time.Time
	CommentID   string // thread-comment identity hint, only set by thread sources
	HiddenScore *int   // 0-100 rank score, nil until computed
}

// DedupKey returns the normalized "company|title" string that identity and
// similarity checks operate on.
func (j *JobPosting) DedupKey() string {
	return NormalizedKey(j.Company, j.Title)
}

// NormalizedKey builds the canonical identity key for a company/title pair.
func NormalizedKey(company, title string) string {
	return strings.ToLower(strings.TrimSpace(company)) + "|" + strings.ToLower(strings.TrimSpace(title))
}

// Fingerprint returns a stable hex digest of the normalized company+title
// key. Two postings with equal fingerprints are the same job for exact
// deduplication purposes.
func (j *JobPosting) Fingerprint() string {
	sum := sha256.Sum256([]byte(j.DedupKey()))
	return hex.EncodeToString(sum[:])
}

// JobRecord is the serialized consumer-facing form of a JobPosting.
type JobRecord struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	Location    *string  `json:"location"`
	TechStack   []string `json:"tech_stack"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	PostedDate  string   `json:"posted_date"` // RFC3339
	HiddenScore int      `json:"hidden_score"`
}

// ToRecord converts the posting to its unified serialized form.
// The application URL falls back to the source URL, the source label is
// lowercased ("unknown" when empty), and the posted date falls back to the
// scrape time.
func (j *JobPosting) ToRecord() JobRecord {
	rec := JobRecord{
		ID:        j.Fingerprint(),
		Company:   j.Company,
		Title:     j.Title,
		TechStack: j.TechStack,
		URL:       j.URL,
	}
	if rec.TechStack == nil {
		rec.TechStack = []string{}
	}
	if rec.URL == "" {
		rec.URL = j.SourceURL
	}
	if j.Location != "" {
		loc := j.Location
		rec.Location = &loc
	}
	rec.Source = strings.ToLower(j.Source)
	if rec.Source == "" {
		rec.Source = "unknown"
	}
	if j.PostedDate != nil {
		rec.PostedDate = j.PostedDate.Format(time.RFC3339)
	} else {
		rec.PostedDate = j.ScrapedAt.Format(time.RFC3339)
	}
	if j.HiddenScore != nil {
		rec.HiddenScore = *j.HiddenScore
	}
	return rec
}

// FromRecord reconstructs a JobPosting from its serialized form.
// Records do not carry a separate scrape time, so the posted date stands in
// for it.
func FromRecord(rec JobRecord) (*JobPosting, error) {
	if rec.Company == "" || rec.Title == "" {
		return nil, fmt.Errorf("record %s: company and title are required", rec.ID)
	}

	job := &JobPosting{
		Company:   rec.Company,
		Title:     rec.Title,
		TechStack: rec.TechStack,
		Source:    rec.Source,
		SourceURL: rec.URL,
		URL:       rec.URL,
	}
	if rec.Location != nil {
		job.Location = *rec.Location
	}
	if rec.PostedDate != "" {
		posted, err := time.Parse(time.RFC3339, rec.PostedDate)
		if err != nil {
			return nil, fmt.Errorf("record %s: invalid posted_date %q: %w", rec.ID, rec.PostedDate, err)
		}
		job.PostedDate = &posted
		job.ScrapedAt = posted
	}
	if rec.HiddenScore != 0 {
		score := rec.HiddenScore
		job.HiddenScore = &score
	}
	return job, nil
}

// SortRecordsByScore orders serialized records descending by hidden score,
// preserving the existing order of equal-score records.
func SortRecordsByScore(records []JobRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].HiddenScore > records[j].HiddenScore
	})
}

// SortPostingsByScore orders postings descending by hidden score (unscored
// postings count as zero), preserving input order among ties.
func SortPostingsByScore(jobs []*JobPosting) {
	score := func(j *JobPosting) int {
		if j.HiddenScore == nil {
			return 0
		}
		return *j.HiddenScore
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return score(jobs[i]) > score(jobs[j])
	})
}
