// Package scoring computes the hidden rank score that blends source trust
// with posting recency.
package scoring

import (
	"strings"
	"time"
)

// sourceWeights is the fixed trust table, keyed by lowercased trimmed source
// label. Read-only after initialization.
var sourceWeights = map[string]int{
	"hn":              90,
	"hn who's hiring": 90,
	"hackernews":      90,
	"yc":              80,
	"ycombinator":     80,
	"wellfound":       70,
	"angellist":       70,
	"remoteok":        60,
	"weworkremotely":  50,
	"github jobs":     40,
	"stackoverflow":   30,
}

// defaultSourceWeight applies to sources missing from the trust table.
const defaultSourceWeight = 20

// maxScore caps the final score.
const maxScore = 100

// HiddenScore returns the 0-100 rank score for a posting. The recency bonus
// is computed from the posted date when known, else the scrape time, else
// now. Pure function of its inputs and the current clock.
func HiddenScore(source string, postedDate, scrapedAt *time.Time) int {
	return hiddenScoreAt(time.Now(), source, postedDate, scrapedAt)
}

// hiddenScoreAt is HiddenScore with an injected clock.
func hiddenScoreAt(now time.Time, source string, postedDate, scrapedAt *time.Time) int {
	base := defaultSourceWeight
	if weight, ok := sourceWeights[strings.ToLower(strings.TrimSpace(source))]; ok {
		base = weight
	}

	reference := now
	if postedDate != nil {
		reference = *postedDate
	} else if scrapedAt != nil {
		reference = *scrapedAt
	}

	score := base + recencyBonus(now.Sub(reference))
	if score > maxScore {
		return maxScore
	}
	return score
}

// recencyBonus rewards fresh postings; anything older than a week
// contributes nothing.
func recencyBonus(age time.Duration) int {
	switch {
	case age <= 24*time.Hour:
		return 10
	case age <= 7*24*time.Hour:
		return 5
	default:
		return 0
	}
}
