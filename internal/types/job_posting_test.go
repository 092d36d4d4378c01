package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	job := &JobPosting{Company: "Stripe", Title: "Backend Engineer"}

	first := job.Fingerprint()
	second := job.Fingerprint()

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // sha256 hex digest
}

func TestFingerprint_CaseInsensitive(t *testing.T) {
	lower := &JobPosting{Company: "stripe", Title: "backend engineer"}
	upper := &JobPosting{Company: "STRIPE", Title: "BACKEND ENGINEER"}

	assert.Equal(t, lower.Fingerprint(), upper.Fingerprint())
}

func TestFingerprint_IgnoresSurroundingWhitespace(t *testing.T) {
	trimmed := &JobPosting{Company: "Acme Inc", Title: "Senior Backend Engineer"}
	padded := &JobPosting{Company: "  Acme Inc ", Title: "Senior Backend Engineer  "}

	assert.Equal(t, trimmed.Fingerprint(), padded.Fingerprint())
}

func TestFingerprint_DistinctJobsDiffer(t *testing.T) {
	a := &JobPosting{Company: "Acme Inc", Title: "Backend Engineer"}
	b := &JobPosting{Company: "Beta Corp", Title: "Backend Engineer"}

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestToRecord_AllFieldsSet(t *testing.T) {
	posted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	score := 95
	job := &JobPosting{
		Company:     "Stripe",
		Title:       "Backend Engineer",
		Location:    "San Francisco",
		TechStack:   []string{"go", "postgres"},
		Source:      "HN Who's Hiring",
		SourceURL:   "https://news.ycombinator.com/item?id=1",
		URL:         "https://stripe.com/jobs/1",
		ScrapedAt:   posted.Add(2 * time.Hour),
		PostedDate:  &posted,
		HiddenScore: &score,
	}

	rec := job.ToRecord()

	assert.Equal(t, job.Fingerprint(), rec.ID)
	assert.Equal(t, "Stripe", rec.Company)
	assert.Equal(t, "Backend Engineer", rec.Title)
	require.NotNil(t, rec.Location)
	assert.Equal(t, "San Francisco", *rec.Location)
	assert.Equal(t, []string{"go", "postgres"}, rec.TechStack)
	assert.Equal(t, "https://stripe.com/jobs/1", rec.URL)
	assert.Equal(t, "hn who's hiring", rec.Source)
	assert.Equal(t, posted.Format(time.RFC3339), rec.PostedDate)
	assert.Equal(t, 95, rec.HiddenScore)
}

func TestToRecord_Fallbacks(t *testing.T) {
	scraped := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	job := &JobPosting{
		Company:   "Globex",
		Title:     "Frontend Engineer",
		SourceURL: "https://remoteok.com/jobs",
		ScrapedAt: scraped,
	}

	rec := job.ToRecord()

	assert.Nil(t, rec.Location)
	assert.Equal(t, "https://remoteok.com/jobs", rec.URL, "url falls back to source url")
	assert.Equal(t, "unknown", rec.Source, "empty source serializes as unknown")
	assert.Equal(t, scraped.Format(time.RFC3339), rec.PostedDate, "posted_date falls back to scrape time")
	assert.Equal(t, 0, rec.HiddenScore, "unset score serializes as zero")
	assert.NotNil(t, rec.TechStack, "tech_stack is an empty array, not null")
}

func TestFromRecord_RoundTrip(t *testing.T) {
	posted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	score := 80
	job := &JobPosting{
		Company:     "Stripe",
		Title:       "Backend Engineer",
		Location:    "Remote",
		TechStack:   []string{"go"},
		Source:      "yc",
		SourceURL:   "https://ycombinator.com/jobs",
		ScrapedAt:   posted,
		PostedDate:  &posted,
		HiddenScore: &score,
	}

	restored, err := FromRecord(job.ToRecord())
	require.NoError(t, err)

	assert.Equal(t, job.Company, restored.Company)
	assert.Equal(t, job.Title, restored.Title)
	assert.Equal(t, job.Location, restored.Location)
	assert.Equal(t, job.TechStack, restored.TechStack)
	require.NotNil(t, restored.PostedDate)
	assert.True(t, posted.Equal(*restored.PostedDate))
	assert.True(t, posted.Equal(restored.ScrapedAt), "missing scrape time substitutes posted date")
	require.NotNil(t, restored.HiddenScore)
	assert.Equal(t, 80, *restored.HiddenScore)
	assert.Equal(t, job.Fingerprint(), restored.Fingerprint())
}

func TestFromRecord_MissingRequiredFields(t *testing.T) {
	_, err := FromRecord(JobRecord{ID: "abc", Title: "Backend Engineer"})
	assert.Error(t, err)

	_, err = FromRecord(JobRecord{ID: "abc", Company: "Stripe"})
	assert.Error(t, err)
}

func TestFromRecord_InvalidPostedDate(t *testing.T) {
	_, err := FromRecord(JobRecord{Company: "Stripe", Title: "Backend Engineer", PostedDate: "yesterday"})
	assert.Error(t, err)
}

func TestSortPostingsByScore_DescendingAndStable(t *testing.T) {
	high, mid := 100, 60
	jobs := []*JobPosting{
		{Company: "Globex", Title: "Frontend Engineer", HiddenScore: &mid},
		{Company: "Initech", Title: "SRE"}, // unscored, counts as zero
		{Company: "Stripe", Title: "Backend Engineer", HiddenScore: &high},
		{Company: "Hooli", Title: "Data Engineer", HiddenScore: &mid},
	}

	SortPostingsByScore(jobs)

	assert.Equal(t, "Stripe", jobs[0].Company)
	assert.Equal(t, "Globex", jobs[1].Company, "equal scores keep input order")
	assert.Equal(t, "Hooli", jobs[2].Company)
	assert.Equal(t, "Initech", jobs[3].Company)
}

func TestSortRecordsByScore_Descending(t *testing.T) {
	records := []JobRecord{
		{Company: "Globex", HiddenScore: 60},
		{Company: "Stripe", HiddenScore: 100},
	}

	SortRecordsByScore(records)

	assert.Equal(t, "Stripe", records[0].Company)
	assert.Equal(t, "Globex", records[1].Company)
}
