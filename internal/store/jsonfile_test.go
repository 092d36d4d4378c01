package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-aggregator/internal/types"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "jobs.json")

	loc := "San Francisco"
	records := []types.JobRecord{
		{
			ID:          "abc",
			Company:     "Acme",
			Title:       "Backend Engineer",
			Location:    &loc,
			TechStack:   []string{"go", "postgres"},
			URL:         "https://acme.example/jobs/1",
			Source:      "remoteok",
			PostedDate:  "2026-08-01T12:00:00Z",
			HiddenScore: 60,
		},
	}

	require.NoError(t, Save(path, records))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRecordsFromPostings(t *testing.T) {
	score := 90
	posted := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	jobs := []*types.JobPosting{
		{
			Company:     "Acme",
			Title:       "Engineer",
			Source:      "HN",
			SourceURL:   "https://news.ycombinator.com/item?id=1",
			PostedDate:  &posted,
			HiddenScore: &score,
		},
	}

	records := RecordsFromPostings(jobs)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, "hn", records[0].Source)
	assert.Equal(t, "https://news.ycombinator.com/item?id=1", records[0].URL)
	assert.Equal(t, 90, records[0].HiddenScore)
}
