package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-aggregator/internal/observability"
	"github.com/jonathan/job-aggregator/internal/store"
	"github.com/jonathan/job-aggregator/internal/types"
)

func TestRunStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	records := []types.JobRecord{
		{ID: "1", Company: "Acme", Title: "Engineer", TechStack: []string{"go"},
			Source: "hn", PostedDate: "2026-08-01T00:00:00Z", HiddenScore: 100},
		{ID: "2", Company: "Globex", Title: "Analyst", TechStack: []string{},
			Source: "remoteok", PostedDate: "2026-08-02T00:00:00Z", HiddenScore: 60},
	}
	require.NoError(t, store.Save(path, records))

	statsInput = path
	t.Cleanup(func() { statsInput = "jobs.json" })

	assert.NoError(t, runStats(statsCmd, nil))
}

func TestRunStatsMissingFile(t *testing.T) {
	statsInput = filepath.Join(t.TempDir(), "nope.json")
	t.Cleanup(func() { statsInput = "jobs.json" })

	assert.Error(t, runStats(statsCmd, nil))
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	statsInput = path
	t.Cleanup(func() { statsInput = "jobs.json" })

	assert.NoError(t, runStats(statsCmd, nil))
}

func TestTopTruncates(t *testing.T) {
	counts := make([]observability.Count, 15)
	assert.Len(t, top(counts), 10)
	assert.Len(t, top(counts[:3]), 3)
}
