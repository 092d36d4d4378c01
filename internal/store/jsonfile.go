// Package store persists consolidated job records as flat JSON files.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/job-aggregator/internal/types"
)

// Save writes records to path as indented JSON, creating parent
// directories as needed. An empty slice is written as [] rather than null.
func Save(path string, records []types.JobRecord) error {
	if records == nil {
		records = []types.JobRecord{}
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Load reads records previously written by Save.
func Load(path string) ([]types.JobRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var records []types.JobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// RecordsFromPostings converts postings to their serialized record form.
func RecordsFromPostings(jobs []*types.JobPosting) []types.JobRecord {
	records := make([]types.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		records = append(records, job.ToRecord())
	}
	return records
}
