package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-aggregator/internal/types"
)

func validRecord() types.JobRecord {
	job := &types.JobPosting{
		Company:   "Acme",
		Title:     "Backend Engineer",
		Source:    "remoteok",
		URL:       "https://remoteok.com/remote-jobs/1",
		ScrapedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		TechStack: []string{"go"},
	}
	return job.ToRecord()
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestValidateRecords_Valid(t *testing.T) {
	doc := marshal(t, []types.JobRecord{validRecord()})
	assert.NoError(t, ValidateRecords(doc))
}

func TestValidateRecords_EmptyArray(t *testing.T) {
	assert.NoError(t, ValidateRecords([]byte("[]")))
}

func TestValidateRecords_MissingRequiredField(t *testing.T) {
	rec := validRecord()
	rec.Company = ""
	doc := marshal(t, []types.JobRecord{rec})

	err := ValidateRecords(doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateRecords_ScoreOutOfRange(t *testing.T) {
	rec := validRecord()
	rec.HiddenScore = 150
	doc := marshal(t, []types.JobRecord{rec})

	err := ValidateRecords(doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateRecords_BadFingerprint(t *testing.T) {
	rec := validRecord()
	rec.ID = "not-a-digest"
	doc := marshal(t, []types.JobRecord{rec})

	err := ValidateRecords(doc)
	assert.Error(t, err)
}

func TestValidateRecords_NotAnArray(t *testing.T) {
	doc := marshal(t, validRecord())

	err := ValidateRecords(doc)
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	assert.True(t, ok)
}

func TestValidateRecordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	doc := marshal(t, []types.JobRecord{validRecord()})
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	assert.NoError(t, ValidateRecordsFile(path))
}

func TestValidateRecordsFile_Missing(t *testing.T) {
	err := ValidateRecordsFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestJobRecordSchemaExposed(t *testing.T) {
	assert.Contains(t, JobRecordSchema(), "hidden_score")
}
