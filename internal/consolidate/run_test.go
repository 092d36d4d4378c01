package consolidate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-aggregator/internal/sources"
	"github.com/jonathan/job-aggregator/internal/types"
)

type stubSource struct {
	name string
	jobs []*types.JobPosting
	err  error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Scrape(ctx context.Context) ([]*types.JobPosting, error) {
	return s.jobs, s.err
}

func posting(company, title, source string, postedAt time.Time) *types.JobPosting {
	return &types.JobPosting{
		Company:    company,
		Title:      title,
		Source:     source,
		ScrapedAt:  postedAt,
		PostedDate: &postedAt,
	}
}

func TestRunMergesScoresAndDeduplicates(t *testing.T) {
	now := time.Now()
	old := now.Add(-20 * 24 * time.Hour)

	hn := &stubSource{
		name: "HN Who's Hiring",
		jobs: []*types.JobPosting{
			posting("Stripe", "Backend Engineer", "hn who's hiring", now.Add(-time.Hour)),
		},
	}
	yc := &stubSource{
		name: "YC Jobs",
		jobs: []*types.JobPosting{
			posting("stripe", "Backend Engineer", "yc", now.Add(-time.Hour)),
		},
	}
	rok := &stubSource{
		name: "RemoteOK",
		jobs: []*types.JobPosting{
			posting("Globex", "Data Engineer", "remoteok", old),
		},
	}

	res, err := Run(context.Background(), Options{Sources: []sources.Source{hn, yc, rok}})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Scraped)
	assert.Equal(t, 1, res.Duplicates)
	require.Len(t, res.Jobs, 2)

	// The HN listing came first in declared order, so it survives the
	// duplicate pair and ranks first on score.
	first, second := res.Jobs[0], res.Jobs[1]
	assert.Equal(t, "Stripe", first.Company)
	require.NotNil(t, first.HiddenScore)
	assert.Equal(t, 100, *first.HiddenScore)

	assert.Equal(t, "Globex", second.Company)
	require.NotNil(t, second.HiddenScore)
	assert.Equal(t, 60, *second.HiddenScore)
}

func TestRunRecordsPerSourceCounts(t *testing.T) {
	a := &stubSource{name: "A", jobs: []*types.JobPosting{
		posting("Acme", "Engineer", "remoteok", time.Now()),
		posting("Initech", "Engineer", "remoteok", time.Now()),
	}}
	b := &stubSource{name: "B"}

	res, err := Run(context.Background(), Options{Sources: []sources.Source{a, b}})
	require.NoError(t, err)

	require.Len(t, res.BySource, 2)
	assert.Equal(t, SourceCount{Source: "A", Scraped: 2}, res.BySource[0])
	assert.Equal(t, SourceCount{Source: "B", Scraped: 0}, res.BySource[1])
}

func TestRunToleratesFailingSource(t *testing.T) {
	broken := &stubSource{name: "Broken", err: errors.New("boom")}
	ok := &stubSource{name: "OK", jobs: []*types.JobPosting{
		posting("Acme", "Engineer", "remoteok", time.Now()),
	}}

	res, err := Run(context.Background(), Options{Sources: []sources.Source{broken, ok}})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Scraped)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "Acme", res.Jobs[0].Company)
}

func TestRunPreservesExistingScore(t *testing.T) {
	score := 42
	job := posting("Acme", "Engineer", "hn", time.Now())
	job.HiddenScore = &score
	src := &stubSource{name: "A", jobs: []*types.JobPosting{job}}

	res, err := Run(context.Background(), Options{Sources: []sources.Source{src}})
	require.NoError(t, err)

	require.Len(t, res.Jobs, 1)
	assert.Equal(t, 42, *res.Jobs[0].HiddenScore)
}

func TestRunEmptySources(t *testing.T) {
	res, err := Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	assert.Zero(t, res.Scraped)
	assert.Empty(t, res.Jobs)
}
