package sources

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-aggregator/internal/extraction"
	"github.com/jonathan/job-aggregator/internal/fetch"
	"github.com/jonathan/job-aggregator/internal/types"
)

// RemoteOKSourceName is the trust-table label for RemoteOK.
const RemoteOKSourceName = "RemoteOK"

// DefaultRemoteOKURL is the listing page scraped when no URL is configured.
const DefaultRemoteOKURL = "https://remoteok.com/remote-dev-jobs"

// RemoteOK scrapes the RemoteOK listing table, one tr.job row per posting.
type RemoteOK struct {
	client *fetch.Client
	url    string
}

// NewRemoteOK creates a RemoteOK adapter.
func NewRemoteOK(client *fetch.Client, url string) *RemoteOK {
	if url == "" {
		url = DefaultRemoteOKURL
	}
	return &RemoteOK{client: client, url: url}
}

// Name implements Source.
func (s *RemoteOK) Name() string { return RemoteOKSourceName }

// Scrape implements Source.
func (s *RemoteOK) Scrape(ctx context.Context) ([]*types.JobPosting, error) {
	res, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	if err != nil {
		return nil, err
	}

	var jobs []*types.JobPosting
	doc.Find("tr.job").Each(func(_ int, row *goquery.Selection) {
		if job := s.parseRow(row); job != nil {
			jobs = append(jobs, job)
		}
	})

	log.Printf("remoteok: %d postings extracted", len(jobs))
	return jobs, nil
}

func (s *RemoteOK) parseRow(row *goquery.Selection) *types.JobPosting {
	company := strings.TrimSpace(row.Find("h3[itemprop='name'], td.company h3").First().Text())
	title := strings.TrimSpace(row.Find("h2[itemprop='title'], td.position h2").First().Text())
	if company == "" || title == "" {
		return nil
	}

	rawText := fetch.SelectionText(row)

	candidate := Candidate{
		Company:    company,
		Title:      title,
		Location:   strings.TrimSpace(row.Find("div.location").First().Text()),
		TechStack:  extraction.TechStack(rawText),
		RawText:    rawText,
		Source:     RemoteOKSourceName,
		SourceURL:  s.url,
		URL:        s.rowURL(row),
		PostedDate: rowPostedDate(row),
	}

	// RemoteOK listings are remote by definition; keep that when the row's
	// location text is not whitelisted.
	job := candidate.NewPosting(time.Now())
	if job.Location == "" {
		job.Location = "Remote"
	}
	return job
}

func (s *RemoteOK) rowURL(row *goquery.Selection) string {
	href, ok := row.Attr("data-href")
	if !ok {
		href, _ = row.Find("a[itemprop='url'], a.preventLink").First().Attr("href")
	}
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return "https://remoteok.com" + href
}

func rowPostedDate(row *goquery.Selection) *time.Time {
	raw, ok := row.Find("time").First().Attr("datetime")
	if !ok {
		return nil
	}
	posted, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &posted
}
