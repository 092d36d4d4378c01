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

// WWRSourceName is the trust-table label for We Work Remotely.
const WWRSourceName = "WeWorkRemotely"

// DefaultWWRURL is the listing page scraped when no URL is configured.
const DefaultWWRURL = "https://weworkremotely.com/categories/remote-programming-jobs"

// WeWorkRemotely scrapes the We Work Remotely category listing.
type WeWorkRemotely struct {
	client *fetch.Client
	url    string
}

// NewWeWorkRemotely creates a We Work Remotely adapter.
func NewWeWorkRemotely(client *fetch.Client, url string) *WeWorkRemotely {
	if url == "" {
		url = DefaultWWRURL
	}
	return &WeWorkRemotely{client: client, url: url}
}

// Name implements Source.
func (s *WeWorkRemotely) Name() string { return WWRSourceName }

// Scrape implements Source.
func (s *WeWorkRemotely) Scrape(ctx context.Context) ([]*types.JobPosting, error) {
	res, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	if err != nil {
		return nil, err
	}

	var jobs []*types.JobPosting
	doc.Find("section.jobs li").Each(func(_ int, item *goquery.Selection) {
		if item.HasClass("view-all") {
			return
		}
		if job := s.parseItem(item); job != nil {
			jobs = append(jobs, job)
		}
	})

	log.Printf("weworkremotely: %d postings extracted", len(jobs))
	return jobs, nil
}

func (s *WeWorkRemotely) parseItem(item *goquery.Selection) *types.JobPosting {
	company := strings.TrimSpace(item.Find("span.company").First().Text())
	title := strings.TrimSpace(item.Find("span.title").First().Text())
	if company == "" || title == "" {
		return nil
	}

	rawText := fetch.SelectionText(item)

	candidate := Candidate{
		Company:   company,
		Title:     title,
		Location:  strings.TrimSpace(item.Find("span.region").First().Text()),
		TechStack: extraction.TechStack(rawText),
		RawText:   rawText,
		Source:    WWRSourceName,
		SourceURL: s.url,
		URL:       s.itemURL(item),
	}
	return candidate.NewPosting(time.Now())
}

func (s *WeWorkRemotely) itemURL(item *goquery.Selection) string {
	href, ok := item.Find("a[href*='/remote-jobs/']").First().Attr("href")
	if !ok {
		href, _ = item.Find("a").Last().Attr("href")
	}
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return "https://weworkremotely.com" + href
}
