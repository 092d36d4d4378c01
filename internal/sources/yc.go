package sources

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-aggregator/internal/extraction"
	"github.com/jonathan/job-aggregator/internal/fetch"
	"github.com/jonathan/job-aggregator/internal/types"
)

// YCSourceName is the trust-table label for the Y Combinator jobs board.
const YCSourceName = "YC"

// DefaultYCURL is the listing page scraped when no URL is configured.
const DefaultYCURL = "https://www.ycombinator.com/jobs"

const ycBaseURL = "https://www.ycombinator.com"

var ycJobLinkRe = regexp.MustCompile(`/jobs/|/careers/|/companies/`)

// YCombinator scrapes the YC jobs board. The page carries job cards when
// rendered fully; otherwise job links with "Company | Title" text are the
// only structure available.
type YCombinator struct {
	client *fetch.Client
	url    string
}

// NewYCombinator creates a YC jobs adapter.
func NewYCombinator(client *fetch.Client, url string) *YCombinator {
	if url == "" {
		url = DefaultYCURL
	}
	return &YCombinator{client: client, url: url}
}

// Name implements Source.
func (s *YCombinator) Name() string { return YCSourceName }

// Scrape implements Source.
func (s *YCombinator) Scrape(ctx context.Context) ([]*types.JobPosting, error) {
	res, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	if err != nil {
		return nil, err
	}

	var jobs []*types.JobPosting
	cards := findCards(doc)
	if cards.Length() > 0 {
		cards.Each(func(_ int, card *goquery.Selection) {
			if job := s.parseCard(card); job != nil {
				jobs = append(jobs, job)
			}
		})
	} else {
		jobs = s.parseLinks(doc)
	}

	log.Printf("yc: %d cards, %d postings extracted", cards.Length(), len(jobs))
	return jobs, nil
}

func (s *YCombinator) parseCard(card *goquery.Selection) *types.JobPosting {
	company := cardCompany(card)
	if company == "" {
		return nil
	}
	title := cardTitle(card)
	if title == "" {
		title = extraction.DefaultTitle
	}

	rawText := fetch.SelectionText(card)

	candidate := Candidate{
		Company:   company,
		Title:     title,
		Location:  extraction.Location(rawText),
		TechStack: extraction.TechStack(rawText),
		RawText:   rawText,
		Source:    YCSourceName,
		SourceURL: s.url,
		URL:       cardURL(card, ycBaseURL),
	}
	return candidate.NewPosting(time.Now())
}

// parseLinks is the fallback for pages with no recognizable cards: job
// links whose text reads "Company | Title".
func (s *YCombinator) parseLinks(doc *goquery.Document) []*types.JobPosting {
	var jobs []*types.JobPosting
	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if len(jobs) >= maxFallbackLinks {
			return false
		}
		href, _ := link.Attr("href")
		if !ycJobLinkRe.MatchString(href) {
			return true
		}
		text := strings.TrimSpace(link.Text())
		if len(text) < 5 {
			return true
		}

		company, title, ok := strings.Cut(text, "|")
		if !ok {
			return true
		}
		company = strings.TrimSpace(company)
		title = strings.TrimSpace(title)
		if company == "" || title == "" {
			return true
		}

		candidate := Candidate{
			Company:   company,
			Title:     title,
			Location:  extraction.Location(text),
			TechStack: extraction.TechStack(text),
			RawText:   text,
			Source:    YCSourceName,
			SourceURL: s.url,
			URL:       absoluteURL(href, ycBaseURL),
		}
		jobs = append(jobs, candidate.NewPosting(time.Now()))
		return true
	})
	return jobs
}
