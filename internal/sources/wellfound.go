package sources

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-aggregator/internal/extraction"
	"github.com/jonathan/job-aggregator/internal/fetch"
	"github.com/jonathan/job-aggregator/internal/types"
)

// WellfoundSourceName is the trust-table label for Wellfound (ex AngelList).
const WellfoundSourceName = "Wellfound"

// DefaultWellfoundURL is the listing page scraped when no URL is configured.
const DefaultWellfoundURL = "https://wellfound.com/jobs"

const wellfoundBaseURL = "https://wellfound.com"

var (
	wellfoundJobLinkRe = regexp.MustCompile(`/job/|/jobs/|/role/`)
	relativeDateRe     = regexp.MustCompile(`(?i)\b(\d+)\s*(day|week|month)s?\s+ago\b`)
)

// Wellfound scrapes the Wellfound job listing page: job cards when present,
// job links otherwise.
type Wellfound struct {
	client *fetch.Client
	url    string
}

// NewWellfound creates a Wellfound adapter.
func NewWellfound(client *fetch.Client, url string) *Wellfound {
	if url == "" {
		url = DefaultWellfoundURL
	}
	return &Wellfound{client: client, url: url}
}

// Name implements Source.
func (s *Wellfound) Name() string { return WellfoundSourceName }

// Scrape implements Source.
func (s *Wellfound) Scrape(ctx context.Context) ([]*types.JobPosting, error) {
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

	log.Printf("wellfound: %d cards, %d postings extracted", cards.Length(), len(jobs))
	return jobs, nil
}

func (s *Wellfound) parseCard(card *goquery.Selection) *types.JobPosting {
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
		Company:    company,
		Title:      title,
		Location:   extraction.Location(rawText),
		TechStack:  extraction.TechStack(rawText),
		RawText:    rawText,
		Source:     WellfoundSourceName,
		SourceURL:  s.url,
		URL:        cardURL(card, wellfoundBaseURL),
		PostedDate: relativePostedDate(rawText, time.Now()),
	}
	return candidate.NewPosting(time.Now())
}

// parseLinks is the fallback for pages with no recognizable cards. The link
// text is the title; the company comes from a class-named sibling inside
// the link's enclosing block.
func (s *Wellfound) parseLinks(doc *goquery.Document) []*types.JobPosting {
	var jobs []*types.JobPosting
	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if len(jobs) >= maxFallbackLinks {
			return false
		}
		href, _ := link.Attr("href")
		if !wellfoundJobLinkRe.MatchString(href) {
			return true
		}
		title := strings.TrimSpace(link.Text())
		if len(title) < 5 {
			return true
		}

		parent := link.ParentsFiltered("div, article, section").First()
		company := cardCompany(parent)
		if company == "" {
			return true
		}
		parentText := fetch.SelectionText(parent)

		candidate := Candidate{
			Company:    company,
			Title:      title,
			Location:   extraction.Location(parentText),
			TechStack:  extraction.TechStack(parentText + " " + title),
			RawText:    parentText,
			Source:     WellfoundSourceName,
			SourceURL:  s.url,
			URL:        absoluteURL(href, wellfoundBaseURL),
			PostedDate: relativePostedDate(parentText, time.Now()),
		}
		jobs = append(jobs, candidate.NewPosting(time.Now()))
		return true
	})
	return jobs
}

// relativePostedDate resolves "N days/weeks/months ago" phrases against now.
// Listings without such a phrase get no posted date.
func relativePostedDate(text string, now time.Time) *time.Time {
	m := relativeDateRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	var unit time.Duration
	switch strings.ToLower(m[2]) {
	case "day":
		unit = 24 * time.Hour
	case "week":
		unit = 7 * 24 * time.Hour
	case "month":
		unit = 30 * 24 * time.Hour
	}
	posted := now.Add(-time.Duration(n) * unit)
	return &posted
}
