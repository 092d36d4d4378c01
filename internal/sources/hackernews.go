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

// HNSourceName is the trust-table label for Who's Hiring threads.
const HNSourceName = "HN Who's Hiring"

// minCommentLength filters out one-liner replies.
const minCommentLength = 20

// skipPrefixes mark comments that open like replies rather than postings.
var skipPrefixes = []string{"reply", "^", "this", "thanks", "interested", "pm me", ">"}

// jobKeywords must appear somewhere in a comment for it to count as a posting.
var jobKeywords = []string{
	"hiring", "engineer", "developer", "software", "position", "role", "job", "opportunity",
}

var (
	commentAnchorRe  = regexp.MustCompile(`c_\d+`)
	textURLRe        = regexp.MustCompile(`https?://[^\s<>"]+`)
	applicationURLRe = regexp.MustCompile(`(?i)apply|application|careers|jobs\.|jobs/|/jobs|hiring|lever\.co|greenhouse|workable|linkedin\.com/jobs`)
)

// HackerNews scrapes job postings from a single Who's Hiring thread.
// Each top-level comment is one candidate posting.
type HackerNews struct {
	client    *fetch.Client
	threadURL string
}

// NewHackerNews creates a thread adapter for the given thread URL.
func NewHackerNews(client *fetch.Client, threadURL string) *HackerNews {
	return &HackerNews{client: client, threadURL: threadURL}
}

// Name implements Source.
func (s *HackerNews) Name() string { return HNSourceName }

// Scrape implements Source.
func (s *HackerNews) Scrape(ctx context.Context) ([]*types.JobPosting, error) {
	res, err := s.client.Get(ctx, s.threadURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	if err != nil {
		return nil, err
	}

	var jobs []*types.JobPosting
	comments := doc.Find("div.comment")
	comments.Each(func(_ int, sel *goquery.Selection) {
		if job := s.parseComment(sel); job != nil {
			jobs = append(jobs, job)
		}
	})

	log.Printf("hackernews: %d comments, %d postings extracted", comments.Length(), len(jobs))
	return jobs, nil
}

// parseComment turns one comment into a posting, or nil when the comment is
// a reply, too short, not job-related, or fails company extraction.
func (s *HackerNews) parseComment(sel *goquery.Selection) *types.JobPosting {
	text := fetch.SelectionText(sel.Find("span.commtext, div.commtext"))
	if len(strings.TrimSpace(text)) < minCommentLength {
		return nil
	}

	lower := strings.ToLower(text)
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return nil
		}
	}
	if !containsAny(lower, jobKeywords) {
		return nil
	}

	company := extraction.CompanyName(text)
	if company == extraction.UnknownCompany {
		// Extraction failure, not a real job; dropped before it can reach
		// scoring or deduplication.
		return nil
	}

	candidate := Candidate{
		Company:   company,
		Title:     extraction.JobTitle(text),
		Location:  extraction.Location(text),
		TechStack: extraction.TechStack(text),
		RawText:   text,
		Source:    HNSourceName,
		SourceURL: s.threadURL,
		URL:       applicationURL(sel, text),
		CommentID: commentID(sel),
	}
	return candidate.NewPosting(time.Now())
}

// commentID recovers the thread-comment identity hint from anchor links or
// element ids.
func commentID(sel *goquery.Selection) string {
	id := ""
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if m := commentAnchorRe.FindString(href); m != "" {
			id = m
			return false
		}
		return true
	})
	if id != "" {
		return id
	}
	if own, ok := sel.Attr("id"); ok {
		return own
	}
	if parent, ok := sel.Closest("tr").Attr("id"); ok {
		return parent
	}
	return ""
}

// applicationURL looks for an application link among the comment's anchors,
// then among bare URLs in the text.
func applicationURL(sel *goquery.Selection, text string) string {
	found := ""
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") {
			return true
		}
		if applicationURLRe.MatchString(href) || applicationURLRe.MatchString(a.Text()) {
			found = href
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	for _, raw := range textURLRe.FindAllString(text, -1) {
		if applicationURLRe.MatchString(raw) {
			return raw
		}
	}
	return ""
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
