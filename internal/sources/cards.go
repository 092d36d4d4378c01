package sources

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Card-shaped board pages (YC, Wellfound) do not expose stable itemprop
// markup the way RemoteOK does; listings are found by class-name patterns
// instead, with a link scan as fallback when no cards match.
var (
	cardClassRe    = regexp.MustCompile(`(?i)job|listing|posting|card`)
	companyClassRe = regexp.MustCompile(`(?i)company|name`)
	titleClassRe   = regexp.MustCompile(`(?i)title|position|role`)
)

// maxFallbackLinks bounds the link-scan mode so a nav-heavy page cannot
// flood a run with junk candidates.
const maxFallbackLinks = 50

func findCards(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div, article, section").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && cardClassRe.MatchString(class)
	})
}

// findByClass returns the first descendant whose class attribute matches re.
func findByClass(sel *goquery.Selection, re *regexp.Regexp) *goquery.Selection {
	return sel.Find("h2, h3, h4, strong, span, a, div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && re.MatchString(class)
	}).First()
}

func cardCompany(card *goquery.Selection) string {
	return strings.TrimSpace(findByClass(card, companyClassRe).Text())
}

func cardTitle(card *goquery.Selection) string {
	title := strings.TrimSpace(findByClass(card, titleClassRe).Text())
	if title == "" {
		title = strings.TrimSpace(card.Find("a").First().Text())
	}
	return title
}

func cardURL(card *goquery.Selection, baseURL string) string {
	href, _ := card.Find("a[href]").First().Attr("href")
	return absoluteURL(href, baseURL)
}

func absoluteURL(href, baseURL string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return baseURL + href
}
