// Package extraction derives canonical job fields (company, title, location,
// tech stack) from raw free-text excerpts handed over by source adapters.
package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

// UnknownCompany is the sentinel returned when no plausible company name can
// be found. Thread-based adapters treat it as an extraction failure and drop
// the record.
const UnknownCompany = "Unknown"

// fieldSeparators are tried in order when splitting a header line such as
// "Acme Inc | Senior Backend Engineer | Remote".
var fieldSeparators = []string{"|", "-", ":", "•"}

// companyFallbackWindow bounds how far into the text the regex fallback looks.
const companyFallbackWindow = 500

var (
	// "... at Acme Inc", "join Initech Labs"
	companyAfterPrepositionRe = regexp.MustCompile(`(?:\bat|\bfrom|\bwith|\bjoin)\s+([A-Z][A-Za-z0-9&'.-]*(?:\s+[A-Z][A-Za-z0-9&'.-]*){0,3})`)
	// "Acme Inc is hiring", "Initech Labs are hiring"
	companyIsHiringRe = regexp.MustCompile(`([A-Z][A-Za-z0-9&'.-]*(?:\s+[A-Z][A-Za-z0-9&'.-]*){0,3})\s+(?:is|are)\s+hiring`)
)

// sentencePhrases indicate prose rather than a company name.
var sentencePhrases = []string{
	"we are", "we're", "i am", "i'm", "thanks for", "thank you",
	"looking for", "this role", "this is", "our team", "join us",
	"you will", "you are", "who we", "about us", "what we", "apply here",
}

// commonVerbs appearing at or near the start of a candidate signal a sentence.
var commonVerbs = map[string]bool{
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true,
	"will": true, "would": true, "should": true, "can": true, "could": true,
	"hiring": true, "seeking": true, "looking": true, "building": true,
}

// CompanyName extracts a plausible company name from raw posting text.
// It takes the first line, tries each separator in order keeping the left
// segment, and checks the result for plausibility. When that fails it falls
// back to capitalized-phrase patterns ("at <Company>", "<Company> is hiring")
// within the first 500 characters, and finally to the Unknown sentinel.
func CompanyName(text string) string {
	firstLine := ""
	if lines := strings.Split(text, "\n"); len(lines) > 0 {
		firstLine = strings.TrimSpace(lines[0])
	}

	candidate := firstLine
	for _, sep := range fieldSeparators {
		if idx := strings.Index(firstLine, sep); idx >= 0 {
			candidate = strings.TrimSpace(firstLine[:idx])
			break
		}
	}
	if IsValidCompanyName(candidate) {
		return candidate
	}

	window := text
	if len(window) > companyFallbackWindow {
		window = window[:companyFallbackWindow]
	}
	for _, re := range []*regexp.Regexp{companyAfterPrepositionRe, companyIsHiringRe} {
		if m := re.FindStringSubmatch(window); m != nil {
			fallback := strings.TrimSpace(m[1])
			if IsValidCompanyName(fallback) {
				return fallback
			}
		}
	}

	return UnknownCompany
}

// IsValidCompanyName reports whether the candidate reads as a proper company
// name rather than a fragment of prose. The checks run in a fixed order and
// the first rejection wins.
func IsValidCompanyName(name string) bool {
	name = strings.TrimSpace(name)
	words := strings.Fields(name)

	if rejectEmptyOrOversized(name, words) {
		return false
	}
	if rejectSentencePhrase(name) {
		return false
	}
	if rejectLeadingVerb(words) {
		return false
	}
	if rejectMostlyLowercase(words) {
		return false
	}
	if rejectSentencePunctuation(name) {
		return false
	}
	return true
}

func rejectEmptyOrOversized(name string, words []string) bool {
	return name == "" || len(name) > 60 || len(words) > 8
}

func rejectSentencePhrase(name string) bool {
	lower := strings.ToLower(name)
	for _, phrase := range sentencePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// rejectLeadingVerb flags candidates whose first word is a common verb, or
// that have a verb anywhere in the first three words ("Acme is expanding").
func rejectLeadingVerb(words []string) bool {
	limit := len(words)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		if commonVerbs[strings.ToLower(strings.Trim(words[i], ".,!?"))] {
			return true
		}
	}
	return false
}

// rejectMostlyLowercase flags candidates where more than half the words start
// with a lowercase letter; proper nouns are capitalized, prose is not.
func rejectMostlyLowercase(words []string) bool {
	if len(words) == 0 {
		return false
	}
	lowercase := 0
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLower(r) {
			lowercase++
		}
	}
	return lowercase*2 > len(words)
}

func rejectSentencePunctuation(name string) bool {
	return strings.Count(name, ",") > 2 || strings.Count(name, ".") > 1
}
