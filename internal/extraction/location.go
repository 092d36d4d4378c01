package extraction

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Location pattern cascade, tried in order: work type first, then known
// cities and countries, then generic "City, ST" / "City, Country" shapes.
var (
	workTypeRe    = regexp.MustCompile(`(?i)\b(remote|onsite|hybrid|anywhere)\b`)
	namedCityRe   = regexp.MustCompile(`(?i)\b(san francisco|sf|bay area|new york|nyc|seattle|austin|boston|chicago|los angeles|la)\b`)
	countryRe     = regexp.MustCompile(`(?i)\b(usa|united states|us|canada|uk|united kingdom|london|berlin|paris|amsterdam)\b`)
	cityStateRe   = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2})\b`)
	cityCountryRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z][a-z]+)\b`)
)

var placePatterns = []*regexp.Regexp{namedCityRe, countryRe, cityStateRe, cityCountryRe}

// locationLineKeywords mark lines worth scanning when no pattern matched the
// full text.
var locationLineKeywords = []string{"location", "based", "office", "headquarters"}

// Location extracts a location candidate from posting text, or returns the
// empty string. Candidates are raw pattern matches; callers that need a
// whitelist-checked field pass them through the location validator.
func Location(text string) string {
	if m := workTypeRe.FindString(text); m != "" {
		return cases.Title(language.English).String(strings.ToLower(m))
	}

	for _, pattern := range placePatterns {
		if m := pattern.FindString(text); m != "" {
			return m
		}
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		lower := strings.ToLower(line)
		keyworded := false
		for _, keyword := range locationLineKeywords {
			if strings.Contains(lower, keyword) {
				keyworded = true
				break
			}
		}
		if !keyworded {
			continue
		}
		for _, pattern := range placePatterns {
			if m := pattern.FindString(line); m != "" {
				return m
			}
		}
	}

	return ""
}
