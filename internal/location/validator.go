// Package location decides whether free-text tokens denote genuine locations
// and normalizes their canonical spelling. It is a strict allowlist: text
// outside the closed vocabulary is rejected rather than guessed at.
package location

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// validLocations is the closed vocabulary of accepted location tokens.
var validLocations = mapset.NewThreadUnsafeSet(
	// work type
	"remote", "onsite", "hybrid", "anywhere",

	// US cities
	"san francisco", "sf", "bay area", "silicon valley", "palo alto", "mountain view",
	"new york", "nyc", "manhattan", "brooklyn",
	"seattle", "austin", "boston", "chicago", "los angeles", "la",
	"denver", "portland", "atlanta", "miami", "philadelphia", "dallas",
	"san diego", "washington dc", "dc", "boulder", "raleigh", "durham",
	"minneapolis", "detroit", "phoenix", "tucson", "nashville", "memphis",
	"indianapolis", "columbus", "cincinnati", "kansas city", "omaha",
	"salt lake city", "las vegas", "orlando", "tampa",

	// US state abbreviations
	"ca", "ny", "wa", "tx", "ma", "il", "co", "or", "ga", "fl", "pa",
	"nc", "sc", "tn", "mi", "oh", "in", "mo", "nv", "az", "ut",

	// countries
	"usa", "united states", "us", "canada", "uk", "united kingdom",
	"germany", "france", "spain", "italy", "netherlands", "sweden",
	"norway", "denmark", "switzerland", "australia", "new zealand",
	"japan", "singapore", "india", "china", "brazil", "mexico",
	"poland", "portugal", "belgium", "austria", "ireland",

	// European cities
	"london", "berlin", "paris", "amsterdam", "barcelona", "madrid",
	"stockholm", "oslo", "copenhagen", "zurich", "dublin", "edinburgh",
	"vienna", "lisbon", "brussels", "warsaw", "milan", "rome",
	"munich", "hamburg", "frankfurt", "lyon", "toulouse",

	// Asia-Pacific cities
	"tokyo", "hong kong", "bangalore", "mumbai", "delhi",
	"sydney", "melbourne", "beijing", "shanghai", "seoul", "taipei",

	// regions
	"europe", "north america", "south america", "asia",
	"east coast", "west coast", "northeast", "southwest", "midwest",
)

// normalizations maps alias spellings to their canonical token.
var normalizations = map[string]string{
	"sf":             "san francisco",
	"nyc":            "new york",
	"la":             "los angeles",
	"dc":             "washington dc",
	"bay area":       "san francisco",
	"silicon valley": "san francisco",
	"united states":  "usa",
	"united kingdom": "uk",
	"us":             "usa",
}

// invalidWords are posting-vocabulary tokens that pattern matches sometimes
// pick up but never denote a location.
var invalidWords = mapset.NewThreadUnsafeSet(
	"experience", "years", "role", "position", "job", "opportunity",
	"company", "team", "work", "working", "looking", "seeking",
	"hiring", "developer", "engineer", "software", "technical",
	"skills", "requirements", "qualifications", "salary", "compensation",
	"benefits", "equity", "stock", "options", "package", "offer",
	"the", "and", "or", "for", "with", "from", "to", "at", "in",
	"this", "that", "these", "those", "a", "an",
)

// multiWordExceptions are the only tokens allowed to exceed three words, and
// the long multi-word names explicitly recognized as locations.
var multiWordExceptions = mapset.NewThreadUnsafeSet(
	"san francisco", "new york", "los angeles", "san diego",
	"salt lake city", "kansas city", "las vegas", "washington dc",
	"hong kong", "new zealand", "south america", "north america",
	"silicon valley", "bay area", "east coast", "west coast",
)

var digitRe = regexp.MustCompile(`\d`)

// ValidateAndNormalize reports the canonical title-cased spelling of a
// location candidate, or the empty string when the candidate is not a
// recognized location.
func ValidateAndNormalize(candidate string) string {
	lower := strings.ToLower(strings.TrimSpace(candidate))
	if lower == "" {
		return ""
	}

	if validLocations.Contains(lower) {
		normalized := normalize(lower)
		if isPlausible(normalized) {
			return titleCase(normalized)
		}
	}

	normalized := normalize(lower)
	if validLocations.Contains(normalized) && isPlausible(normalized) {
		return titleCase(normalized)
	}

	return ""
}

func normalize(lower string) string {
	if canonical, ok := normalizations[lower]; ok {
		return canonical
	}
	return lower
}

// isPlausible filters tokens that slipped through pattern matching but read
// as posting prose rather than a place name.
func isPlausible(lower string) bool {
	if len(lower) < 2 || len(lower) > 50 {
		return false
	}
	if invalidWords.Contains(lower) {
		return false
	}
	if len(strings.Fields(lower)) > 3 && !multiWordExceptions.Contains(lower) {
		return false
	}
	if digitRe.MatchString(lower) {
		return false
	}
	if strings.Contains(lower, "@") || strings.Contains(lower, ".com") {
		return false
	}
	return true
}

// titleCase returns the canonical display spelling. A fresh caser per call:
// cases.Caser carries state and is not safe for concurrent use.
func titleCase(lower string) string {
	return cases.Title(language.English).String(lower)
}
