package extraction

import (
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// techVocabulary is the closed set of technology keywords recognized in
// posting text. Matches are whole-word and case-insensitive; the extracted
// tags are always lowercase.
var techVocabulary = []string{
	// languages
	"python", "javascript", "typescript", "go", "golang", "rust", "java",
	"c++", "cpp", "c#", "php", "ruby", "kotlin", "swift", "scala", "elixir",
	// frameworks
	"react", "vue", "angular", "svelte", "nextjs", "remix", "node",
	"rails", "django", "flask", "fastapi", "spring",
	// data stores
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
	"cassandra", "kafka", "rabbitmq",
	// infrastructure
	"aws", "gcp", "azure", "kubernetes", "docker", "terraform", "linux",
	// architecture
	"graphql", "rest", "grpc", "microservices", "serverless",
	// ml
	"pytorch", "tensorflow", "pandas", "numpy", "spark",
	// frontend tooling
	"tailwind", "bootstrap", "css", "html", "webpack", "vite",
	// mobile
	"ios", "android",
}

// techPatterns holds one compiled whole-word pattern per vocabulary entry.
// Built once at init; read-only afterwards.
var techPatterns = buildTechPatterns()

func buildTechPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(techVocabulary))
	for _, keyword := range techVocabulary {
		// A plain \b boundary breaks on keywords ending in '+' or '#',
		// so the boundary classes are spelled out explicitly.
		escaped := regexp.QuoteMeta(strings.ToLower(keyword))
		patterns[keyword] = regexp.MustCompile(`(?i)(?:^|[^a-z0-9_+#])` + escaped + `(?:[^a-z0-9_+#]|$)`)
	}
	return patterns
}

// TechStack extracts recognized technology tags from posting text.
// The result is lowercase, deduplicated and sorted.
func TechStack(text string) []string {
	found := mapset.NewThreadUnsafeSet[string]()
	for keyword, pattern := range techPatterns {
		if pattern.MatchString(text) {
			found.Add(strings.ToLower(keyword))
		}
	}

	tags := found.ToSlice()
	sort.Strings(tags)
	return tags
}
