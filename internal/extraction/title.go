package extraction

import "strings"

// DefaultTitle is used when no job title can be derived from the text.
const DefaultTitle = "Software Engineer"

// maxFieldLength bounds extracted company and title fields.
const maxFieldLength = 100

// titleKeywords mark a line as likely containing a job title.
var titleKeywords = []string{
	"engineer", "developer", "software", "swe", "sde",
	"backend", "frontend", "fullstack", "full-stack",
	"devops", "sre", "data", "ml", "ai", "architect",
}

// JobTitle extracts a job title from raw posting text. It prefers the
// right-hand segment of a separator-delimited header line, then scans the
// first five lines for a short line containing a title keyword, and finally
// falls back to DefaultTitle.
func JobTitle(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return DefaultTitle
	}

	firstLine := strings.TrimSpace(lines[0])
	for _, sep := range fieldSeparators {
		if !strings.Contains(firstLine, sep) {
			continue
		}
		// Header lines read "Company | Title | Location"; the title is the
		// second segment.
		segments := strings.Split(firstLine, sep)
		title := strings.TrimSpace(segments[1])
		if title != "" {
			return truncate(title, maxFieldLength)
		}
	}

	scan := lines
	if len(scan) > 5 {
		scan = scan[:5]
	}
	for _, line := range scan {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > 8 {
			continue
		}
		lower := strings.ToLower(line)
		for _, keyword := range titleKeywords {
			if strings.Contains(lower, keyword) {
				return truncate(line, maxFieldLength)
			}
		}
	}

	return DefaultTitle
}

// truncate cuts s to at most limit characters, on a rune boundary so
// multi-byte text never ends up as invalid UTF-8.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
