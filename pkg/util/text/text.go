package text

import (
	"html/template"
	"regexp"
	"strings"
)

// Substitution order matters: emphasis runs before links so that link text
// is never re-processed, and bold runs before italic so a ** pair is not
// consumed as two single stars.
var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
	linkRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Split splits s by delim and returns the parts. Empty input yields an
// empty slice.
func Split(s, delim string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, delim)
}

// Trim strips leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// MarkdownToHTML converts the small markdown subset used in descriptions.
// The result is marked safe: descriptions are written by the site owner in
// the admin interface, never by visitors.
func MarkdownToHTML(s string) template.HTML {
	if s == "" {
		return template.HTML(s)
	}

	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = linkRe.ReplaceAllString(s, `<a href="$2" target="_blank">$1</a>`)
	s = strings.ReplaceAll(s, "\n", "<br>")

	return template.HTML(s)
}

// SkillPercentage maps a proficiency level to a progress-bar percentage.
// Unknown levels map to 0.
func SkillPercentage(proficiency string) int {
	percentages := map[string]int{
		"beginner":     25,
		"intermediate": 50,
		"advanced":     75,
		"expert":       100,
	}
	return percentages[proficiency]
}
