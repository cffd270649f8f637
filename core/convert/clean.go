package convert

import (
	"regexp"
	"strings"
)

var (
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
	trailingSpaces  = regexp.MustCompile(`[ \t]+\n`)
	leadingSpaces   = regexp.MustCompile(`\n[ \t]+`)
	headerBefore    = regexp.MustCompile(`\n(#{1,6} )`)
	headerAfterLine = regexp.MustCompile(`(#{1,6} [^\n]+)\n([^\n#])`)
)

// cleanMarkdown removes excessive newlines and cleans up markdown formatting
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	markdown = trailingSpaces.ReplaceAllString(markdown, "\n")
	markdown = leadingSpaces.ReplaceAllString(markdown, "\n")

	// Ensure proper spacing around headers
	markdown = headerBefore.ReplaceAllString(markdown, "\n\n$1")
	markdown = headerAfterLine.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
