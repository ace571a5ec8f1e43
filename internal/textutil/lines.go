package textutil

import (
	"strings"
	"unicode/utf8"
)

var (
	bulletLine      = Pattern(`^\s*([-*+•]|\d+[.)])\s+\S`)
	hashHeading     = Pattern(`^\s*#{1,6}\s+\S`)
	boldHeading     = Pattern(`^\s*\*\*[^*\n]+\*\*\s*:?\s*$`)
	colonHeading    = Pattern(`^[^\n:]+:\s*$`)
	headingDecorate = Pattern(`^\s*#{0,6}\s*(\*\*)?\s*|\s*(\*\*)?\s*:?\s*(\*\*)?\s*$`)
)

// maxColonHeading is the longest "Label:" line still read as a heading.
const maxColonHeading = 40

// IsBullet reports whether line is a list item with some content.
func IsBullet(line string) bool {
	return Matches(bulletLine, line)
}

// IsHeading reports whether line opens a section: a markdown "#" heading,
// a fully bold line, or a short line ending with a colon.
func IsHeading(line string) bool {
	if strings.TrimSpace(line) == "" || IsBullet(line) {
		return false
	}
	if Matches(hashHeading, line) || Matches(boldHeading, line) {
		return true
	}
	trimmed := strings.TrimSpace(line)
	return utf8.RuneCountInString(trimmed) <= maxColonHeading && Matches(colonHeading, trimmed)
}

// HeadingLabel strips heading decoration ("## ", "**", trailing colon)
// and returns the bare label.
func HeadingLabel(line string) string {
	return strings.TrimSpace(ReplaceAll(headingDecorate, line, ""))
}

// LastLine returns the last non-blank line of s.
func LastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, " \t\r\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}
