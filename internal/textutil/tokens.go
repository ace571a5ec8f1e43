package textutil

import (
	"strings"
	"unicode/utf8"
)

// EstimateTokens estimates the token count as ceil(runes/4). This is the
// only estimator in the module; every result and message uses it.
func EstimateTokens(content string) int {
	if content == "" {
		return 0
	}
	return (utf8.RuneCountInString(content) + 3) / 4
}

var spaceRun = Pattern(`\s{2,}`)

// CollapseSpaces replaces runs of two or more whitespace characters with a
// single space and trims the result.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(ReplaceAll(spaceRun, s, " "))
}
