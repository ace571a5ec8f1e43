// Package textutil holds the text helpers shared by the compression and
// structure engines: case-insensitive Unicode-aware patterns, the token
// estimator and line/heading classification.
package textutil

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single pattern evaluation. A pattern that times out
// is treated as not matching so every caller stays total.
const MatchTimeout = 250 * time.Millisecond

// Pattern compiles expr case-insensitively. Unlike the standard library,
// regexp2 treats accented and Arabic letters as word characters, so \b
// behaves for "génère" or "اكتب". Only used with package-level literals.
func Pattern(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.IgnoreCase)
	re.MatchTimeout = MatchTimeout
	return re
}

// MultilinePattern is Pattern with ^ and $ matching at line boundaries.
func MultilinePattern(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.IgnoreCase|regexp2.Multiline)
	re.MatchTimeout = MatchTimeout
	return re
}

// Matches reports whether re matches anywhere in s.
func Matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// FindFirst returns the first match of re in s and its rune offset.
func FindFirst(re *regexp2.Regexp, s string) (string, int, bool) {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return "", 0, false
	}
	return m.String(), m.Index, true
}

// FindAll returns every non-overlapping match of re in s, in order.
func FindAll(re *regexp2.Regexp, s string) []string {
	var found []string
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		found = append(found, m.String())
		m, err = re.FindNextMatch(m)
	}
	return found
}

// ReplaceAll replaces every match of re in s with the literal repl.
func ReplaceAll(re *regexp2.Regexp, s, repl string) string {
	return ReplaceFunc(re, s, func(regexp2.Match) string { return repl })
}

// ReplaceFunc replaces every match of re in s with the result of fn.
// On a match timeout s is returned unchanged.
func ReplaceFunc(re *regexp2.Regexp, s string, fn func(regexp2.Match) string) string {
	out, err := re.ReplaceFunc(s, fn, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// FromRune returns s starting at rune offset idx.
func FromRune(s string, idx int) string {
	if idx <= 0 {
		return s
	}
	runes := []rune(s)
	if idx >= len(runes) {
		return ""
	}
	return string(runes[idx:])
}

// ReplaceTemplate replaces every match of re in s with template, which may
// reference groups as $1 or ${name}.
func ReplaceTemplate(re *regexp2.Regexp, s, template string) string {
	out, err := re.Replace(s, template, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// Alternation joins words into a non-capturing, escaped regex alternation.
func Alternation(words []string) string {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp2.Escape(w)
	}
	return "(?:" + strings.Join(escaped, "|") + ")"
}
