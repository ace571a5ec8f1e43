package compress

import (
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/HartBrook/promptpress/internal/textutil"
)

const constraintUnits = `(?:mots|tokens|lignes|caractères|chars|words|lines|characters)`

// Numeric limits are collected before format call-outs.
var (
	numericConstraints = []*regexp2.Regexp{
		textutil.Pattern(`\b(?:maximum|max|minimum|min|limite de|limite)\s*:?\s*\d+\s*` + constraintUnits + `?`),
		textutil.Pattern(`\b\d+\s*` + constraintUnits + `\b(?:\s*(?:max|min)\b)?`),
	}
	formatConstraints = []*regexp2.Regexp{
		textutil.Pattern(`\b(?:format|structure)\b\s*:?\s*[^.\n]{5,50}`),
		textutil.Pattern(`\b(?:sortie|output|résultat)\s+en\s+[A-Z]+`),
	}
)

// PreserveConstraints returns the numeric limits and format call-outs of
// text, verbatim and trimmed, numeric ones first, each family in order of
// appearance. Entries that repeat an earlier one (after normalization) or
// are contained in it are dropped.
func PreserveConstraints(text string) []string {
	var candidates []string
	for _, re := range numericConstraints {
		candidates = append(candidates, textutil.FindAll(re, text)...)
	}
	for _, re := range formatConstraints {
		candidates = append(candidates, textutil.FindAll(re, text)...)
	}

	kept := []string{}
	var seen []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := normalizeConstraint(c)
		if containedIn(key, seen) {
			continue
		}
		kept = append(kept, c)
		seen = append(seen, key)
	}
	return kept
}

// normalizeConstraint folds case, width and whitespace so that "Max: 200"
// and "max:  200" compare equal. Casers are not goroutine safe, so one is
// built per call.
func normalizeConstraint(s string) string {
	s = cases.Fold().String(norm.NFKC.String(s))
	return strings.Join(strings.Fields(s), " ")
}

func containedIn(key string, seen []string) bool {
	for _, s := range seen {
		if strings.Contains(s, key) {
			return true
		}
	}
	return false
}
