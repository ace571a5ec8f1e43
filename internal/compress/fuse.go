package compress

import "strings"

// FuseRedundancies deletes softening hedges, merges synonymous adjective
// pairs into compact tokens and normalizes action-verb synonyms. Internal
// whitespace is left alone; only the ends are trimmed.
func FuseRedundancies(text string) string {
	text = apply(softeners, text)
	text = apply(fusions, text)
	text = apply(verbNormalizations, text)
	return strings.TrimSpace(text)
}
