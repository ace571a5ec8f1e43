package compress

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/HartBrook/promptpress/internal/textutil"
)

// Tag kinds, in the order they are emitted.
const (
	KindLanguage = "LANG"
	KindStyle    = "STYLE"
	KindFormat   = "FORMAT"
	KindFeature  = "FEAT"
)

// maxInlineValues caps the values of a multi-valued tag inside the
// compressed text. The MetadataTags list is never capped.
const maxInlineValues = 3

// Metadata is what the extractor learned about a prompt.
type Metadata struct {
	Language string   // "" when no language was recognized
	Styles   []string // detection order
	Format   string   // "" when no format was recognized
	Features []string // detection order
}

type detector struct {
	Value   string
	Pattern *regexp2.Regexp
}

// languageDetectors are tried in priority order; the first match wins.
var languageDetectors = []detector{
	{"Python", textutil.Pattern(`\b(?:python3?|py|django|flask|fastapi|pandas)\b`)},
	{"Bash", textutil.Pattern(`\b(?:bash|shell|zsh|sh)\b`)},
	{"SQL", textutil.Pattern(`\b(?:sql|mysql|postgres(?:ql)?|sqlite)\b`)},
	{"JavaScript", textutil.Pattern(`\b(?:javascript|js|node(?:\.?js)?|react|vue)\b`)},
	{"TypeScript", textutil.Pattern(`\b(?:typescript|ts)\b`)},
	{"Rust", textutil.Pattern(`\b(?:rust|cargo)\b`)},
	{"Java", textutil.Pattern(`\b(?:java|spring|jvm)\b`)},
	{"Go", textutil.Pattern(`\bgolang\b|\bgo\s+(?:code|program|module|service|lang)\b|\b(?:en|in)\s+go\b`)},
}

// styleDetectors all run; every match is kept.
var styleDetectors = []detector{
	{"Robust", textutil.Pattern(`\b(?:robustes?|robust|solides?|fiables?|reliable)\b`)},
	{"Modular", textutil.Pattern(`\b(?:modulaires?|modular|modulables?)\b`)},
	{"Commented", textutil.Pattern(`\b(?:comment[ée]e?s?|commentaires?|commented|comments)\b`)},
	{"Concise", textutil.Pattern(`\b(?:concise?s?|courte?s?|brefs?|brèves?|brief|succinct|succincte?s?)\b`)},
	{"Pro", textutil.Pattern(`\b(?:professionnel(?:le)?s?|professional|pro)\b`)},
	{"Clean", textutil.Pattern(`\b(?:propres?|clean|lisibles?|readable|claire?s?|clear)\b`)},
}

// formatDetectors are tried in order; the first match wins.
var formatDetectors = []detector{
	{"JSON", textutil.Pattern(`\bjson\b`)},
	{"Markdown", textutil.Pattern(`\b(?:markdown|md)\b`)},
	{"XML", textutil.Pattern(`\bxml\b`)},
	{"CSV", textutil.Pattern(`\bcsv\b`)},
	{"YAML", textutil.Pattern(`\b(?:yaml|yml)\b`)},
	{"HTML", textutil.Pattern(`\bhtml\b`)},
}

// featureDetectors all run; every match is kept.
var featureDetectors = []detector{
	{"ErrorHandling", textutil.Pattern(`\bgestion des erreurs\b|\bgestion d['’]erreurs?\b|\berror handling\b|\bexceptions?\b|\btry\s*[/-]?\s*catch\b|\berreurs?\b`)},
	{"Logs", textutil.Pattern(`\b(?:logs?|logging|journalisation|journaux)\b`)},
	{"Tests", textutil.Pattern(`\b(?:tests?|unit tests?|testing|pytest|testé?e?s?)\b`)},
	{"Docs", textutil.Pattern(`\b(?:documentation|docstrings?|docs?|documenté?e?s?)\b`)},
	{"Validation", textutil.Pattern(`\b(?:validation|valider|validate|vérification|vérifier)\b`)},
}

// ExtractMetadata scans text for language, style, format and feature
// signals. It never modifies text and never fails.
func ExtractMetadata(text string) Metadata {
	return Metadata{
		Language: firstMatch(languageDetectors, text),
		Styles:   allMatches(styleDetectors, text),
		Format:   firstMatch(formatDetectors, text),
		Features: allMatches(featureDetectors, text),
	}
}

func firstMatch(detectors []detector, text string) string {
	for _, d := range detectors {
		if textutil.Matches(d.Pattern, text) {
			return d.Value
		}
	}
	return ""
}

func allMatches(detectors []detector, text string) []string {
	var found []string
	for _, d := range detectors {
		if textutil.Matches(d.Pattern, text) {
			found = append(found, d.Value)
		}
	}
	return found
}

// Tags serializes m as KIND:VALUE entries, multi-valued kinds joined by "+".
func (m Metadata) Tags() []string {
	tags := []string{}
	for _, kv := range m.pairs(0) {
		tags = append(tags, kv[0]+":"+kv[1])
	}
	return tags
}

// InlineTags renders the bracketed prefix embedded in compressed text,
// e.g. "[LANG:Python][STYLE:Robust+Modular]". Multi-valued kinds keep at
// most three values.
func (m Metadata) InlineTags() string {
	var b strings.Builder
	for _, kv := range m.pairs(maxInlineValues) {
		b.WriteString("[" + kv[0] + ":" + kv[1] + "]")
	}
	return b.String()
}

// pairs returns the present kinds with their values; limit 0 means no cap.
func (m Metadata) pairs(limit int) [][2]string {
	var out [][2]string
	if m.Language != "" {
		out = append(out, [2]string{KindLanguage, m.Language})
	}
	if len(m.Styles) > 0 {
		out = append(out, [2]string{KindStyle, joinCapped(m.Styles, limit)})
	}
	if m.Format != "" {
		out = append(out, [2]string{KindFormat, m.Format})
	}
	if len(m.Features) > 0 {
		out = append(out, [2]string{KindFeature, joinCapped(m.Features, limit)})
	}
	return out
}

func joinCapped(values []string, limit int) string {
	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}
	return strings.Join(values, "+")
}
