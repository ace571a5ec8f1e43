// Package compress implements the rule-based prompt compression pipeline:
// metadata extraction, constraint preservation, redundancy fusion, core
// extraction and assembly, plus a budget fallback and a validator.
//
// Every function is pure and total. Results are plain values, so calls on
// independent inputs may run concurrently.
package compress

import (
	"math"
	"strings"

	"github.com/HartBrook/promptpress/internal/textutil"
)

// maxInlineConstraints is how many preserved constraints are re-inserted
// into the compressed text.
const maxInlineConstraints = 2

// Result is the outcome of one compression.
type Result struct {
	Compressed           string   `json:"compressed"`
	OriginalTokens       int      `json:"original_tokens"`
	CompressedTokens     int      `json:"compressed_tokens"`
	ReductionRate        int      `json:"reduction_rate_percent"` // negative when the text grew
	MetadataTags         []string `json:"metadata_tags"`
	PreservedConstraints []string `json:"preserved_constraints"`
}

// TokenStats returns the before/after token counts of r.
func (r Result) TokenStats() TokenStats {
	return TokenStats{Before: r.OriginalTokens, After: r.CompressedTokens}
}

// Trace exposes every intermediate stage of a compression.
type Trace struct {
	Metadata    Metadata
	Constraints []string
	Fused       string // after FuseRedundancies
	Core        string // after ExtractCore
	Prefix      string // inline metadata tags
	Result      Result
}

// Compress runs the full pipeline on prompt.
func Compress(prompt string) Result {
	return Explain(prompt).Result
}

// Explain runs the full pipeline on prompt and keeps every stage.
func Explain(prompt string) Trace {
	var tr Trace

	originalTokens := textutil.EstimateTokens(prompt)

	tr.Metadata = ExtractMetadata(prompt)
	tr.Constraints = PreserveConstraints(prompt)
	tr.Fused = FuseRedundancies(prompt)
	tr.Core = ExtractCore(tr.Fused)
	tr.Prefix = tr.Metadata.InlineTags()

	final := tr.Core
	if tr.Prefix != "" {
		final = tr.Prefix + " " + final
	}
	if len(tr.Constraints) > 0 {
		inline := tr.Constraints
		if len(inline) > maxInlineConstraints {
			inline = inline[:maxInlineConstraints]
		}
		final += " " + strings.Join(inline, ". ") + "."
	}
	final = strings.TrimSpace(final)

	compressedTokens := textutil.EstimateTokens(final)
	tr.Result = Result{
		Compressed:           final,
		OriginalTokens:       originalTokens,
		CompressedTokens:     compressedTokens,
		ReductionRate:        reductionRate(originalTokens, compressedTokens),
		MetadataTags:         tr.Metadata.Tags(),
		PreservedConstraints: tr.Constraints,
	}
	return tr
}

// reductionRate is the rounded percentage of tokens saved. An empty
// original yields 0.
func reductionRate(original, compressed int) int {
	if original == 0 {
		return 0
	}
	return int(math.Round(float64(original-compressed) / float64(original) * 100))
}
