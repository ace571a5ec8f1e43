package compress

import (
	"strings"

	"github.com/HartBrook/promptpress/internal/textutil"
)

var (
	// actionClause is an action verb followed by 10 to 80 characters.
	actionClause = textutil.Pattern(`\b` + actionVerbExpr + `\b.{10,80}`)
	inlineTag    = textutil.Pattern(`\[[A-Z]+:[^\]]+\]`)
)

// CompressToTarget compresses prompt and, when the result still exceeds
// targetTokens, falls back once to the inline tags, the first action clause
// and the first preserved constraint. The budget is best effort: when no
// action clause is found the over-budget result is returned as is. A
// non-positive target disables the fallback.
func CompressToTarget(prompt string, targetTokens int) Result {
	result := Compress(prompt)
	if targetTokens <= 0 || result.CompressedTokens <= targetTokens {
		return result
	}

	clause, _, ok := textutil.FindFirst(actionClause, result.Compressed)
	if !ok {
		return result
	}
	clause = strings.TrimRight(clause, " .,;:")

	first := ""
	if len(result.PreservedConstraints) > 0 {
		first = result.PreservedConstraints[0]
	}

	tags := strings.Join(textutil.FindAll(inlineTag, result.Compressed), "")
	rebuilt := strings.TrimSpace(tags + " " + clause + ". " + first)

	result.Compressed = rebuilt
	result.CompressedTokens = textutil.EstimateTokens(rebuilt)
	result.ReductionRate = reductionRate(result.OriginalTokens, result.CompressedTokens)
	return result
}
