package compress

import "fmt"

// Validation thresholds.
const (
	MinReductionRate = 30
	MaxReductionRate = 60
	MinTokens        = 10
)

// Issue prefixes, stable so callers can match on them.
const (
	IssueInsufficientReduction = "insufficient reduction"
	IssueExcessiveReduction    = "excessive reduction"
	IssueTooShort              = "too short"
	IssueNoActionVerb          = "no action verb identified"
)

// Verdict is the advisory outcome of Validate.
type Verdict struct {
	Valid  bool     `json:"is_valid"`
	Issues []string `json:"issues"`
}

// Validate checks a result against the reduction window, the minimum size
// and the presence of an action verb. All rules are evaluated; the result
// itself is not modified.
func Validate(r Result) Verdict {
	issues := []string{}

	if r.ReductionRate < MinReductionRate {
		issues = append(issues, fmt.Sprintf("%s: %d%% (minimum %d%%)", IssueInsufficientReduction, r.ReductionRate, MinReductionRate))
	}
	if r.ReductionRate > MaxReductionRate {
		issues = append(issues, fmt.Sprintf("%s: possible semantic loss at %d%% (maximum %d%%)", IssueExcessiveReduction, r.ReductionRate, MaxReductionRate))
	}
	if r.CompressedTokens < MinTokens {
		issues = append(issues, fmt.Sprintf("%s: risk of missing context at %d tokens (minimum %d)", IssueTooShort, r.CompressedTokens, MinTokens))
	}
	if !HasActionVerb(r.Compressed) {
		issues = append(issues, IssueNoActionVerb)
	}

	return Verdict{Valid: len(issues) == 0, Issues: issues}
}
