package compress

// TokenStats holds before/after token statistics.
type TokenStats struct {
	Before int
	After  int
}

// Saved returns the number of tokens saved; negative when the text grew.
func (s TokenStats) Saved() int {
	return s.Before - s.After
}

// PercentReduction returns the percentage reduction, 0 for an empty original.
func (s TokenStats) PercentReduction() float64 {
	if s.Before == 0 {
		return 0
	}
	return float64(s.Saved()) / float64(s.Before) * 100
}
