package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "single rune", content: "a", want: 1},
		{name: "exact multiple", content: "abcdefgh", want: 2},
		{name: "rounds up", content: "hello world", want: 3}, // 11 runes
		{name: "accents count as one rune", content: "génère", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTokens(tt.content))
		})
	}
}

func TestPattern_UnicodeWordBoundary(t *testing.T) {
	re := Pattern(`\bgénère\b`)

	assert.True(t, Matches(re, "Génère un rapport"))
	assert.False(t, Matches(re, "régénère"))
}

func TestFindFirst_ReturnsRuneOffset(t *testing.T) {
	re := Pattern(`\banalyse\b`)

	match, idx, ok := FindFirst(re, "Ééé analyse")
	assert.True(t, ok)
	assert.Equal(t, "analyse", match)
	assert.Equal(t, 4, idx)
	assert.Equal(t, "analyse", FromRune("Ééé analyse", idx))
}

func TestFindAll(t *testing.T) {
	re := Pattern(`\d+`)
	assert.Equal(t, []string{"12", "7"}, FindAll(re, "a 12 b 7"))
	assert.Nil(t, FindAll(re, "none"))
}

func TestReplaceAll_IsLiteral(t *testing.T) {
	re := Pattern(`x`)
	assert.Equal(t, "$1 y $1", ReplaceAll(re, "x y x", "$1"))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpaces("  a \n\n b\t\tc  "))
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"## Rôle", true},
		{"**Format:**", true},
		{"**Contraintes** :", true},
		{"Objectif:", true},
		{"Rôle: expert Python", false},
		{"- Format:", false},
		{"Une phrase normale.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeading(tt.line))
		})
	}
}

func TestHeadingLabel(t *testing.T) {
	assert.Equal(t, "Rôle", HeadingLabel("## Rôle"))
	assert.Equal(t, "Format", HeadingLabel("**Format:**"))
	assert.Equal(t, "Contraintes", HeadingLabel("Contraintes :"))
}

func TestIsBullet(t *testing.T) {
	assert.True(t, IsBullet("- item"))
	assert.True(t, IsBullet("  2. item"))
	assert.False(t, IsBullet("-"))
	assert.False(t, IsBullet("plain"))
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "- b", LastLine("a\n- b\n\n  \n"))
	assert.Equal(t, "", LastLine(""))
}

func TestReplaceTemplate(t *testing.T) {
	re := Pattern(`\s+([,.])`)
	assert.Equal(t, "a, b.", ReplaceTemplate(re, "a , b .", "$1"))
}

func TestAlternation_EscapesWords(t *testing.T) {
	re := Pattern(`^` + Alternation([]string{"a.b", "c+"}) + `$`)
	assert.True(t, Matches(re, "a.b"))
	assert.True(t, Matches(re, "C+"))
	assert.False(t, Matches(re, "axb"))
}
