package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Code
	}{
		{
			name: "french",
			text: "Génère un script pour analyser les données avec des tests.",
			want: French,
		},
		{
			name: "english",
			text: "Write a script that parses the logs and reports the errors to you.",
			want: English,
		},
		{
			name: "arabic",
			text: "اكتب برنامجا لتحليل البيانات",
			want: Arabic,
		},
		{
			name: "arabic with latin identifiers",
			text: "اكتب برنامج Python لتحليل ملفات البيانات الكبيرة",
			want: Arabic,
		},
		{
			name: "empty defaults",
			text: "",
			want: Default,
		},
		{
			name: "no signal defaults",
			text: "12345 !!!",
			want: Default,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Code
	}{
		{"", ""},
		{"fr", French},
		{"en-US", English},
		{"AR", Arabic},
		{"french", French},
		{"English", English},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	_, err := Parse("de")
	assert.Error(t, err)

	_, err = Parse("klingon")
	assert.Error(t, err)
}

func TestCode_Valid(t *testing.T) {
	assert.True(t, French.Valid())
	assert.True(t, Arabic.Valid())
	assert.False(t, Code("es").Valid())
	assert.False(t, Code("").Valid())
}

func TestGetDisplayName(t *testing.T) {
	assert.Equal(t, "français", GetDisplayName(French))
	assert.Equal(t, "English", GetDisplayName(English))
	assert.Equal(t, "Xx", GetDisplayName(Code("xx")))
}
