package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuseRedundancies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "adjective pairs",
			input: "Le code doit être professionnel et technique, clair et lisible.",
			want:  "Le code doit être Pro+Tech, Clean.",
		},
		{
			name:  "english pair",
			input: "Keep it robust and modular",
			want:  "Keep it Robust+Modular",
		},
		{
			name:  "verb normalization",
			input: "Peux-tu créer un site",
			want:  "Génère un site",
		},
		{
			name:  "analyze variants",
			input: "Merci d'examiner ce code",
			want:  "Merci d'Analyse ce code",
		},
		{
			name:  "second person build",
			input: "que tu développes un outil",
			want:  "que tu Développe un outil",
		},
		{
			name:  "second person analyze",
			input: "que tu analyses ce journal",
			want:  "que tu Analyse ce journal",
		},
		{
			name:  "second person implement",
			input: "que tu implémentes un cache",
			want:  "que tu Implémente un cache",
		},
		{
			name:  "comma before softener",
			input: "Génère, si possible, un script Python.",
			want:  "Génère un script Python.",
		},
		{
			name:  "english please",
			input: "Please summarize this",
			want:  "summarize this",
		},
		{
			name:  "keeps internal spaces",
			input: "  Écris idéalement un poème  ",
			want:  "Écris  un poème",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FuseRedundancies(tt.input))
		})
	}
}
