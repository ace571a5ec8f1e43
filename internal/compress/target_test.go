package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HartBrook/promptpress/internal/textutil"
)

const historyPrompt = "Génère un résumé détaillé de maximum 200 mots sur l'histoire de la ville, en insistant sur les grandes périodes, les personnages importants et les monuments, puis ajoute une conclusion."

func TestCompressToTarget_ConvergesNearBudget(t *testing.T) {
	r := CompressToTarget(realisticPrompt, 40)

	assert.LessOrEqual(t, r.CompressedTokens, 50)
	assert.True(t, strings.HasPrefix(r.Compressed, "[LANG:Python][STYLE:Robust+Modular][FEAT:ErrorHandling+Logs] Génère"))
	assert.Equal(t, textutil.EstimateTokens(r.Compressed), r.CompressedTokens)
	assert.Equal(t, Compress(realisticPrompt).OriginalTokens, r.OriginalTokens)
}

func TestCompressToTarget_AppendsFirstConstraint(t *testing.T) {
	r := CompressToTarget(historyPrompt, 20)

	assert.Equal(t, "Génère un résumé détaillé de maximum 200 mots sur l'histoire de la ville, en insistant. maximum 200 mots", r.Compressed)
	assert.Equal(t, 26, r.CompressedTokens)
	assert.Equal(t, reductionRate(r.OriginalTokens, 26), r.ReductionRate)
}

func TestCompressToTarget_UnderBudgetUnchanged(t *testing.T) {
	assert.Equal(t, Compress(historyPrompt), CompressToTarget(historyPrompt, 500))
}

func TestCompressToTarget_NonPositiveTargetUnchanged(t *testing.T) {
	assert.Equal(t, Compress(historyPrompt), CompressToTarget(historyPrompt, 0))
	assert.Equal(t, Compress(historyPrompt), CompressToTarget(historyPrompt, -3))
}

func TestCompressToTarget_NoActionVerbReturnsOverBudget(t *testing.T) {
	prompt := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."
	r := CompressToTarget(prompt, 5)

	assert.Equal(t, Compress(prompt), r)
	assert.Greater(t, r.CompressedTokens, 5)
}

func TestCompressToTarget_SoftenerLeavesNoStrayComma(t *testing.T) {
	r := CompressToTarget("Génère, si possible, un script Python qui analyse des fichiers de logs volumineux et qui produit un rapport détaillé chaque matin pour toute l'équipe.", 5)

	assert.True(t, strings.HasPrefix(r.Compressed, "[LANG:Python]"), r.Compressed)
	assert.Contains(t, r.Compressed, "Génère un script Python")
	assert.NotContains(t, r.Compressed, "Génère,")
}
