package compress

import (
	"github.com/HartBrook/promptpress/internal/textutil"
)

// maxOpenerPasses bounds the removal of stacked openers such as
// "Bonjour, je voudrais que tu ...".
const maxOpenerPasses = 4

// ExtractCore reduces text to its instruction: leading greetings and
// request framings are removed, everything before the first action verb is
// dropped, rationale clauses and methodology sections are removed, and
// connective phrases are shortened. Whitespace runs collapse to one space.
func ExtractCore(text string) string {
	text = stripOpeners(text)

	if _, idx, ok := textutil.FindFirst(actionVerb, text); ok {
		text = textutil.FromRune(text, idx)
	}

	text = apply(methodSections, text)
	text = apply(rationales, text)
	text = apply(simplifications, text)

	text = textutil.CollapseSpaces(text)
	return tidyPunctuation(text)
}

func stripOpeners(text string) string {
	for i := 0; i < maxOpenerPasses; i++ {
		stripped := apply(openers, text)
		if stripped == text {
			break
		}
		text = stripped
	}
	return text
}
