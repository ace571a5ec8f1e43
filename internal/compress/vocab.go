package compress

import (
	"github.com/dlclark/regexp2"

	"github.com/HartBrook/promptpress/internal/language"
	"github.com/HartBrook/promptpress/internal/textutil"
)

// rule is one entry of a (concept, language) vocabulary table. Replace is
// inserted literally for every match of Pattern.
type rule struct {
	Concept string
	Lang    language.Code
	Pattern *regexp2.Regexp
	Replace string
}

// apply runs every rule of a table over s, in table order.
func apply(rules []rule, s string) string {
	for _, r := range rules {
		s = textutil.ReplaceAll(r.Pattern, s, r.Replace)
	}
	return s
}

// Softeners are hedges that carry no instruction. A comma on either side goes
// with them.
var softeners = []rule{
	{Concept: "if-possible", Lang: language.French, Pattern: textutil.Pattern(`(?:,\s*)?\bsi possible\b,?`)},
	{Concept: "ideally", Lang: language.French, Pattern: textutil.Pattern(`(?:,\s*)?\bidéalement\b,?`)},
	{Concept: "preferably", Lang: language.French, Pattern: textutil.Pattern(`(?:,\s*)?\bde préférence\b,?`)},
	{Concept: "maybe", Lang: language.French, Pattern: textutil.Pattern(`(?:,\s*)?\bpeut-être\b,?`)},
	{Concept: "please", Lang: language.French, Pattern: textutil.Pattern(`(?:,\s*)?\bs['’]il (?:vous|te) pla[iî]t\b,?`)},
	{Concept: "could-you", Lang: language.French, Pattern: textutil.Pattern(`\b(?:pourriez-vous|pourrais-tu|pouvez-vous|peux-tu)\b`)},
	{Concept: "do-not-hesitate", Lang: language.French, Pattern: textutil.Pattern(`\bn['’]hésitez pas à\b`)},
	{Concept: "if-possible", Lang: language.English, Pattern: textutil.Pattern(`(?:,\s*)?\bif possible\b,?`)},
	{Concept: "ideally", Lang: language.English, Pattern: textutil.Pattern(`(?:,\s*)?\bideally\b,?`)},
	{Concept: "preferably", Lang: language.English, Pattern: textutil.Pattern(`(?:,\s*)?\bpreferably\b,?`)},
	{Concept: "maybe", Lang: language.English, Pattern: textutil.Pattern(`(?:,\s*)?\b(?:maybe|perhaps)\b,?`)},
	{Concept: "please", Lang: language.English, Pattern: textutil.Pattern(`(?:,\s*)?\b(?:please|kindly)\b,?`)},
	{Concept: "could-you", Lang: language.English, Pattern: textutil.Pattern(`\b(?:could|would|can) you\b`)},
	{Concept: "please", Lang: language.Arabic, Pattern: textutil.Pattern(`(?:من فضلك|رجاءً|رجاء)`)},
	{Concept: "if-possible", Lang: language.Arabic, Pattern: textutil.Pattern(`إن أمكن`)},
}

// Fusions collapse near-synonymous adjective pairs into one compact token.
var fusions = []rule{
	{Concept: "pro-tech", Lang: language.French, Pattern: textutil.Pattern(`\bprofessionnel(?:le)?s?\s+et\s+techniques?\b`), Replace: "Pro+Tech"},
	{Concept: "robust-modular", Lang: language.French, Pattern: textutil.Pattern(`\brobustes?\s+et\s+modulaires?\b`), Replace: "Robust+Modular"},
	{Concept: "clean", Lang: language.French, Pattern: textutil.Pattern(`\bclaire?s?\s+et\s+lisibles?\b`), Replace: "Clean"},
	{Concept: "simple-efficient", Lang: language.French, Pattern: textutil.Pattern(`\bsimples?\s+et\s+efficaces?\b`), Replace: "Simple+Efficient"},
	{Concept: "detailed", Lang: language.French, Pattern: textutil.Pattern(`\bcompl(?:et|ète)s?\s+et\s+détaillée?s?\b`), Replace: "Detailed"},
	{Concept: "fast", Lang: language.French, Pattern: textutil.Pattern(`\brapides?\s+et\s+performante?s?\b`), Replace: "Fast"},
	{Concept: "pro-tech", Lang: language.English, Pattern: textutil.Pattern(`\bprofessional\s+and\s+technical\b`), Replace: "Pro+Tech"},
	{Concept: "robust-modular", Lang: language.English, Pattern: textutil.Pattern(`\brobust\s+and\s+modular\b`), Replace: "Robust+Modular"},
	{Concept: "clean", Lang: language.English, Pattern: textutil.Pattern(`\bclear\s+and\s+readable\b`), Replace: "Clean"},
	{Concept: "simple-efficient", Lang: language.English, Pattern: textutil.Pattern(`\bsimple\s+and\s+efficient\b`), Replace: "Simple+Efficient"},
	{Concept: "detailed", Lang: language.English, Pattern: textutil.Pattern(`\bcomplete\s+and\s+detailed\b`), Replace: "Detailed"},
	{Concept: "fast", Lang: language.English, Pattern: textutil.Pattern(`\bfast\s+and\s+performant\b`), Replace: "Fast"},
}

// verbNormalizations map synonyms of an action to its canonical imperative.
var verbNormalizations = []rule{
	{Concept: "create", Lang: language.French, Pattern: textutil.Pattern(`\b(?:crées?|créer|créez|génères|générer|générez|produis|produire|produisez)\b`), Replace: "Génère"},
	{Concept: "analyze", Lang: language.French, Pattern: textutil.Pattern(`\b(?:analyses|analyser|analysez|examine|examines|examiner|examinez|étudie|étudies|étudier|étudiez)\b`), Replace: "Analyse"},
	{Concept: "build", Lang: language.French, Pattern: textutil.Pattern(`\b(?:développes|développer|développez|construises|construire|construisez|bâtis|bâtisses|bâtir)\b`), Replace: "Développe"},
	{Concept: "implement", Lang: language.French, Pattern: textutil.Pattern(`\b(?:implémentes|implémenter|implémentez)\b`), Replace: "Implémente"},
	{Concept: "translate", Lang: language.French, Pattern: textutil.Pattern(`\b(?:traduises|traduire|traduisez)\b`), Replace: "Traduis"},
	{Concept: "write", Lang: language.French, Pattern: textutil.Pattern(`\b(?:écrire|écrives|écrivez|rédige|rédiges|rédiger|rédigez)\b`), Replace: "Écris"},
	{Concept: "create", Lang: language.English, Pattern: textutil.Pattern(`\b(?:produce|make)\b`), Replace: "Generate"},
	{Concept: "analyze", Lang: language.English, Pattern: textutil.Pattern(`\b(?:examine|study|inspect)\b`), Replace: "Analyze"},
	{Concept: "build", Lang: language.English, Pattern: textutil.Pattern(`\bconstruct\b`), Replace: "Build"},
	{Concept: "create", Lang: language.Arabic, Pattern: textutil.Pattern(`(?:اصنع|قم بإنشاء)`), Replace: "أنشئ"},
}

// actionVerbs lists the imperative verbs that open an instruction.
var actionVerbs = map[language.Code][]string{
	language.French: {
		"génère", "crée", "développe", "analyse", "écris",
		"traduis", "optimise", "construis", "implémente", "conçois",
	},
	language.English: {
		"generate", "create", "develop", "analyze", "write",
		"translate", "optimize", "build", "implement", "design",
	},
	language.Arabic: {
		"أنشئ", "طور", "حلل", "اكتب", "ترجم", "صمم",
	},
}

// actionVerbExpr is the alternation of every action verb, French first.
var actionVerbExpr = func() string {
	var words []string
	for _, lang := range []language.Code{language.French, language.English, language.Arabic} {
		words = append(words, actionVerbs[lang]...)
	}
	return textutil.Alternation(words)
}()

var actionVerb = textutil.Pattern(`\b` + actionVerbExpr + `\b`)

// HasActionVerb reports whether text contains a recognized action verb.
func HasActionVerb(text string) bool {
	return textutil.Matches(actionVerb, text)
}

// Greetings and request framings are only removed at the start of the text.
var openers = []rule{
	{Concept: "greeting", Lang: language.French, Pattern: textutil.Pattern(`^\s*(?:bonjour|bonsoir|salut)\b[\s,!.]*`)},
	{Concept: "greeting", Lang: language.English, Pattern: textutil.Pattern(`^\s*(?:hello|hi|hey)\b[\s,!.]*`)},
	{Concept: "greeting", Lang: language.Arabic, Pattern: textutil.Pattern(`^\s*(?:مرحبا|السلام عليكم)[\s,!.،]*`)},
	{Concept: "request", Lang: language.French, Pattern: textutil.Pattern(`^\s*(?:je voudrais(?: que (?:tu|vous))?|j['’]aimerais(?: que (?:tu|vous))?|peux-tu|pouvez-vous|veuillez|merci de|est-ce que (?:tu peux|vous pouvez))\s*`)},
	{Concept: "request", Lang: language.English, Pattern: textutil.Pattern(`^\s*(?:i would like you to|i'd like you to|i want you to|can you|could you|would you)\b\s*`)},
	{Concept: "request", Lang: language.Arabic, Pattern: textutil.Pattern(`^\s*(?:أريد منك أن|أرجو أن|أرجو)\s*`)},
}

// rationales drop justification clauses of at least 20 characters up to
// the next sentence boundary.
var rationales = []rule{
	{Concept: "because", Lang: language.French, Pattern: textutil.Pattern(`[\s,;]*\b(?:(?:car|parce que|afin de|dans le but de|en effet)\b|(?:parce qu|afin d|dans le but d)['’])[^.!?\n]{20,}`)},
	{Concept: "because", Lang: language.English, Pattern: textutil.Pattern(`[\s,;]*\b(?:because|in order to|so that|with the aim of)\b[^.!?\n]{20,}`)},
	{Concept: "because", Lang: language.Arabic, Pattern: textutil.Pattern(`[\s,،;]*(?:لأن|من أجل|بهدف)[^.!?؟\n]{20,}`)},
	{Concept: "aside", Lang: language.French, Pattern: textutil.Pattern(`\s*\((?:ceci permet|cela permet|afin de|afin d['’])[^)]*\)`)},
	{Concept: "aside", Lang: language.English, Pattern: textutil.Pattern(`\s*\((?:this allows|this will|in order to)[^)]*\)`)},
}

// methodSections remove methodology or approach sections through the next
// heading or the end of the text.
var methodSections = []rule{
	{Concept: "methodology", Pattern: textutil.Pattern(`\*\*\s*(?:méthodologie|approche|methodology|approach|المنهجية)\s*:?\s*\*\*\s*:?[\s\S]*?(?=\*\*[^*\n]+\*\*|\z)`)},
	{Concept: "methodology", Pattern: textutil.MultilinePattern(`^#{1,6}[ \t]*(?:méthodologie|approche|methodology|approach|المنهجية)\b[^\n]*(?:\n(?!#{1,6}[ \t])[^\n]*)*`)},
}

// simplifications shorten connective phrases and drop filler imperatives.
var simplifications = []rule{
	{Concept: "with", Lang: language.French, Pattern: textutil.Pattern(`\ben tenant compte d(?:e|es|u)\b`), Replace: "avec"},
	{Concept: "to", Lang: language.French, Pattern: textutil.Pattern(`\bafin de\b`), Replace: "pour"},
	{Concept: "to", Lang: language.French, Pattern: textutil.Pattern(`\bafin d['’]`), Replace: "pour "},
	{Concept: "to", Lang: language.French, Pattern: textutil.Pattern(`\b(?:de manière à|en ce qui concerne)\b`), Replace: "pour"},
	{Concept: "and", Lang: language.French, Pattern: textutil.Pattern(`\bainsi que\b`), Replace: "+"},
	{Concept: "example", Lang: language.French, Pattern: textutil.Pattern(`\bpar exemple\b`), Replace: "ex:"},
	{Concept: "filler", Lang: language.French, Pattern: textutil.Pattern(`\bil est (?:important|essentiel|nécessaire) d(?:e\b|['’])\s*`)},
	{Concept: "filler", Lang: language.French, Pattern: textutil.Pattern(`\bassurez-vous (?:de\b|d['’]|que\b)\s*`)},
	{Concept: "filler", Lang: language.French, Pattern: textutil.Pattern(`\bn['’]oubliez pas d(?:e\b|['’])\s*`)},
	{Concept: "filler", Lang: language.French, Pattern: textutil.Pattern(`\b(?:vous devez|il faut)\b\s*`)},
	{Concept: "with", Lang: language.English, Pattern: textutil.Pattern(`\btaking into account\b`), Replace: "with"},
	{Concept: "to", Lang: language.English, Pattern: textutil.Pattern(`\bin order to\b`), Replace: "to"},
	{Concept: "and", Lang: language.English, Pattern: textutil.Pattern(`\bas well as\b`), Replace: "+"},
	{Concept: "example", Lang: language.English, Pattern: textutil.Pattern(`\b(?:for example|for instance|such as)\b`), Replace: "ex:"},
	{Concept: "filler", Lang: language.English, Pattern: textutil.Pattern(`\bit is (?:important|essential|necessary) to\b\s*`)},
	{Concept: "filler", Lang: language.English, Pattern: textutil.Pattern(`\bmake sure (?:to|that)\b\s*`)},
	{Concept: "filler", Lang: language.English, Pattern: textutil.Pattern(`\byou (?:must|should|need to)\b\s*`)},
	{Concept: "example", Lang: language.Arabic, Pattern: textutil.Pattern(`على سبيل المثال`), Replace: "مثال:"},
}

// tidy repairs punctuation left behind by deletions.
var tidy = []struct {
	Pattern  *regexp2.Regexp
	Template string
}{
	{textutil.Pattern(`\s+([,.;:!?])`), "$1"},
	{textutil.Pattern(`[,;:]+([.!?])`), "$1"},
	{textutil.Pattern(`([.!?])[.,;]+`), "$1"},
	{textutil.Pattern(`^[\s,;:.]+`), ""},
}

func tidyPunctuation(s string) string {
	for _, t := range tidy {
		s = textutil.ReplaceTemplate(t.Pattern, s, t.Template)
	}
	return s
}
