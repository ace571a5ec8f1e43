package structure

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/HartBrook/promptpress/internal/language"
	"github.com/HartBrook/promptpress/internal/textutil"
)

// Section is a canonical prompt section.
type Section string

const (
	Role           Section = "Role"
	Objective      Section = "Objective"
	Instructions   Section = "Instructions"
	Format         Section = "Format"
	Constraints    Section = "Constraints"
	Examples       Section = "Examples"
	Workflow       Section = "Workflow"
	Considerations Section = "Considerations"
	Methodology    Section = "Methodology"
)

// coreSections are backfilled when present but empty.
var coreSections = []Section{Role, Objective, Instructions, Format, Constraints}

// allSections is the order used when reporting added sections.
var allSections = []Section{
	Role, Objective, Instructions, Format, Constraints,
	Examples, Workflow, Considerations, Methodology,
}

// labels lists each section's spellings per language; the first spelling
// is the one written when the section is added.
var labels = map[Section]map[language.Code][]string{
	Role: {
		language.French:  {"Rôle", "Role"},
		language.English: {"Role"},
		language.Arabic:  {"الدور"},
	},
	Objective: {
		language.French:  {"Objectif", "Tâche", "But"},
		language.English: {"Objective", "Task", "Goal"},
		language.Arabic:  {"الهدف", "المهمة"},
	},
	Instructions: {
		language.French:  {"Instructions", "Consignes"},
		language.English: {"Instructions"},
		language.Arabic:  {"التعليمات"},
	},
	Format: {
		language.French:  {"Format", "Format de sortie"},
		language.English: {"Format", "Output Format"},
		language.Arabic:  {"التنسيق", "الصيغة"},
	},
	Constraints: {
		language.French:  {"Contraintes"},
		language.English: {"Constraints"},
		language.Arabic:  {"القيود"},
	},
	Examples: {
		language.French:  {"Exemples", "Exemple"},
		language.English: {"Examples", "Example"},
		language.Arabic:  {"أمثلة", "مثال"},
	},
	Workflow: {
		language.French:  {"Processus", "Workflow", "Étapes"},
		language.English: {"Workflow", "Steps"},
		language.Arabic:  {"سير العمل", "الخطوات"},
	},
	Considerations: {
		language.French:  {"Considérations"},
		language.English: {"Considerations"},
		language.Arabic:  {"اعتبارات"},
	},
	Methodology: {
		language.French:  {"Méthodologie", "Approche"},
		language.English: {"Methodology", "Approach"},
		language.Arabic:  {"المنهجية"},
	},
}

// spellings returns every spelling of s across all languages.
func spellings(s Section) []string {
	var out []string
	for _, lang := range []language.Code{language.French, language.English, language.Arabic} {
		out = append(out, labels[s][lang]...)
	}
	return out
}

// label returns the spelling written for s in lang.
func label(s Section, lang language.Code) string {
	if names := labels[s][lang]; len(names) > 0 {
		return names[0]
	}
	return labels[s][language.English][0]
}

// fillers is the one-line body written under an empty canonical heading.
var fillers = map[Section]map[language.Code]string{
	Role: {
		language.French:  "Tu es un expert du domaine concerné.",
		language.English: "You are an expert in the relevant domain.",
		language.Arabic:  "أنت خبير في المجال المعني.",
	},
	Objective: {
		language.French:  "Réaliser la tâche décrite de manière complète et précise.",
		language.English: "Complete the described task accurately and thoroughly.",
		language.Arabic:  "إنجاز المهمة الموصوفة بدقة وشمولية.",
	},
	Instructions: {
		language.French:  "Traite chaque point dans l'ordre et détaille-le.",
		language.English: "Address each point in order and detail it.",
		language.Arabic:  "عالج كل نقطة بالترتيب ووضحها.",
	},
	Format: {
		language.French:  "Réponse structurée en Markdown avec titres et listes.",
		language.English: "Structured Markdown answer with headings and lists.",
		language.Arabic:  "إجابة منظمة بصيغة Markdown مع عناوين وقوائم.",
	},
	Constraints: {
		language.French:  "Reste concis et fidèle à la demande.",
		language.English: "Stay concise and faithful to the request.",
		language.Arabic:  "كن موجزا ووفيا للطلب.",
	},
}

// genericFiller fills an empty heading that names no canonical section.
var genericFiller = map[language.Code]string{
	language.French:  "À compléter selon le contexte.",
	language.English: "To be completed as needed.",
	language.Arabic:  "يُستكمل حسب السياق.",
}

// closingBullets ends a list cut off in the middle of an item.
var closingBullets = map[language.Code]string{
	language.French:  "Vérifier la cohérence de l'ensemble.",
	language.English: "Check the overall consistency.",
	language.Arabic:  "التحقق من اتساق المجموع.",
}

// enrichments is the multi-item body of a section added for a size class.
var enrichments = map[Section]map[language.Code][]string{
	Examples: {
		language.French: {
			"- Une entrée type et la sortie attendue.",
			"- Un cas limite et son traitement.",
		},
		language.English: {
			"- A typical input and the expected output.",
			"- An edge case and how it is handled.",
		},
		language.Arabic: {
			"- مدخل نموذجي والمخرج المتوقع.",
			"- حالة حدية وطريقة معالجتها.",
		},
	},
	Workflow: {
		language.French: {
			"1. Analyser la demande.",
			"2. Produire une première version.",
			"3. Relire et corriger.",
		},
		language.English: {
			"1. Analyze the request.",
			"2. Produce a first draft.",
			"3. Review and correct.",
		},
		language.Arabic: {
			"1. تحليل الطلب.",
			"2. إعداد نسخة أولى.",
			"3. المراجعة والتصحيح.",
		},
	},
	Considerations: {
		language.French: {
			"- Signaler toute hypothèse retenue.",
			"- Mentionner les limites de la réponse.",
		},
		language.English: {
			"- State any assumption made.",
			"- Mention the limits of the answer.",
		},
		language.Arabic: {
			"- الإشارة إلى أي افتراض معتمد.",
			"- ذكر حدود الإجابة.",
		},
	},
	Methodology: {
		language.French: {
			"- Décomposer le problème en sous-tâches.",
			"- Justifier les choix principaux.",
		},
		language.English: {
			"- Break the problem into subtasks.",
			"- Justify the main choices.",
		},
		language.Arabic: {
			"- تقسيم المشكلة إلى مهام فرعية.",
			"- تبرير الخيارات الرئيسية.",
		},
	},
}

// filler returns the body for an empty heading of section s, falling back
// to the generic filler for non-canonical headings.
func filler(s Section, lang language.Code) string {
	if f, ok := fillers[s][lang]; ok {
		return f
	}
	return genericFiller[lang]
}

// sectionOf returns the canonical section a heading line names, if any.
func sectionOf(line string) (Section, bool) {
	if !textutil.IsHeading(line) {
		return "", false
	}
	name := strings.ToLower(textutil.HeadingLabel(line))
	for _, s := range allSections {
		for _, sp := range spellings(s) {
			if name == strings.ToLower(sp) {
				return s, true
			}
		}
	}
	return "", false
}

// mentions reports whether text names section s anywhere, as a whole word.
func mentions(text string, s Section) bool {
	return textutil.Matches(mentionPatterns[s], text)
}

var mentionPatterns = func() map[Section]*regexp2.Regexp {
	m := make(map[Section]*regexp2.Regexp, len(allSections))
	for _, s := range allSections {
		m[s] = textutil.Pattern(`(?<![\w])` + textutil.Alternation(spellings(s)) + `(?![\w])`)
	}
	return m
}()

// hasHeading reports whether text has a heading line for section s.
func hasHeading(text string, s Section) bool {
	for _, line := range strings.Split(text, "\n") {
		if got, ok := sectionOf(line); ok && got == s {
			return true
		}
	}
	return false
}
