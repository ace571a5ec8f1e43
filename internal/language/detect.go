// Package language identifies the natural language of a prompt.
package language

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Code is a supported prompt language.
type Code string

const (
	French  Code = "fr"
	English Code = "en"
	Arabic  Code = "ar"
)

// Default is used when a text carries no usable signal.
const Default = French

// Language describes a supported prompt language.
type Language struct {
	Code      Code
	Tag       language.Tag
	StopWords []string // high-frequency words used for detection
}

// SupportedLanguages lists every language the engines carry vocabulary for.
var SupportedLanguages = []Language{
	{Code: French, Tag: language.French, StopWords: []string{
		"le", "la", "les", "des", "une", "un", "est", "pour", "avec", "vous",
		"dans", "que", "qui", "sur", "et", "du", "au", "ce", "ne", "pas",
	}},
	{Code: English, Tag: language.English, StopWords: []string{
		"the", "and", "is", "for", "with", "you", "that", "this", "of", "to",
		"in", "on", "a", "an", "are", "be", "it", "your", "from", "should",
	}},
	{Code: Arabic, Tag: language.Arabic},
}

// arabicRatio is the share of Arabic letters above which a text is Arabic.
const arabicRatio = 0.3

const frenchAccents = "àâäçéèêëîïôöûùüÿœæ"

// Valid reports whether c is a supported code.
func (c Code) Valid() bool {
	return GetLanguage(c) != nil
}

// GetLanguage returns the Language for a code.
func GetLanguage(c Code) *Language {
	for i := range SupportedLanguages {
		if SupportedLanguages[i].Code == c {
			return &SupportedLanguages[i]
		}
	}
	return nil
}

// GetDisplayName returns the language's own name for itself, e.g. "français".
func GetDisplayName(c Code) string {
	if lang := GetLanguage(c); lang != nil {
		return display.Self.Name(lang.Tag)
	}
	return cases.Title(language.English).String(string(c))
}

// Parse resolves a user-supplied language ("fr", "en-US", "Arabic") to a
// supported Code. The empty string means auto-detection and returns "".
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	if tag, err := language.Parse(s); err == nil {
		base, _ := tag.Base()
		if c := Code(base.String()); c.Valid() {
			return c, nil
		}
	}

	// English names of the languages, e.g. "french"
	lower := cases.Lower(language.Und).String(s)
	for _, lang := range SupportedLanguages {
		if lower == strings.ToLower(display.English.Languages().Name(lang.Tag)) {
			return lang.Code, nil
		}
	}

	return "", fmt.Errorf("unsupported language: %s (use fr, en, or ar)", s)
}

// Detect guesses the language of text from its script, stop words and
// accented letters. Ties and empty input return Default.
func Detect(text string) Code {
	var letters, arabic int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Arabic, r) {
			arabic++
		}
	}
	if letters == 0 {
		return Default
	}
	if float64(arabic)/float64(letters) >= arabicRatio {
		return Arabic
	}

	words := strings.FieldsFunc(cases.Lower(language.Und).String(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	french := stopWordSet(French)
	english := stopWordSet(English)

	var fr, en int
	for _, w := range words {
		if french[w] {
			fr++
		}
		if english[w] {
			en++
		}
		if strings.ContainsAny(w, frenchAccents) {
			fr++
		}
	}

	if en > fr {
		return English
	}
	return French
}

func stopWordSet(c Code) map[string]bool {
	set := make(map[string]bool)
	for _, w := range GetLanguage(c).StopWords {
		set[w] = true
	}
	return set
}
