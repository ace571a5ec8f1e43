// Package structure completes and enriches prompts: it repairs truncated
// endings, fills empty canonical sections and appends the sections a
// target size class calls for. Like compress it is pattern-driven and
// every function is pure.
package structure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/HartBrook/promptpress/internal/language"
	"github.com/HartBrook/promptpress/internal/textutil"
)

// Result is the outcome of Optimize.
type Result struct {
	Optimized    string        `json:"optimized"`
	Improvements []string      `json:"improvements"`
	Language     language.Code `json:"language"`
}

// Optimize completes prompt and enriches it for size. A valid forced
// language overrides detection. A prompt that needs nothing comes back
// unchanged.
func Optimize(prompt string, size SizeClass, forced language.Code) Result {
	text := strings.TrimSpace(strings.ReplaceAll(prompt, "\r\n", "\n"))
	lang := forced
	if !lang.Valid() {
		lang = language.Detect(text)
	}
	if text == "" {
		return Result{Optimized: prompt, Improvements: []string{}, Language: lang}
	}

	var filled []string
	out, completed := complete(text, lang)
	out, filled = backfill(out, lang, filled)
	out = enrich(out, text, size, lang)
	out, filled = closeHeadings(out, lang, filled)

	if out == text {
		return Result{Optimized: prompt, Improvements: []string{}, Language: lang}
	}
	return Result{
		Optimized:    out,
		Improvements: improvements(text, out, completed, filled),
		Language:     lang,
	}
}

// terminals are the runes that end a complete prompt.
const terminals = ".!?؟…)\"»`]"

var numbered = textutil.Pattern(`^\s*\d+[.)]`)

// phraseCompletions finish a few common fragments outright.
var phraseCompletions = []struct {
	Lang    language.Code
	Pattern *regexp2.Regexp
	Replace string
}{
	{language.French, textutil.Pattern(`\ben\s+format\s*$`), "en format Markdown."},
	{language.French, textutil.Pattern(`\bet\s+cetera\s*$|\betc\s*$`), "etc."},
	{language.English, textutil.Pattern(`\bin\s+(?:the\s+)?format\s*$`), "in Markdown format."},
	{language.English, textutil.Pattern(`\betc\s*$`), "etc."},
	{language.Arabic, textutil.Pattern(`بصيغة\s*$`), "بصيغة Markdown."},
}

// complete repairs an ending that lacks terminal punctuation.
func complete(text string, lang language.Code) (string, bool) {
	runes := []rune(text)
	if strings.ContainsRune(terminals, runes[len(runes)-1]) {
		return text, false
	}

	last := textutil.LastLine(text)
	switch {
	case textutil.IsHeading(last):
		s, _ := sectionOf(last)
		return text + "\n" + filler(s, lang), true
	case textutil.IsBullet(last):
		return text + "\n" + nextMarker(last) + " " + closingBullets[lang], true
	}

	for _, pc := range phraseCompletions {
		if pc.Lang == lang && textutil.Matches(pc.Pattern, text) {
			return textutil.ReplaceAll(pc.Pattern, text, pc.Replace), true
		}
	}

	return text + ".", true
}

// nextMarker returns the list marker that follows the one on line.
func nextMarker(line string) string {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	marker, _, ok := textutil.FindFirst(numbered, line)
	if !ok {
		return indent + "-"
	}
	marker = strings.TrimSpace(marker)
	n, err := strconv.Atoi(marker[:len(marker)-1])
	if err != nil {
		return indent + "-"
	}
	return indent + strconv.Itoa(n+1) + marker[len(marker)-1:]
}

// emptyHeadings matches, per core section, a heading line directly
// followed by another markdown heading or the end of the text. Parents of a
// deeper heading are filtered out by backfill.
var emptyHeadings = func() map[Section]*regexp2.Regexp {
	next := `(?=\s*(?:\z|^[ \t]*#{1,6}[ \t]|^[ \t]*\*\*[^*\n]+\*\*[ \t]*:?[ \t]*$))`
	m := make(map[Section]*regexp2.Regexp, len(coreSections))
	for _, s := range coreSections {
		l := textutil.Alternation(spellings(s))
		m[s] = textutil.MultilinePattern(`^[ \t]*(?:` +
			`#{1,6}[ \t]*(?:\*\*)?[ \t]*` + l + `[ \t]*:?[ \t]*(?:\*\*)?` +
			`|\*\*[ \t]*` + l + `[ \t]*:?[ \t]*\*\*[ \t]*:?` +
			`|` + l + `[ \t]*:` +
			`)[ \t]*$` + next)
	}
	return m
}()

// backfill writes filler under empty canonical headings.
func backfill(text string, lang language.Code, filled []string) (string, []string) {
	for _, s := range coreSections {
		re := emptyHeadings[s]
		if !textutil.Matches(re, text) {
			continue
		}
		src, wrote := text, false
		text = textutil.ReplaceFunc(re, src, func(m regexp2.Match) string {
			heading := m.String()
			rest := strings.Split(textutil.FromRune(src, m.Index+m.Length), "\n")
			if next, ok := nextNonBlank(rest, 0); ok && isParent(heading, next) {
				return heading
			}
			wrote = true
			return heading + "\n" + filler(s, lang)
		})
		if wrote {
			filled = append(filled, string(s))
		}
	}
	return text, filled
}

// enrich appends the sections size calls for that the input does not
// mention. Text written by earlier passes does not count as a mention.
func enrich(text, input string, size SizeClass, lang language.Code) string {
	for _, s := range enrichmentsFor(size) {
		if mentions(input, s) {
			continue
		}
		text += "\n\n## " + label(s, lang) + "\n" + strings.Join(enrichments[s][lang], "\n")
	}
	return text
}

// closeHeadings fills any heading still followed directly by another one.
// A markdown heading followed by a deeper one is a parent, not empty.
func closeHeadings(text string, lang language.Code, filled []string) (string, []string) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, line)
		if !textutil.IsHeading(line) {
			continue
		}
		next, ok := nextNonBlank(lines, i+1)
		if !ok || !textutil.IsHeading(next) || isParent(line, next) {
			continue
		}
		s, canonical := sectionOf(line)
		out = append(out, filler(s, lang))
		if canonical {
			filled = append(filled, string(s))
		} else {
			filled = append(filled, textutil.HeadingLabel(line))
		}
	}
	return strings.Join(out, "\n"), filled
}

func nextNonBlank(lines []string, from int) (string, bool) {
	for _, l := range lines[from:] {
		if strings.TrimSpace(l) != "" {
			return l, true
		}
	}
	return "", false
}

func isParent(line, next string) bool {
	a, b := hashLevel(line), hashLevel(next)
	return a > 0 && b > a
}

func hashLevel(line string) int {
	t := strings.TrimLeft(line, " \t")
	return len(t) - len(strings.TrimLeft(t, "#"))
}

// improvements describes what changed between before and after.
func improvements(before, after string, completed bool, filled []string) []string {
	list := []string{}
	for _, s := range allSections {
		if !hasHeading(before, s) && hasHeading(after, s) {
			list = append(list, fmt.Sprintf("Added %s section", s))
		}
	}
	for _, name := range filled {
		list = append(list, fmt.Sprintf("Filled empty %s section", name))
	}
	if completed {
		list = append(list, "Completed truncated ending")
	}
	b, a := textutil.EstimateTokens(before), textutil.EstimateTokens(after)
	if a > b {
		list = append(list, fmt.Sprintf("Expanded from %d to %d tokens (+%d)", b, a, a-b))
	}
	return list
}
