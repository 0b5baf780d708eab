package kursdoc

import (
	"sort"
	"strings"
)

// Detected language labels. These are the fixed tokens used by the
// origin system and are deliberately not translated.
const (
	LanguageSwedish = "svenska"
	LanguageEnglish = "engelska"
)

// High-confidence indicator phrases for the taught language. A phrase
// match wins over the bare-word fallback below.
var (
	swedishIndicators = []string{
		"huvudsakliga undervisningsspråket är svenska",
		"undervisning sker på svenska",
		"undervisningen sker på svenska",
		"undervisningen genomförs på svenska",
		"programmet ges på svenska",
		"programmet genomförs på svenska",
		"examination sker på svenska",
	}

	englishIndicators = []string{
		"huvudsakliga undervisningsspråket är engelska",
		"undervisning sker på engelska",
		"undervisningen sker på engelska",
		"undervisningen genomförs på engelska",
		"programmet ges på engelska",
		"programmet genomförs på engelska",
		"examination sker på engelska",
		"kurslitteraturen är på engelska",
		"litteraturen är på engelska",
	}
)

// DetectLanguages detects which languages a plan is taught in from a
// free-text teaching-language section. Indicator phrases are checked
// first; only when no phrase matches at all does the detection fall back
// to bare substring presence of the language names. The result is
// deduplicated and sorted.
func DetectLanguages(text string) []string {
	text = strings.ToLower(text)
	languages := make(map[string]bool)

	for _, indicator := range swedishIndicators {
		if strings.Contains(text, indicator) {
			languages[LanguageSwedish] = true
			break
		}
	}
	for _, indicator := range englishIndicators {
		if strings.Contains(text, indicator) {
			languages[LanguageEnglish] = true
			break
		}
	}

	if len(languages) == 0 {
		if strings.Contains(text, LanguageSwedish) {
			languages[LanguageSwedish] = true
		}
		if strings.Contains(text, LanguageEnglish) {
			languages[LanguageEnglish] = true
		}
	}

	result := make([]string, 0, len(languages))
	for lang := range languages {
		result = append(result, lang)
	}
	sort.Strings(result)
	return result
}
