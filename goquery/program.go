package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hfal/kursdoc"
)

// placeholderToken is echoed into the <title> of program pages that
// exist as stubs for undefined program IDs.
const placeholderToken = "$details.name"

// programTitleLabel prefixes the program name in the page title.
const programTitleLabel = "Utbildningsplan -"

// institutionSuffixes are the trailing institution names stripped from
// program titles. Both capitalizations occur in the wild.
var institutionSuffixes = []string{
	"- Mälardalens Universitet",
	"- Mälardalens universitet",
}

// programInactiveSentence marks program plans that are no longer current.
const programInactiveSentence = "Denna utbildningsplan är inte aktuell och ges inte längre"

// programGoalSections are the fixed learning-outcome categories whose
// sections are accumulated into one field each.
var programGoalSections = []string{
	"kunskap och förståelse",
	"färdighet och förmåga",
	"värderingsförmåga och förhållningssätt",
}

// Ensure ProgramExtractor implements kursdoc.Extractor at compile time.
var _ kursdoc.Extractor = (*ProgramExtractor)(nil)

// ProgramExtractor extracts program plan pages into flat records.
type ProgramExtractor struct{}

// NewProgramExtractor creates a new ProgramExtractor.
func NewProgramExtractor() *ProgramExtractor {
	return &ProgramExtractor{}
}

// Extract parses a program plan page. A placeholder title short-circuits
// into an invalid stub record. Otherwise sections are classified in
// document order while tracking the current year of study, with
// teaching-language detection and learning-outcome accumulation.
func (e *ProgramExtractor) Extract(rawHTML string, id int) (kursdoc.Record, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	rec := newRecord(id)

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if strings.Contains(title, placeholderToken) {
		rec[kursdoc.FieldIsValid] = false
		return rec, nil
	}

	name := title
	if idx := strings.Index(title, programTitleLabel); idx >= 0 {
		name = title[idx+len(programTitleLabel):]
	}
	for _, suffix := range institutionSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}
	rec[kursdoc.FieldName] = strings.TrimSpace(name)

	rec[kursdoc.FieldIsActive] = !strings.Contains(doc.Text(), programInactiveSentence)

	extractDetails(doc, rec, func(key string) bool {
		return strings.Contains(key, "version")
	})

	goalContents := make(map[string][]string)
	yearContents := make(map[string][]string)
	currentYear := ""
	foundLanguageSection := false

	doc.Find(textSectionSelector).Each(func(_ int, section *goquery.Selection) {
		header := section.Find("h2, h3").First()
		if header.Length() == 0 {
			return
		}
		key := strings.ToLower(strippedText(header.Nodes[0]))

		if key == kursdoc.FieldContent {
			if paragraphs := paragraphTexts(section); len(paragraphs) > 0 {
				rec[kursdoc.FieldContent] = strings.Join(paragraphs, " ")
				return
			}
		}
		if strings.Contains(key, "årskurs") {
			currentYear = key
			return
		}

		content := collectSiblingText(header.Nodes[0], func(n *html.Node) bool {
			return n.Data == "h2" || n.Data == "h3"
		})
		if len(content) == 0 {
			return
		}
		text := strings.Join(content, " ")

		switch {
		case key == kursdoc.FieldLanguages:
			foundLanguageSection = true
			rec[kursdoc.FieldLanguages] = kursdoc.DetectLanguages(text)
		case currentYear != "":
			yearContents[currentYear] = append(yearContents[currentYear], text)
		case isGoalSection(key):
			goalContents[key] = append(goalContents[key], text)
		default:
			rec[key] = text
		}
	})

	if !foundLanguageSection {
		rec[kursdoc.FieldLanguages] = []string{}
	}

	for _, goal := range programGoalSections {
		if contents := goalContents[goal]; len(contents) > 0 {
			rec[goal] = strings.Join(contents, " ")
		}
	}
	if len(yearContents) > 0 {
		rec[kursdoc.FieldYears] = yearContents
	}

	return rec, nil
}

func isGoalSection(key string) bool {
	for _, goal := range programGoalSections {
		if key == goal {
			return true
		}
	}
	return false
}
