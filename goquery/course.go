package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hfal/kursdoc"
)

// courseTitleSelector matches the first-level heading carrying the plan
// title on course pages.
const courseTitleSelector = "h1.mdh-header-break-word"

// courseTitlePrefixLen is the length of the fixed "Kursplan - " label
// the source system prepends to every course title.
const courseTitlePrefixLen = 11

// courseInactiveSentence marks course plans that are no longer current.
const courseInactiveSentence = "Denna kursplan är inte aktuell och ges inte längre"

// courseDetailExclusion marks the earlier/later-versions navigation
// widget inside the details block.
const courseDetailExclusion = "visa tidigare/senare versioner"

// courseSkippedSections are administrative boilerplate sections that
// never become record fields.
var courseSkippedSections = map[string]bool{
	"betyg":            true,
	"undervisning":     true,
	"litteraturlistor": true,
}

// Ensure CourseExtractor implements kursdoc.Extractor at compile time.
var _ kursdoc.Extractor = (*CourseExtractor)(nil)

// CourseExtractor extracts course plan pages into flat records.
type CourseExtractor struct{}

// NewCourseExtractor creates a new CourseExtractor.
func NewCourseExtractor() *CourseExtractor {
	return &CourseExtractor{}
}

// Extract parses a course plan page. Structured detail fields and
// free-text sections become record fields keyed by their lowercased
// labels; the examination section keeps only its first paragraph and
// the content section concatenates all of its paragraphs.
func (e *CourseExtractor) Extract(rawHTML string, id int) (kursdoc.Record, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	rec := newRecord(id)

	if title := doc.Find(courseTitleSelector).First(); title.Length() > 0 {
		name := []rune(title.Text())
		if len(name) > courseTitlePrefixLen {
			rec[kursdoc.FieldName] = string(name[courseTitlePrefixLen:])
		} else {
			rec[kursdoc.FieldName] = ""
		}
	}

	rec[kursdoc.FieldIsActive] = !strings.Contains(doc.Text(), courseInactiveSentence)

	extractDetails(doc, rec, func(key string) bool {
		return strings.Contains(key, courseDetailExclusion)
	})

	doc.Find(textSectionSelector).Each(func(_ int, section *goquery.Selection) {
		header := section.Find("h2").First()
		if header.Length() == 0 {
			return
		}
		key := strings.ToLower(strippedText(header.Nodes[0]))

		if key == "examination" {
			if paragraphs := paragraphTexts(section); len(paragraphs) > 0 {
				rec["examination"] = paragraphs[0]
				return
			}
		}
		if key == kursdoc.FieldContent {
			if paragraphs := paragraphTexts(section); len(paragraphs) > 0 {
				rec[kursdoc.FieldContent] = strings.Join(paragraphs, " ")
				return
			}
		}
		if courseSkippedSections[key] {
			return
		}

		content := collectSiblingText(header.Nodes[0], func(n *html.Node) bool {
			return n.Data == "h2"
		})
		if len(content) > 0 {
			rec[key] = strings.Join(content, " ")
		}
	})

	return rec, nil
}
