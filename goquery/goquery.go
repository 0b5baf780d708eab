// Package goquery provides goquery-based implementations of
// kursdoc.Extractor for course and program plan pages. The page layout
// is a structured details block plus a sequence of free-text sections;
// both extractors map those onto flat records using kind-specific field
// rules.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hfal/kursdoc"
)

// Selectors shared by course and program pages.
const (
	detailsBlockSelector   = "div.mdh-details-block"
	detailsItemSelector    = "div.mdh-details-block__item"
	detailsHeaderSelector  = "div.mdh-details-block__header"
	detailsContentSelector = "div.mdh-details-block__content"
	textSectionSelector    = "div.mdh-text-section"
)

// parse parses raw HTML into a goquery document.
func parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, kursdoc.Errorf(kursdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// newRecord returns a record carrying the stringified source ID.
func newRecord(id int) kursdoc.Record {
	return kursdoc.Record{kursdoc.FieldSourceID: strconv.Itoa(id)}
}

// extractDetails walks the page's details block and stores one field per
// header/content pair, keyed by the lowercased header text. Pairs whose
// header matches the exclude predicate are navigation widgets, not data.
func extractDetails(doc *goquery.Document, rec kursdoc.Record, exclude func(key string) bool) {
	block := doc.Find(detailsBlockSelector).First()
	if block.Length() == 0 {
		return
	}
	block.Find(detailsItemSelector).Each(func(_ int, item *goquery.Selection) {
		header := item.Find(detailsHeaderSelector).First()
		content := item.Find(detailsContentSelector).First()
		if header.Length() == 0 || content.Length() == 0 {
			return
		}
		key := strings.ToLower(strippedText(header.Nodes[0]))
		if exclude(key) {
			return
		}
		rec[key] = strippedText(content.Nodes[0])
	})
}

// paragraphTexts returns the space-normalized text of every <p> in the
// section, in document order.
func paragraphTexts(section *goquery.Selection) []string {
	var texts []string
	section.Find("p").Each(func(_ int, p *goquery.Selection) {
		texts = append(texts, spacedText(p.Nodes[0]))
	})
	return texts
}

// nodeString mirrors the semantics the extraction rules rely on for
// sibling content: a text node yields its own text, and an element
// yields text only when it wraps a single child, following single-child
// chains down to a text node. Elements with mixed or multiple children
// (images, nested markup) yield nothing.
func nodeString(n *html.Node) (string, bool) {
	switch n.Type {
	case html.TextNode:
		return n.Data, true
	case html.ElementNode:
		child := n.FirstChild
		if child != nil && child.NextSibling == nil {
			return nodeString(child)
		}
	}
	return "", false
}

// collectSiblingText performs the shallow-sibling walk: a bounded
// forward scan over the header's immediate following siblings, stopping
// at the next same-level header. It collects trimmed sibling text
// without descending into nested structure.
func collectSiblingText(header *html.Node, isBoundary func(*html.Node) bool) []string {
	var content []string
	for sibling := header.NextSibling; sibling != nil; sibling = sibling.NextSibling {
		if sibling.Type == html.ElementNode && isBoundary(sibling) {
			break
		}
		if s, ok := nodeString(sibling); ok {
			if s = strings.TrimSpace(s); s != "" {
				content = append(content, s)
			}
		}
	}
	return content
}

// joinedText collects the trimmed text nodes of n's subtree in document
// order and joins the non-empty ones with sep.
func joinedText(n *html.Node, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if s := strings.TrimSpace(c.Data); s != "" {
					parts = append(parts, s)
				}
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.Join(parts, sep)
}

// strippedText returns the subtree text with surrounding whitespace
// stripped and no separators, as used for detail-block keys and values.
func strippedText(n *html.Node) string {
	return joinedText(n, "")
}

// spacedText returns the subtree text with single spaces between text
// runs, as used for free-text section content.
func spacedText(n *html.Node) string {
	return joinedText(n, " ")
}
