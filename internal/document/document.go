// Package document wraps one fetched product page: the raw HTML, a
// parsed handle for selector queries, and the normalized body text the
// text-based strategies scan.
package document

import (
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

type Document struct {
	raw string
	doc *goquery.Document

	bodyOnce sync.Once
	bodyText string
}

// Parse builds a Document from raw HTML. Any text input parses; the
// underlying parser repairs broken markup rather than rejecting it.
func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &Document{raw: html, doc: doc}, nil
}

// Raw returns the original HTML text.
func (d *Document) Raw() string {
	return d.raw
}

// Find runs a CSS selector query over the parsed document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// BodyText returns the visible body text with all whitespace runs
// collapsed to single spaces and the ends trimmed. Computed once.
func (d *Document) BodyText() string {
	d.bodyOnce.Do(func() {
		text := d.doc.Find("body").Text()
		d.bodyText = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	})
	return d.bodyText
}
