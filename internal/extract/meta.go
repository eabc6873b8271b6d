package extract

import (
	"regexp"
	"strings"

	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// MetaExtractor reads OpenGraph and microdata tags plus heading text.
type MetaExtractor struct{}

// "Product name | Retailer" page titles: drop the retailer suffix.
var titleSuffixPattern = regexp.MustCompile(`\s*\|[^|]*$`)

func (MetaExtractor) Name() string { return "meta" }

func (MetaExtractor) Extract(doc *document.Document) models.PartialResult {
	var res models.PartialResult

	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		res.Name = strings.TrimSpace(content)
	}
	if res.Name == "" {
		title := strings.TrimSpace(doc.Find("title").First().Text())
		res.Name = strings.TrimSpace(titleSuffixPattern.ReplaceAllString(title, ""))
	}
	if res.Name == "" {
		res.Name = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	if content, ok := doc.Find(`meta[itemprop="price"]`).Attr("content"); ok {
		res.Price = strings.TrimSpace(content)
	}
	if res.Price == "" {
		if content, ok := doc.Find(`meta[property="product:price:amount"]`).Attr("content"); ok {
			res.Price = strings.TrimSpace(content)
		}
	}

	if href, ok := doc.Find(`link[itemprop="availability"]`).Attr("href"); ok {
		res.Availability = normalizeAvailabilityURI(href)
	}

	return res
}
