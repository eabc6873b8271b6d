// Package extract recovers product facts from a retailer product page.
//
// Five independent strategies each mine a different region of the
// document (hydration state, JSON-LD, meta tags, vendor body text,
// generic body text) and the resolver merges their partial outputs into
// one snapshot using a fixed per-field priority order. Strategies are
// best-effort: malformed input yields absent fields, never an error.
package extract

import (
	"strings"

	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// Extractor is one extraction strategy over a product page.
type Extractor interface {
	Name() string
	Extract(doc *document.Document) models.PartialResult
}

// normalizeAvailabilityURI maps a schema.org availability value
// (typically a URI like "https://schema.org/InStock") onto the enum by
// substring test. Unrecognized values stay absent so weaker strategies
// keep their chance to resolve.
func normalizeAvailabilityURI(value string) models.Availability {
	v := strings.ToLower(value)
	switch {
	case strings.Contains(v, "outofstock"):
		return models.AvailabilityOutOfStock
	case strings.Contains(v, "instock"):
		return models.AvailabilityInStock
	}
	return ""
}
