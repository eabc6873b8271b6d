package extract

import (
	"strings"

	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// GenericTextExtractor is the last-resort strategy: retailer-agnostic
// stock phrases tested against the lowercased body text. It yields
// availability only. Out-of-stock phrases are tested first so a sold-out
// page is not rescued by an unrelated "in stock" mention elsewhere
// (note "nicht an lager" contains "an lager").
type GenericTextExtractor struct{}

var (
	outOfStockPhrases = []string{
		"nicht an lager",
		"derzeit nicht verfügbar",
		"nicht mehr verfügbar",
		"ausverkauft",
		"out of stock",
		"sold out",
		"currently unavailable",
	}
	inStockPhrases = []string{
		"an lager",
		"auf lager",
		"sofort lieferbar",
		"sofort verfügbar",
		"in stock",
	}
)

func (GenericTextExtractor) Name() string { return "generic_text" }

func (GenericTextExtractor) Extract(doc *document.Document) models.PartialResult {
	text := strings.ToLower(doc.BodyText())

	for _, phrase := range outOfStockPhrases {
		if strings.Contains(text, phrase) {
			return models.PartialResult{Availability: models.AvailabilityOutOfStock}
		}
	}
	for _, phrase := range inStockPhrases {
		if strings.Contains(text, phrase) {
			return models.PartialResult{Availability: models.AvailabilityInStock}
		}
	}
	return models.PartialResult{}
}
