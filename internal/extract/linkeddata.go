package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// LinkedDataExtractor reads schema.org Product/Offer markup from the
// page's JSON-LD script blocks. Malformed blocks are skipped, remaining
// blocks still scanned. Within the extractor the first found value per
// field wins and is never overwritten.
type LinkedDataExtractor struct{}

// Accepted offer container keys, each holding an object or a list.
var offerKeys = []string{"offers", "aggregateOffer", "aggregateOffers"}

func (LinkedDataExtractor) Name() string { return "linked_data" }

func (LinkedDataExtractor) Extract(doc *document.Document) models.PartialResult {
	var res models.PartialResult

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var payload interface{}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return
		}

		for _, node := range flattenLinkedData(payload) {
			obj, ok := node.(map[string]interface{})
			if !ok {
				continue
			}

			if res.Name == "" {
				if name, ok := obj["name"].(string); ok && strings.TrimSpace(name) != "" {
					res.Name = strings.TrimSpace(name)
				}
			}

			for _, offer := range objectOffers(obj) {
				if res.Price == "" {
					res.Price = offerPrice(offer)
				}
				if res.Availability == "" {
					if avail, ok := offer["availability"].(string); ok {
						res.Availability = normalizeAvailabilityURI(avail)
					}
				}
			}
		}
	})

	return res
}

// flattenLinkedData turns a payload that may be a single object or an
// array of objects into a flat node list.
func flattenLinkedData(payload interface{}) []interface{} {
	if nodes, ok := payload.([]interface{}); ok {
		return nodes
	}
	return []interface{}{payload}
}

func objectOffers(obj map[string]interface{}) []map[string]interface{} {
	var offers []map[string]interface{}
	for _, key := range offerKeys {
		switch v := obj[key].(type) {
		case map[string]interface{}:
			offers = append(offers, v)
		case []interface{}:
			for _, item := range v {
				if offer, ok := item.(map[string]interface{}); ok {
					offers = append(offers, offer)
				}
			}
		}
	}
	return offers
}

// offerPrice returns the offer's price or lowPrice, whichever is present
// first, as text. Numeric JSON values are formatted without a trailing
// zero fraction.
func offerPrice(offer map[string]interface{}) string {
	for _, key := range []string{"price", "lowPrice"} {
		switch v := offer[key].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
