package extract

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// HydrationExtractor mines the embedded application-state blob that
// server-rendered pages ship for client-side rehydration. The blob's
// schema changes across deployments, so the scan works on the serialized
// text with tolerant patterns instead of fixed field paths.
type HydrationExtractor struct{}

var (
	hydrationNamePattern  = regexp.MustCompile(`"name"\s*:\s*"([^"]{3,200})"`)
	hydrationPricePattern = regexp.MustCompile(`"price"\s*:\s*"?(\d+(?:\.\d+)?)"?`)
	hydrationFlagPattern  = regexp.MustCompile(`"(?:inStock|available)"\s*:\s*(true|false)`)
	hydrationStockPattern = regexp.MustCompile(`"stock"\s*:\s*(\d+)`)
	hydrationAvailPattern = regexp.MustCompile(`"availability"\s*:\s*"([^"]*)"`)
	// Vendor count phrase as it appears inside serialized state, with or
	// without the ü escaped.
	hydrationCountPattern = regexp.MustCompile(`(\d+)\s*St(?:ü|\\u00fc)ck an Lager`)
)

func (HydrationExtractor) Name() string { return "hydration" }

func (HydrationExtractor) Extract(doc *document.Document) models.PartialResult {
	payload := hydrationPayload(doc)
	if payload == "" {
		return models.PartialResult{}
	}

	var res models.PartialResult

	if m := hydrationNamePattern.FindStringSubmatch(payload); m != nil {
		res.Name = m[1]
	}
	if m := hydrationPricePattern.FindStringSubmatch(payload); m != nil {
		res.Price = m[1]
	}

	// An explicit count is the strongest signal in the blob: it sets the
	// stock field and decides availability outright.
	if m := hydrationCountPattern.FindStringSubmatch(payload); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			res.Stock = &n
			if n > 0 {
				res.Availability = models.AvailabilityInStock
			} else {
				res.Availability = models.AvailabilityOutOfStock
			}
		}
	}
	if res.Stock == nil {
		if m := hydrationStockPattern.FindStringSubmatch(payload); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				res.Stock = &n
			}
		}
	}
	if res.Availability == "" {
		if m := hydrationAvailPattern.FindStringSubmatch(payload); m != nil {
			res.Availability = normalizeAvailabilityURI(m[1])
		}
	}
	if res.Availability == "" {
		if m := hydrationFlagPattern.FindStringSubmatch(payload); m != nil {
			if m[1] == "true" {
				res.Availability = models.AvailabilityInStock
			} else {
				res.Availability = models.AvailabilityOutOfStock
			}
		}
	}

	return res
}

// hydrationPayload returns the first script payload that holds valid
// JSON hydration state, or "" when the page ships none.
func hydrationPayload(doc *document.Document) string {
	if text := doc.Find(`script#__NEXT_DATA__`).First().Text(); json.Valid([]byte(text)) && text != "" {
		return text
	}

	var payload string
	doc.Find(`script[type="application/json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if text != "" && json.Valid([]byte(text)) {
			payload = text
			return false
		}
		return true
	})
	return payload
}
