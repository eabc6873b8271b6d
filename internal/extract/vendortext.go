package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// VendorTextExtractor scans the collapsed body text for the retailer's
// German availability phrasing. The patterns mirror Digitec's product
// page wording at the time of writing and will rot when the retailer
// rewords; they are deliberately confined to this file.
type VendorTextExtractor struct{}

var (
	// "5 Stück an Lager", "Mehr als 10 Stück an Lager"
	stockCountPattern = regexp.MustCompile(`(?i)(\d+)\s*Stück an Lager`)

	// Time token (heute / morgen / übermorgen / "in N Tagen") followed by
	// a delivery-speed token within the same clause, e.g. "Morgen mit
	// Expresslieferung geliefert". Captured verbatim.
	// No \b before the time token: Go's \b is ASCII-only and rejects the
	// boundary in front of "übermorgen". Longest token first instead.
	shippingPattern = regexp.MustCompile(`(?i)(?:übermorgen|heute|morgen|in\s+\d+\s+Tagen)[^.;:,]{0,40}?\b(?:Express|Standard)[a-zäöüß]*`)

	// "Zürich: Morgen abholbereit", repeated once per store. The location
	// is one capitalized word, optionally in "St. Gallen" abbreviation
	// form, so a capitalized word from the preceding sentence cannot be
	// swallowed into the store name. Case kept explicit because (?i)
	// would defeat the capitalization constraint.
	pickupPattern = regexp.MustCompile(`([A-ZÄÖÜ][\p{L}-]*(?:\. [A-ZÄÖÜ][\p{L}-]*)?):\s*(?:[Üü]bermorgen|[Hh]eute|[Mm]orgen|[Ii]n\s+\d+\s+[Tt]agen)\s+abholbereit`)
)

func (VendorTextExtractor) Name() string { return "vendor_text" }

func (VendorTextExtractor) Extract(doc *document.Document) models.PartialResult {
	text := doc.BodyText()
	var res models.PartialResult

	// An explicit count decides availability on its own; zero counts as
	// out of stock no matter what the rest of the page says.
	if m := stockCountPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			res.Stock = &n
			if n > 0 {
				res.Availability = models.AvailabilityInStock
			} else {
				res.Availability = models.AvailabilityOutOfStock
			}
		}
	}

	if m := shippingPattern.FindString(text); m != "" {
		res.Shipping = strings.TrimSpace(m)
	}

	for _, m := range pickupPattern.FindAllStringSubmatch(text, -1) {
		res.PickupLocations = append(res.PickupLocations, strings.TrimSpace(m[1]))
	}
	if res.Availability == "" && len(res.PickupLocations) > 0 {
		// A store offering pickup implies stock somewhere.
		res.Availability = models.AvailabilityInStock
	}

	if res.Availability == "" && hasAvailableMarker(doc) {
		res.Availability = models.AvailabilityInStock
	}

	return res
}

// hasAvailableMarker reports whether any element carries an
// accessibility label announcing availability. Negated labels
// ("nicht verfügbar") do not count.
func hasAvailableMarker(doc *document.Document) bool {
	found := false
	doc.Find("[aria-label]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		label, _ := s.Attr("aria-label")
		l := strings.ToLower(label)
		if strings.Contains(l, "nicht verfügbar") || strings.Contains(l, "not available") || strings.Contains(l, "unavailable") {
			return true
		}
		if strings.Contains(l, "verfügbar") || strings.Contains(l, "available") {
			found = true
			return false
		}
		return true
	})
	return found
}
