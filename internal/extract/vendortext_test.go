package extract

import (
	"testing"

	"github.com/stockwatch/digitec-stock-check/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestVendorTextExtractorStockCount(t *testing.T) {
	extractor := VendorTextExtractor{}

	tests := []struct {
		name             string
		html             string
		expectedStock    *int
		expectedAvail    models.Availability
	}{
		{
			name:          "positive count",
			html:          `<body><span>5 Stück an Lager</span></body>`,
			expectedStock: intPtr(5),
			expectedAvail: models.AvailabilityInStock,
		},
		{
			name:          "more-than count",
			html:          `<body><span>Mehr als 10 Stück an Lager</span></body>`,
			expectedStock: intPtr(10),
			expectedAvail: models.AvailabilityInStock,
		},
		{
			name:          "zero count is authoritative even next to an in-stock mention",
			html:          `<body><span>0 Stück an Lager</span><footer>Alle Artikel in stock bei unseren Partnern</footer></body>`,
			expectedStock: intPtr(0),
			expectedAvail: models.AvailabilityOutOfStock,
		},
		{
			name:          "no count phrase",
			html:          `<body><span>Lieferumfang: Kabel</span></body>`,
			expectedStock: nil,
			expectedAvail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(mustDoc(t, tt.html))
			assert.Equal(t, tt.expectedStock, result.Stock)
			assert.Equal(t, tt.expectedAvail, result.Availability)
		})
	}
}

func TestVendorTextExtractorShipping(t *testing.T) {
	extractor := VendorTextExtractor{}

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "tomorrow with standard delivery",
			html:     `<body><div>Morgen mit Standardlieferung</div></body>`,
			expected: "Morgen mit Standardlieferung",
		},
		{
			name:     "today with express",
			html:     `<body><div>Heute mit Express geliefert</div></body>`,
			expected: "Heute mit Express",
		},
		{
			name:     "day after tomorrow",
			html:     `<body><div>Übermorgen mit Standardversand</div></body>`,
			expected: "Übermorgen mit Standardversand",
		},
		{
			name:     "in n days",
			html:     `<body><div>Lieferung: in 3 Tagen mit Standardlieferung</div></body>`,
			expected: "in 3 Tagen mit Standardlieferung",
		},
		{
			name:     "time token without speed token",
			html:     `<body><div>Morgen geliefert</div></body>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(mustDoc(t, tt.html))
			assert.Equal(t, tt.expected, result.Shipping)
		})
	}
}

func TestVendorTextExtractorPickup(t *testing.T) {
	extractor := VendorTextExtractor{}

	html := `<body>
		<ul>
			<li>Zürich: Morgen abholbereit</li>
			<li>St. Gallen: Übermorgen abholbereit</li>
			<li>Basel: in 2 Tagen abholbereit</li>
		</ul>
	</body>`

	result := extractor.Extract(mustDoc(t, html))
	assert.Equal(t, []string{"Zürich", "St. Gallen", "Basel"}, result.PickupLocations)
	assert.Equal(t, models.AvailabilityInStock, result.Availability)
}

func TestVendorTextExtractorPickupKeepsDuplicates(t *testing.T) {
	extractor := VendorTextExtractor{}

	html := `<body>
		<span>Zürich: Heute abholbereit</span>
		<span>Zürich: Heute abholbereit</span>
	</body>`

	result := extractor.Extract(mustDoc(t, html))
	assert.Equal(t, []string{"Zürich", "Zürich"}, result.PickupLocations)
}

func TestVendorTextExtractorAriaMarker(t *testing.T) {
	extractor := VendorTextExtractor{}

	tests := []struct {
		name     string
		html     string
		expected models.Availability
	}{
		{
			name:     "available marker",
			html:     `<body><div aria-label="Artikel verfügbar">●</div></body>`,
			expected: models.AvailabilityInStock,
		},
		{
			name:     "negated marker does not count",
			html:     `<body><div aria-label="Artikel nicht verfügbar">●</div></body>`,
			expected: "",
		},
		{
			name:     "marker loses to a zero stock count",
			html:     `<body><div aria-label="verfügbar">●</div><span>0 Stück an Lager</span></body>`,
			expected: models.AvailabilityOutOfStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(mustDoc(t, tt.html))
			assert.Equal(t, tt.expected, result.Availability)
		})
	}
}
