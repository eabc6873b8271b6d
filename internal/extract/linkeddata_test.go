package extract

import (
	"testing"

	"github.com/stockwatch/digitec-stock-check/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLinkedDataExtractor(t *testing.T) {
	extractor := LinkedDataExtractor{}

	tests := []struct {
		name     string
		html     string
		expected models.PartialResult
	}{
		{
			name: "product with single offer",
			html: `<script type="application/ld+json">
				{"@type":"Product","name":"Logitech MX Master 3S","offers":{"price":"89.90","availability":"https://schema.org/InStock"}}
			</script>`,
			expected: models.PartialResult{
				Name:         "Logitech MX Master 3S",
				Price:        "89.90",
				Availability: models.AvailabilityInStock,
			},
		},
		{
			name: "array payload with offer list",
			html: `<script type="application/ld+json">
				[{"@type":"BreadcrumbList"},{"@type":"Product","name":"Fairphone 5","offers":[{"price":"599.00","availability":"http://schema.org/OutOfStock"}]}]
			</script>`,
			expected: models.PartialResult{
				Name:         "Fairphone 5",
				Price:        "599.00",
				Availability: models.AvailabilityOutOfStock,
			},
		},
		{
			name: "aggregate offer with lowPrice",
			html: `<script type="application/ld+json">
				{"@type":"Product","name":"Sony WH-1000XM5","aggregateOffers":{"lowPrice":279.0,"availability":"https://schema.org/InStock"}}
			</script>`,
			expected: models.PartialResult{
				Name:         "Sony WH-1000XM5",
				Price:        "279",
				Availability: models.AvailabilityInStock,
			},
		},
		{
			name: "malformed block skipped, later block still read",
			html: `<script type="application/ld+json">{broken</script>
				<script type="application/ld+json">{"@type":"Product","name":"Anker PowerCore","aggregateOffer":{"price":"45.50"}}</script>`,
			expected: models.PartialResult{
				Name:  "Anker PowerCore",
				Price: "45.50",
			},
		},
		{
			name: "unrecognized availability stays absent",
			html: `<script type="application/ld+json">
				{"@type":"Product","name":"Kindle Paperwhite","offers":{"price":"149.00","availability":"https://schema.org/LimitedAvailability"}}
			</script>`,
			expected: models.PartialResult{
				Name:  "Kindle Paperwhite",
				Price: "149.00",
			},
		},
		{
			name: "first found name and price win",
			html: `<script type="application/ld+json">{"@type":"Product","name":"First","offers":{"price":"10.00"}}</script>
				<script type="application/ld+json">{"@type":"Product","name":"Second","offers":{"price":"20.00"}}</script>`,
			expected: models.PartialResult{
				Name:  "First",
				Price: "10.00",
			},
		},
		{
			name:     "no json-ld blocks",
			html:     `<div>nothing structured here</div>`,
			expected: models.PartialResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(mustDoc(t, tt.html))
			assert.Equal(t, tt.expected, result)
		})
	}
}
