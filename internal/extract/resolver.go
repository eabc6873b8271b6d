package extract

import (
	"time"

	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// Resolver folds per-extractor partials into one snapshot. Resolution is
// per field: each field independently takes the first non-absent value
// walking the partials in the order given, so name may come from one
// strategy and price from another. Once a field is set it never changes
// for the rest of the pass. If no strategy yields availability the
// terminal default is "unknown".
type Resolver struct {
	now func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{now: time.Now}
}

func (r *Resolver) Resolve(partials []models.PartialResult) models.ProductSnapshot {
	snap := models.ProductSnapshot{PickupLocations: []string{}}

	for _, p := range partials {
		if snap.Name == "" && p.Name != "" {
			snap.Name = p.Name
		}
		if snap.Price == "" && p.Price != "" {
			snap.Price = p.Price
		}
		if snap.Availability == "" && p.Availability.Definite() {
			snap.Availability = p.Availability
		}
		if snap.Stock == nil && p.Stock != nil {
			n := *p.Stock
			snap.Stock = &n
		}
		if snap.Shipping == "" && p.Shipping != "" {
			snap.Shipping = p.Shipping
		}
		if len(snap.PickupLocations) == 0 && len(p.PickupLocations) > 0 {
			snap.PickupLocations = append([]string(nil), p.PickupLocations...)
		}
	}

	if snap.Availability == "" {
		snap.Availability = models.AvailabilityUnknown
	}
	snap.CheckedAt = r.now()
	return snap
}
