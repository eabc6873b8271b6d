package models

import (
	"time"
)

// Availability is the resolved purchase status of a product.
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityUnknown    Availability = "unknown"
)

// Definite reports whether the value is a concrete stock signal rather
// than absent or the terminal default.
func (a Availability) Definite() bool {
	return a == AvailabilityInStock || a == AvailabilityOutOfStock
}

// PartialResult is the output of a single extraction strategy. Every
// field may independently be absent: zero values for strings and slices,
// nil for Stock, empty string for Availability. A strategy that finds
// nothing returns the zero PartialResult.
type PartialResult struct {
	Name            string
	Price           string
	Availability    Availability
	Stock           *int
	Shipping        string
	PickupLocations []string
}

// Empty reports whether the extractor found no signal at all.
func (r PartialResult) Empty() bool {
	return r.Name == "" &&
		r.Price == "" &&
		r.Availability == "" &&
		r.Stock == nil &&
		r.Shipping == "" &&
		len(r.PickupLocations) == 0
}

// ProductSnapshot is the resolved product status. Availability is always
// one of the three enum values; everything else may be absent.
type ProductSnapshot struct {
	Name            string       `json:"name,omitempty"`
	Price           string       `json:"price,omitempty"`
	Availability    Availability `json:"availability"`
	Stock           *int         `json:"stock,omitempty"`
	Shipping        string       `json:"shipping,omitempty"`
	PickupLocations []string     `json:"pickup_locations"`
	CheckedAt       time.Time    `json:"checked_at"`
}
