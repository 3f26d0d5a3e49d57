// Package pricing derives region-adjusted prices from a base price.
//
// The agency quotes in three regions with fixed multipliers:
//   - MY  (Malaysia)       0.85
//   - SG  (Singapore)      1.00
//   - INT (International)  1.20
//
// Prices are rounded to the nearest integer unit, half away from zero.
package pricing

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrUnknownRegion     = errors.New("unknown region")
	ErrNegativeBasePrice = errors.New("negative base price")
)

type Region string

const (
	RegionMY  Region = "MY"
	RegionSG  Region = "SG"
	RegionINT Region = "INT"
)

// DefaultRegion is the display fallback for missing or unrecognized region
// codes. Product decision: funnel requests are never rejected over region.
const DefaultRegion = RegionINT

// ParseRegion normalizes a client-supplied region code. ok is false for
// unrecognized codes; callers on display paths fall back to DefaultRegion.
func ParseRegion(s string) (Region, bool) {
	switch Region(strings.ToUpper(strings.TrimSpace(s))) {
	case RegionMY:
		return RegionMY, true
	case RegionSG:
		return RegionSG, true
	case RegionINT:
		return RegionINT, true
	}
	return "", false
}

// ParseRegionOrDefault is ParseRegion with the INT fallback applied.
func ParseRegionOrDefault(s string) Region {
	if r, ok := ParseRegion(s); ok {
		return r
	}
	return DefaultRegion
}

func multiplier(r Region) (float64, bool) {
	switch r {
	case RegionMY:
		return 0.85, true
	case RegionSG:
		return 1.00, true
	case RegionINT:
		return 1.20, true
	}
	return 0, false
}

// RegionalPriceSet is a derived view of one base price across all regions.
// It has no lifecycle of its own and is never persisted.
type RegionalPriceSet struct {
	MY  int64 `json:"MY"`
	SG  int64 `json:"SG"`
	INT int64 `json:"INT"`
}

// PriceFor returns round(basePrice × multiplier(region)).
//
// Negative base prices are a caller contract violation and are rejected
// rather than clamped; callers validate upstream.
func PriceFor(basePrice float64, region Region) (int64, error) {
	if basePrice < 0 {
		return 0, ErrNegativeBasePrice
	}
	m, ok := multiplier(region)
	if !ok {
		return 0, ErrUnknownRegion
	}
	return int64(math.Round(basePrice * m)), nil
}

// RegionalPrices derives the full per-region price set from one base price.
func RegionalPrices(basePrice float64) (RegionalPriceSet, error) {
	my, err := PriceFor(basePrice, RegionMY)
	if err != nil {
		return RegionalPriceSet{}, err
	}
	sg, err := PriceFor(basePrice, RegionSG)
	if err != nil {
		return RegionalPriceSet{}, err
	}
	intl, err := PriceFor(basePrice, RegionINT)
	if err != nil {
		return RegionalPriceSet{}, err
	}
	return RegionalPriceSet{MY: my, SG: sg, INT: intl}, nil
}

// For returns the set's price for a region, defaulting to INT for
// unrecognized codes (display fallback, see ParseRegionOrDefault).
func (s RegionalPriceSet) For(region Region) int64 {
	switch region {
	case RegionMY:
		return s.MY
	case RegionSG:
		return s.SG
	default:
		return s.INT
	}
}
