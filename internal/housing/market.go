package housing

import (
	"fmt"
	"strings"
)

// Market owns the house inventory. Houses keep their insertion order —
// purchase passes iterate in this order, so it is load-bearing for the
// first-fit policy even though it is irrelevant for lookups.
type Market struct {
	Houses []*House

	index map[int]*House // ID → house
}

// NewMarket builds a market over the given houses. House IDs must be
// unique; a duplicate is a configuration error.
func NewMarket(houses []*House) (*Market, error) {
	index := make(map[int]*House, len(houses))
	for _, h := range houses {
		if _, dup := index[h.ID]; dup {
			return nil, fmt.Errorf("duplicate house id %d", h.ID)
		}
		index[h.ID] = h
	}
	return &Market{Houses: houses, index: index}, nil
}

// FindByID returns the house with the given ID, or ok=false when no such
// house exists. A miss is an expected outcome, not an error.
func (m *Market) FindByID(id int) (*House, bool) {
	h, ok := m.index[id]
	return h, ok
}

// AveragePrice returns the mean price across all houses, or 0.0 when the
// inventory is empty.
func (m *Market) AveragePrice() float64 {
	return meanPrice(m.Houses)
}

// AveragePriceForBedrooms returns the mean price over houses with exactly
// the given bedroom count, or 0.0 when none match.
func (m *Market) AveragePriceForBedrooms(bedrooms int) float64 {
	var matched []*House
	for _, h := range m.Houses {
		if h.Bedrooms == bedrooms {
			matched = append(matched, h)
		}
	}
	return meanPrice(matched)
}

// MeetingRequirements returns houses priced at or below maxPrice whose
// segment label matches (case-insensitive). A nil slice means no match;
// callers must treat nil as the no-match sentinel.
func (m *Market) MeetingRequirements(maxPrice float64, segment string) []*House {
	var matched []*House
	for _, h := range m.Houses {
		if h.Price <= maxPrice && strings.EqualFold(h.Segment, segment) {
			matched = append(matched, h)
		}
	}
	return matched
}

// AvailableCount returns how many houses are still unsold.
func (m *Market) AvailableCount() int {
	n := 0
	for _, h := range m.Houses {
		if h.Available {
			n++
		}
	}
	return n
}

func meanPrice(houses []*House) float64 {
	if len(houses) == 0 {
		return 0.0
	}
	total := 0.0
	for _, h := range houses {
		total += h.Price
	}
	return total / float64(len(houses))
}
