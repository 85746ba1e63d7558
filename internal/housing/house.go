// Package housing provides the house inventory data model and the market
// query layer over it.
package housing

import "math"

// QualityReferenceYear anchors age-based quality scoring.
const QualityReferenceYear = 2024

// QualityScore is a 5-level ordinal rating derived from age, size, and
// bedroom count. The zero value means the score has not been computed yet.
type QualityScore uint8

const (
	QualityUnset     QualityScore = 0
	QualityPoor      QualityScore = 1
	QualityFair      QualityScore = 2
	QualityAverage   QualityScore = 3
	QualityGood      QualityScore = 4
	QualityExcellent QualityScore = 5
)

// String returns the quality label.
func (q QualityScore) String() string {
	switch q {
	case QualityPoor:
		return "POOR"
	case QualityFair:
		return "FAIR"
	case QualityAverage:
		return "AVERAGE"
	case QualityGood:
		return "GOOD"
	case QualityExcellent:
		return "EXCELLENT"
	default:
		return "UNSET"
	}
}

// House is a single inventory unit. Houses are owned by the Market and are
// never deleted, only marked unavailable when sold.
type House struct {
	ID        int     `json:"id"`
	Price     float64 `json:"price"`
	Area      float64 `json:"area"` // Above-grade living area, square feet
	Bedrooms  int     `json:"bedrooms"`
	YearBuilt int     `json:"year_built"`

	// Quality is computed lazily by ComputeQuality and immutable once set.
	Quality QualityScore `json:"quality,omitempty"`

	Available bool   `json:"available"`
	Segment   string `json:"segment,omitempty"` // Market segment label, e.g. "AVERAGE"
}

// PricePerSquareFoot returns price/area rounded to 2 decimals.
// A zero-area house yields 0.0 rather than a division fault.
func (h *House) PricePerSquareFoot() float64 {
	if h.Area == 0 {
		return 0.0
	}
	return round2(h.Price / h.Area)
}

// IsNewConstruction reports whether the house is less than 5 years old
// relative to referenceYear. A build year in the future is never new.
func (h *House) IsNewConstruction(referenceYear int) bool {
	age := referenceYear - h.YearBuilt
	if age < 0 {
		return false
	}
	return age < 5
}

// ComputeQuality derives the quality score from age, size, and bedroom
// sub-scores. Idempotent: once set the score never changes.
func (h *House) ComputeQuality() {
	if h.Quality != QualityUnset {
		return
	}

	age := QualityReferenceYear - h.YearBuilt

	var ageScore int
	switch {
	case age <= 5:
		ageScore = 5
	case age <= 10:
		ageScore = 4
	case age <= 20:
		ageScore = 3
	case age <= 50:
		ageScore = 2
	default:
		ageScore = 1
	}

	var sizeScore int
	switch {
	case h.Area >= 3000:
		sizeScore = 5
	case h.Area >= 2000:
		sizeScore = 4
	case h.Area >= 1500:
		sizeScore = 3
	case h.Area >= 1000:
		sizeScore = 2
	default:
		sizeScore = 1
	}

	var bedroomScore int
	switch {
	case h.Bedrooms >= 5:
		bedroomScore = 5
	case h.Bedrooms >= 4:
		bedroomScore = 4
	case h.Bedrooms >= 3:
		bedroomScore = 3
	case h.Bedrooms >= 2:
		bedroomScore = 2
	default:
		bedroomScore = 1
	}

	avg := float64(ageScore+sizeScore+bedroomScore) / 3.0

	switch {
	case avg >= 4.5:
		h.Quality = QualityExcellent
	case avg >= 3.5:
		h.Quality = QualityGood
	case avg >= 2.5:
		h.Quality = QualityAverage
	case avg >= 1.5:
		h.Quality = QualityFair
	default:
		h.Quality = QualityPoor
	}
}

// MarkSold flags the house as no longer available. Callers are expected to
// check Available before selecting a house.
func (h *House) MarkSold() {
	h.Available = false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
