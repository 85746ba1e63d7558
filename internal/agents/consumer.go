// Package agents provides the consumer data model, the savings recurrence,
// and the segment-conditioned purchase policy.
package agents

import (
	"math"

	"github.com/tomowen/estatesim/internal/housing"
)

// ConsumerID is a unique identifier for a consumer.
type ConsumerID uint64

// Segment determines which houses a consumer will consider.
type Segment uint8

const (
	SegmentFancy     Segment = iota // No price sensitivity — considers everything available
	SegmentOptimizer                // Price per square foot must beat monthly income
	SegmentAverage                  // Only houses below the market mean price
)

// NumSegments is the total number of consumer segments.
const NumSegments = 3

// String returns the segment label.
func (s Segment) String() string {
	switch s {
	case SegmentFancy:
		return "FANCY"
	case SegmentOptimizer:
		return "OPTIMIZER"
	case SegmentAverage:
		return "AVERAGE"
	default:
		return "UNKNOWN"
	}
}

// Consumer is a buyer agent. It accumulates savings over time and attempts
// a single purchase during the market-clearing pass. The market exclusively
// owns all houses; House here is a non-owning reference, and the house's
// Available flag is the single source of truth for the sale.
type Consumer struct {
	ID           ConsumerID `json:"id"`
	AnnualIncome float64    `json:"annual_income"`
	Children     int        `json:"children"`
	Segment      Segment    `json:"segment"`

	Savings         float64 `json:"savings"`
	SavingRate      float64 `json:"saving_rate"`       // Fraction of income saved each year, 0..1
	InterestRate    float64 `json:"interest_rate"`     // Annual interest on savings
	DownPaymentRate float64 `json:"down_payment_rate"` // Fraction of price due at purchase

	House *housing.House `json:"house,omitempty"`
}

// AccumulateSavings advances the savings recurrence one step per year:
//
//	savings = (savings + income*savingRate) * (1 + interestRate)
//
// The result is rounded to 2 decimals once, after all years. Rounding per
// iteration would compound differently and must not be used.
func (c *Consumer) AccumulateSavings(years int) {
	for i := 0; i < years; i++ {
		c.Savings = (c.Savings + c.AnnualIncome*c.SavingRate) * (1 + c.InterestRate)
	}
	c.Savings = math.Round(c.Savings*100) / 100
}

// AttemptPurchase tries to buy one house from the market. Candidates are
// filtered by segment, then by the bedroom requirement (one room per child
// plus the buyers), then taken first-fit in market order: the first house
// the consumer can put a down payment on wins. Returns true on purchase.
// Failing to buy is an expected outcome.
func (c *Consumer) AttemptPurchase(market *housing.Market) bool {
	for _, h := range market.Houses {
		if !h.Available {
			continue
		}
		if !c.considers(h, market) {
			continue
		}
		if h.Bedrooms < c.Children+1 {
			continue
		}

		downPayment := h.Price * c.DownPaymentRate
		if c.Savings >= downPayment {
			c.House = h
			c.Savings -= downPayment
			h.MarkSold()
			return true
		}
	}
	return false
}

// considers applies the segment's candidate filter to a single house.
func (c *Consumer) considers(h *housing.House, market *housing.Market) bool {
	switch c.Segment {
	case SegmentFancy:
		return true
	case SegmentOptimizer:
		// Zero-area houses cannot be evaluated on price per square foot.
		if h.Area <= 0 {
			return false
		}
		monthlyIncome := c.AnnualIncome / 12
		return h.Price/h.Area < monthlyIncome
	case SegmentAverage:
		// Mean over all houses, recomputed at decision time.
		return h.Price < market.AveragePrice()
	default:
		// Unknown segment falls back to considering everything available.
		return true
	}
}
