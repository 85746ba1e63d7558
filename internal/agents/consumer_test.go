package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomowen/estatesim/internal/housing"
)

func TestAccumulateSavings(t *testing.T) {
	c := &Consumer{
		AnnualIncome: 80000.0,
		Savings:      20000.0,
		SavingRate:   0.3,
		InterestRate: 0.05,
	}

	c.AccumulateSavings(5)

	// The recurrence rounds once, after all years — per-iteration rounding
	// would compound differently.
	assert.Equal(t, 164771.54, c.Savings)
}

func TestAccumulateSavingsZeroYears(t *testing.T) {
	c := &Consumer{AnnualIncome: 80000.0, Savings: 1234.567, SavingRate: 0.3, InterestRate: 0.05}
	c.AccumulateSavings(0)
	assert.Equal(t, 1234.57, c.Savings)
}

func marketOf(t *testing.T, houses ...*housing.House) *housing.Market {
	t.Helper()
	m, err := housing.NewMarket(houses)
	require.NoError(t, err)
	return m
}

func TestAttemptPurchaseFirstFit(t *testing.T) {
	expensive := &housing.House{ID: 1, Price: 300000, Area: 2000, Bedrooms: 3, Available: true}
	cheap := &housing.House{ID: 2, Price: 100000, Area: 1200, Bedrooms: 3, Available: true}
	m := marketOf(t, expensive, cheap)

	c := &Consumer{ID: 1, AnnualIncome: 90000, Segment: SegmentFancy, Savings: 100000, DownPaymentRate: 0.2}

	require.True(t, c.AttemptPurchase(m))

	// First fit, not best fit: the expensive house comes first in market
	// order and is affordable, so it wins despite the cheaper alternative.
	require.NotNil(t, c.House)
	assert.Equal(t, 1, c.House.ID)
	assert.False(t, expensive.Available)
	assert.True(t, cheap.Available)
	assert.Equal(t, 40000.0, c.Savings)
}

func TestAttemptPurchaseBedroomRequirement(t *testing.T) {
	small := &housing.House{ID: 1, Price: 100000, Area: 1000, Bedrooms: 2, Available: true}
	large := &housing.House{ID: 2, Price: 150000, Area: 1800, Bedrooms: 4, Available: true}
	m := marketOf(t, small, large)

	// Three children need at least four bedrooms.
	c := &Consumer{ID: 1, AnnualIncome: 90000, Children: 3, Segment: SegmentFancy, Savings: 50000, DownPaymentRate: 0.2}

	require.True(t, c.AttemptPurchase(m))
	assert.Equal(t, 2, c.House.ID)
}

func TestAttemptPurchaseOptimizer(t *testing.T) {
	// Monthly income 5000: only houses under 5000/sqft qualify.
	overpriced := &housing.House{ID: 1, Price: 600000, Area: 100, Bedrooms: 3, Available: true}
	zeroArea := &housing.House{ID: 2, Price: 100, Area: 0, Bedrooms: 3, Available: true}
	fair := &housing.House{ID: 3, Price: 200000, Area: 1600, Bedrooms: 3, Available: true}
	m := marketOf(t, overpriced, zeroArea, fair)

	c := &Consumer{ID: 1, AnnualIncome: 60000, Segment: SegmentOptimizer, Savings: 100000, DownPaymentRate: 0.2}

	require.True(t, c.AttemptPurchase(m))
	assert.Equal(t, 3, c.House.ID)
}

func TestAttemptPurchaseAverageSegment(t *testing.T) {
	// Mean price is 300000; the AVERAGE segment only considers houses
	// strictly below it.
	above := &housing.House{ID: 1, Price: 500000, Area: 2500, Bedrooms: 3, Available: true}
	below := &housing.House{ID: 2, Price: 100000, Area: 1200, Bedrooms: 3, Available: true}
	m := marketOf(t, above, below)

	c := &Consumer{ID: 1, AnnualIncome: 80000, Segment: SegmentAverage, Savings: 200000, DownPaymentRate: 0.2}

	require.True(t, c.AttemptPurchase(m))
	assert.Equal(t, 2, c.House.ID)
}

func TestAttemptPurchaseNoCandidate(t *testing.T) {
	h := &housing.House{ID: 1, Price: 500000, Area: 2500, Bedrooms: 2, Available: true}
	m := marketOf(t, h)

	c := &Consumer{ID: 1, AnnualIncome: 80000, Children: 4, Segment: SegmentFancy, Savings: 500000, DownPaymentRate: 0.2}

	// Not an error — failing to buy is an expected outcome.
	assert.False(t, c.AttemptPurchase(m))
	assert.Nil(t, c.House)
	assert.Equal(t, 500000.0, c.Savings)
}

func TestAttemptPurchaseInsufficientSavings(t *testing.T) {
	h := &housing.House{ID: 1, Price: 400000, Area: 2000, Bedrooms: 3, Available: true}
	m := marketOf(t, h)

	c := &Consumer{ID: 1, AnnualIncome: 80000, Segment: SegmentFancy, Savings: 79999.99, DownPaymentRate: 0.2}

	assert.False(t, c.AttemptPurchase(m))
	assert.Nil(t, c.House)
	assert.True(t, h.Available)
}

func TestAttemptPurchaseSkipsSoldHouses(t *testing.T) {
	sold := &housing.House{ID: 1, Price: 100000, Area: 1200, Bedrooms: 3, Available: false}
	open := &housing.House{ID: 2, Price: 120000, Area: 1300, Bedrooms: 3, Available: true}
	m := marketOf(t, sold, open)

	c := &Consumer{ID: 1, AnnualIncome: 80000, Segment: SegmentFancy, Savings: 100000, DownPaymentRate: 0.2}

	require.True(t, c.AttemptPurchase(m))
	assert.Equal(t, 2, c.House.ID)
}

func TestAttemptPurchaseUnknownSegmentFallsBack(t *testing.T) {
	h := &housing.House{ID: 1, Price: 100000, Area: 1200, Bedrooms: 3, Available: true}
	m := marketOf(t, h)

	c := &Consumer{ID: 1, AnnualIncome: 80000, Segment: Segment(99), Savings: 100000, DownPaymentRate: 0.2}

	// Unknown segments must not fail; they consider everything available.
	require.True(t, c.AttemptPurchase(m))
	assert.Equal(t, 1, c.House.ID)
}

func TestSegmentString(t *testing.T) {
	assert.Equal(t, "FANCY", SegmentFancy.String())
	assert.Equal(t, "OPTIMIZER", SegmentOptimizer.String())
	assert.Equal(t, "AVERAGE", SegmentAverage.String())
	assert.Equal(t, "UNKNOWN", Segment(99).String())
}
