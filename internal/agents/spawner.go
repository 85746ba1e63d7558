// Consumer spawning — creates the buyer population with incomes drawn from
// a bounded normal distribution and uniformly assigned demographics.
package agents

import (
	"fmt"
	"math/rand"
)

// maxIncomeDraws bounds rejection sampling per consumer. Exhausting it
// means the [minimum, maximum] interval is effectively unreachable from the
// configured distribution, which is a configuration error rather than a
// reason to loop forever.
const maxIncomeDraws = 10000

// IncomeStatistics describes the annual income distribution. Incomes are
// drawn from Normal(Average, StdDev) and rejected until they land inside
// [Minimum, Maximum].
type IncomeStatistics struct {
	Minimum float64 `yaml:"minimum"`
	Average float64 `yaml:"average"`
	StdDev  float64 `yaml:"std_dev"`
	Maximum float64 `yaml:"maximum"`
}

// ChildrenRange bounds the uniformly drawn children count, inclusive.
type ChildrenRange struct {
	Minimum int `yaml:"minimum"`
	Maximum int `yaml:"maximum"`
}

// FinancialRates holds the per-consumer financial parameters.
type FinancialRates struct {
	SavingRate      float64 `yaml:"saving_rate"`
	InterestRate    float64 `yaml:"interest_rate"`
	DownPaymentRate float64 `yaml:"down_payment_rate"`
}

// Spawner creates consumers for the simulation.
type Spawner struct {
	rng    *rand.Rand
	nextID ConsumerID
}

// NewSpawner creates a consumer spawner with the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
}

// SpawnPopulation creates count consumers with sequential IDs starting at 1
// in generation order. Returns a configuration error when the income bounds
// are degenerate or the sampling interval is unreachable.
func (s *Spawner) SpawnPopulation(count int, income IncomeStatistics, children ChildrenRange, rates FinancialRates) ([]*Consumer, error) {
	if income.Minimum > income.Maximum {
		return nil, fmt.Errorf("income bounds: minimum %.2f exceeds maximum %.2f", income.Minimum, income.Maximum)
	}
	if children.Minimum > children.Maximum {
		return nil, fmt.Errorf("children range: minimum %d exceeds maximum %d", children.Minimum, children.Maximum)
	}

	consumers := make([]*Consumer, 0, count)
	for i := 0; i < count; i++ {
		c, err := s.spawnOne(income, children, rates)
		if err != nil {
			return nil, err
		}
		consumers = append(consumers, c)
	}
	return consumers, nil
}

func (s *Spawner) spawnOne(income IncomeStatistics, children ChildrenRange, rates FinancialRates) (*Consumer, error) {
	annualIncome, err := s.drawIncome(income)
	if err != nil {
		return nil, err
	}

	id := s.nextID
	s.nextID++

	return &Consumer{
		ID:              id,
		AnnualIncome:    annualIncome,
		Children:        children.Minimum + s.rng.Intn(children.Maximum-children.Minimum+1),
		Segment:         Segment(s.rng.Intn(NumSegments)),
		Savings:         0,
		SavingRate:      rates.SavingRate,
		InterestRate:    rates.InterestRate,
		DownPaymentRate: rates.DownPaymentRate,
	}, nil
}

// drawIncome rejection-samples the normal distribution until a draw lands
// inside the configured bounds.
func (s *Spawner) drawIncome(income IncomeStatistics) (float64, error) {
	for i := 0; i < maxIncomeDraws; i++ {
		draw := income.Average + s.rng.NormFloat64()*income.StdDev
		if income.Minimum <= draw && draw <= income.Maximum {
			return draw, nil
		}
	}
	return 0, fmt.Errorf("income sampling: no draw from N(%.2f, %.2f) landed in [%.2f, %.2f] after %d attempts",
		income.Average, income.StdDev, income.Minimum, income.Maximum, maxIncomeDraws)
}
