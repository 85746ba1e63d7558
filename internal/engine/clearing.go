// Market-clearing mechanisms — the ordering policy applied to the consumer
// population before the sequential purchase pass.
package engine

import (
	"fmt"
	"sort"
)

// Mechanism selects how consumers are ordered before clearing. Ordering is
// the single fairness decision in the model: income-descending hands scarce
// inventory to the wealthiest agents first.
type Mechanism uint8

const (
	IncomeDescending Mechanism = iota
	IncomeAscending
	RandomOrder
)

// String returns the mechanism label.
func (m Mechanism) String() string {
	switch m {
	case IncomeDescending:
		return "income_descending"
	case IncomeAscending:
		return "income_ascending"
	case RandomOrder:
		return "random"
	default:
		return "unknown"
	}
}

// ParseMechanism converts a config label into a Mechanism.
func ParseMechanism(s string) (Mechanism, error) {
	switch s {
	case "income_descending":
		return IncomeDescending, nil
	case "income_ascending":
		return IncomeAscending, nil
	case "random":
		return RandomOrder, nil
	default:
		return 0, fmt.Errorf("unknown clearing mechanism %q", s)
	}
}

// orderConsumers applies the configured mechanism to the population in
// place. Sorts are stable so equal incomes keep generation order.
func (s *Simulation) orderConsumers() {
	switch s.cfg.Mechanism {
	case IncomeDescending:
		sort.SliceStable(s.Consumers, func(i, j int) bool {
			return s.Consumers[i].AnnualIncome > s.Consumers[j].AnnualIncome
		})
	case IncomeAscending:
		sort.SliceStable(s.Consumers, func(i, j int) bool {
			return s.Consumers[i].AnnualIncome < s.Consumers[j].AnnualIncome
		})
	case RandomOrder:
		s.rng.Shuffle(len(s.Consumers), func(i, j int) {
			s.Consumers[i], s.Consumers[j] = s.Consumers[j], s.Consumers[i]
		})
	}
}
