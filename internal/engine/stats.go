package engine

// SimStats is an aggregate snapshot of the population and inventory for
// downstream reporting.
type SimStats struct {
	TotalConsumers  int     `json:"total_consumers"`
	Owners          int     `json:"owners"`
	TotalHouses     int     `json:"total_houses"`
	AvailableHouses int     `json:"available_houses"`
	TotalSavings    float64 `json:"total_savings"`
	MeanSavings     float64 `json:"mean_savings"`
	MeanHousePrice  float64 `json:"mean_house_price"`
}

// Stats computes the current aggregate snapshot. Valid at any stage; fields
// for collections not yet built are zero.
func (s *Simulation) Stats() SimStats {
	stats := SimStats{}

	for _, c := range s.Consumers {
		stats.TotalConsumers++
		stats.TotalSavings += c.Savings
		if c.House != nil {
			stats.Owners++
		}
	}
	if stats.TotalConsumers > 0 {
		stats.MeanSavings = stats.TotalSavings / float64(stats.TotalConsumers)
	}

	if s.Market != nil {
		stats.TotalHouses = len(s.Market.Houses)
		stats.AvailableHouses = s.Market.AvailableCount()
		stats.MeanHousePrice = s.Market.AveragePrice()
	}

	return stats
}
