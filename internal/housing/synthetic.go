// Synthetic inventory generation using layered simplex noise.
// Produces a deterministic house inventory for demo runs and scenario tests
// when no CSV dataset is supplied.
package housing

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds synthetic inventory generation parameters.
type GenConfig struct {
	Count     int     // Number of houses to generate
	Seed      int64   // Random seed (0 = random)
	BasePrice float64 // Price of an average house in an average location
	BaseArea  float64 // Area of an average house, square feet
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Count:     200,
		Seed:      0,
		BasePrice: 180000,
		BaseArea:  1500,
	}
}

// GenerateInventory creates a procedural house inventory. Houses are laid
// out on a neighborhood grid; two independent noise layers drive land
// desirability and lot generosity, which in turn shape price, area,
// bedrooms, build year, and segment label. Deterministic from the seed.
func GenerateInventory(cfg GenConfig) []*House {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Two noise generators for independent layers.
	desireNoise := opensimplex.NewNormalized(seed)
	lotNoise := opensimplex.NewNormalized(seed + 1)
	rng := rand.New(rand.NewSource(seed + 2))

	// Grid wide enough to hold Count lots, 16 per street.
	const lotsPerStreet = 16

	houses := make([]*House, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		x := float64(i % lotsPerStreet)
		y := float64(i / lotsPerStreet)

		desire := octaveNoise(desireNoise, x, y, 3, 0.15, 0.5)
		lot := octaveNoise(lotNoise, x, y, 2, 0.2, 0.5)

		// Area tracks lot generosity with some per-house jitter.
		area := cfg.BaseArea * (0.6 + lot*1.4) * (0.9 + rng.Float64()*0.2)

		// Bedrooms follow area.
		bedrooms := 1 + int(area/700)
		if bedrooms > 6 {
			bedrooms = 6
		}

		// Desirable neighborhoods are pricier and more recently built.
		price := cfg.BasePrice * (0.5 + desire*1.6) * (0.5 + area/cfg.BaseArea*0.5)
		yearBuilt := 1950 + int(desire*60) + rng.Intn(15)
		if yearBuilt > QualityReferenceYear {
			yearBuilt = QualityReferenceYear
		}

		segment := "AVERAGE"
		if desire > 0.75 {
			segment = "FANCY"
		} else if desire < 0.3 {
			segment = "BUDGET"
		}

		houses = append(houses, &House{
			ID:        i + 1,
			Price:     round2(price),
			Area:      round2(area),
			Bedrooms:  bedrooms,
			YearBuilt: yearBuilt,
			Available: true,
			Segment:   segment,
		})
	}

	return houses
}

// octaveNoise samples multi-octave noise for natural-looking variation.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0
	freq := frequency

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*freq, y*freq) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		freq *= 2
	}

	return total / maxValue
}
