// Simulation ties together the house inventory and the consumer population
// and drives them through one market-clearing run.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/tomowen/estatesim/internal/agents"
	"github.com/tomowen/estatesim/internal/housing"
)

// Stage tracks how far the simulation pipeline has advanced. Stages are
// strictly ordered; invoking an operation out of order is a hard
// precondition failure, never a silent pass over empty state.
type Stage uint8

const (
	StageConfigured Stage = iota
	StageMarketBuilt
	StagePopulationBuilt
	StageSavingsComputed
	StageCleared
)

// Config holds everything needed to run one simulation.
type Config struct {
	// Records are raw house rows keyed by source column name. Required
	// columns: Id, SalePrice, GrLivArea, BedroomAbvGr, YearBuilt.
	Records []map[string]string

	Consumers int
	Years     int
	Income    agents.IncomeStatistics
	Children  agents.ChildrenRange
	Rates     agents.FinancialRates
	Mechanism Mechanism
	Seed      int64
}

// Simulation orchestrates one market-clearing run. All mutation is
// in-process and strictly sequential: the first-fit purchase policy depends
// on consumers being evaluated one at a time in a fixed order.
type Simulation struct {
	cfg   Config
	stage Stage

	Market    *housing.Market
	Consumers []*agents.Consumer

	spawner *agents.Spawner
	rng     *rand.Rand // Drives the shuffle mechanism
}

// NewSimulation creates a simulation in the configured stage. The seed
// deterministically drives both population generation and the random
// clearing mechanism.
func NewSimulation(cfg Config) *Simulation {
	return &Simulation{
		cfg:     cfg,
		stage:   StageConfigured,
		spawner: agents.NewSpawner(cfg.Seed + 1),
		rng:     rand.New(rand.NewSource(cfg.Seed + 2)),
	}
}

// Stage returns the pipeline stage reached so far.
func (s *Simulation) Stage() Stage {
	return s.stage
}

// requiredColumns are the source fields every house record must carry.
var requiredColumns = []string{"Id", "SalePrice", "GrLivArea", "BedroomAbvGr", "YearBuilt"}

// BuildMarket maps each raw record into a house and assembles the market.
// Quality starts unset, houses start available in segment "AVERAGE".
// Columns beyond the required five are ignored. A missing or non-numeric
// required field is a configuration error.
func (s *Simulation) BuildMarket() error {
	if s.stage >= StageMarketBuilt {
		return ErrAlreadyBuilt
	}
	if len(s.cfg.Records) == 0 {
		return fmt.Errorf("%w: no house records configured", ErrEmptyInventory)
	}

	houses := make([]*housing.House, 0, len(s.cfg.Records))
	for i, rec := range s.cfg.Records {
		h, err := houseFromRecord(rec)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		houses = append(houses, h)
	}

	market, err := housing.NewMarket(houses)
	if err != nil {
		return err
	}

	s.Market = market
	s.stage = StageMarketBuilt
	slog.Info("housing market built", "houses", len(houses))
	return nil
}

func houseFromRecord(rec map[string]string) (*housing.House, error) {
	for _, col := range requiredColumns {
		if _, ok := rec[col]; !ok {
			return nil, fmt.Errorf("missing required field %q", col)
		}
	}

	id, err := strconv.Atoi(rec["Id"])
	if err != nil {
		return nil, fmt.Errorf("field Id: %w", err)
	}
	price, err := strconv.ParseFloat(rec["SalePrice"], 64)
	if err != nil {
		return nil, fmt.Errorf("field SalePrice: %w", err)
	}
	area, err := strconv.ParseFloat(rec["GrLivArea"], 64)
	if err != nil {
		return nil, fmt.Errorf("field GrLivArea: %w", err)
	}
	bedrooms, err := strconv.Atoi(rec["BedroomAbvGr"])
	if err != nil {
		return nil, fmt.Errorf("field BedroomAbvGr: %w", err)
	}
	yearBuilt, err := strconv.Atoi(rec["YearBuilt"])
	if err != nil {
		return nil, fmt.Errorf("field YearBuilt: %w", err)
	}

	return &housing.House{
		ID:        id,
		Price:     price,
		Area:      area,
		Bedrooms:  bedrooms,
		YearBuilt: yearBuilt,
		Available: true,
		Segment:   "AVERAGE",
	}, nil
}

// BuildPopulation generates the consumer population. Requires the market to
// be built first so the pipeline stays in order.
func (s *Simulation) BuildPopulation() error {
	if s.stage < StageMarketBuilt {
		return ErrMarketNotBuilt
	}
	if s.stage >= StagePopulationBuilt {
		return ErrAlreadyBuilt
	}
	if s.cfg.Consumers <= 0 {
		return fmt.Errorf("%w: consumer count %d", ErrEmptyPopulation, s.cfg.Consumers)
	}

	consumers, err := s.spawner.SpawnPopulation(s.cfg.Consumers, s.cfg.Income, s.cfg.Children, s.cfg.Rates)
	if err != nil {
		return err
	}

	s.Consumers = consumers
	s.stage = StagePopulationBuilt
	slog.Info("population built", "consumers", len(consumers))
	return nil
}

// AccumulateSavings advances every consumer's savings independently over
// the configured horizon. Order-independent — no cross-consumer interaction.
func (s *Simulation) AccumulateSavings() error {
	if s.stage < StagePopulationBuilt {
		return ErrPopulationNotBuilt
	}
	if s.stage >= StageSavingsComputed {
		return ErrAlreadyBuilt
	}

	for _, c := range s.Consumers {
		c.AccumulateSavings(s.cfg.Years)
	}

	s.stage = StageSavingsComputed
	slog.Info("savings accumulated", "years", s.cfg.Years)
	return nil
}

// ClearMarket orders the population per the configured mechanism and runs
// one sequential purchase pass over the shared market. Not re-entrant:
// a second clearing would compound state rather than reset it.
func (s *Simulation) ClearMarket() error {
	if s.stage >= StageCleared {
		return ErrAlreadyCleared
	}
	if s.stage < StageSavingsComputed {
		return ErrSavingsNotComputed
	}

	s.orderConsumers()

	bought := 0
	for _, c := range s.Consumers {
		if c.AttemptPurchase(s.Market) {
			bought++
		}
	}

	s.stage = StageCleared
	slog.Info("market cleared",
		"mechanism", s.cfg.Mechanism,
		"purchases", bought,
		"unsold", s.Market.AvailableCount(),
	)
	return nil
}

// OwnershipRate returns the fraction of consumers holding a house.
// Errors on an empty population rather than silently returning 0.
func (s *Simulation) OwnershipRate() (float64, error) {
	if s.stage < StagePopulationBuilt {
		return 0, ErrPopulationNotBuilt
	}
	if len(s.Consumers) == 0 {
		return 0, ErrEmptyPopulation
	}

	owners := 0
	for _, c := range s.Consumers {
		if c.House != nil {
			owners++
		}
	}
	return float64(owners) / float64(len(s.Consumers)), nil
}

// AvailabilityRate returns the fraction of houses still unsold.
// Errors on an empty inventory rather than silently returning 0.
func (s *Simulation) AvailabilityRate() (float64, error) {
	if s.stage < StageMarketBuilt {
		return 0, ErrMarketNotBuilt
	}
	if len(s.Market.Houses) == 0 {
		return 0, ErrEmptyInventory
	}
	return float64(s.Market.AvailableCount()) / float64(len(s.Market.Houses)), nil
}

// Run executes the full pipeline in order.
func (s *Simulation) Run() error {
	if err := s.BuildMarket(); err != nil {
		return fmt.Errorf("build market: %w", err)
	}
	if err := s.BuildPopulation(); err != nil {
		return fmt.Errorf("build population: %w", err)
	}
	if err := s.AccumulateSavings(); err != nil {
		return fmt.Errorf("accumulate savings: %w", err)
	}
	if err := s.ClearMarket(); err != nil {
		return fmt.Errorf("clear market: %w", err)
	}
	return nil
}
