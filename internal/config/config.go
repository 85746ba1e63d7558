// Package config loads runtime configuration from the environment and
// simulation scenarios from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"

	"github.com/tomowen/estatesim/internal/agents"
	"github.com/tomowen/estatesim/internal/engine"
)

// Config holds environment-driven runtime settings.
type Config struct {
	// Path to a housing CSV dataset. Empty means a synthetic inventory
	// is generated instead.
	DatasetPath string `env:"ESTATESIM_DATASET"`

	// Path to a YAML scenario file. Empty means the default scenario.
	ScenarioPath string `env:"ESTATESIM_SCENARIO"`

	// Path to a SQLite database for run snapshots. Empty disables saving.
	ResultsPath string `env:"ESTATESIM_RESULTS_DB"`

	Seed int64 `env:"ESTATESIM_SEED" envDefault:"42"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Scenario describes one simulation setup.
type Scenario struct {
	Consumers int                     `yaml:"consumers"`
	Years     int                     `yaml:"years"`
	Income    agents.IncomeStatistics `yaml:"income"`
	Children  agents.ChildrenRange    `yaml:"children"`
	Rates     agents.FinancialRates   `yaml:"rates"`
	Mechanism string                  `yaml:"mechanism"`

	// Synthetic inventory parameters, used when no dataset is configured.
	Synthetic struct {
		Count     int     `yaml:"count"`
		BasePrice float64 `yaml:"base_price"`
		BaseArea  float64 `yaml:"base_area"`
	} `yaml:"synthetic"`
}

// DefaultScenario returns a modest mid-income market scenario.
func DefaultScenario() Scenario {
	s := Scenario{
		Consumers: 200,
		Years:     5,
		Income: agents.IncomeStatistics{
			Minimum: 30000,
			Average: 65000,
			StdDev:  20000,
			Maximum: 160000,
		},
		Children:  agents.ChildrenRange{Minimum: 0, Maximum: 5},
		Rates:     agents.FinancialRates{SavingRate: 0.3, InterestRate: 0.05, DownPaymentRate: 0.2},
		Mechanism: "income_descending",
	}
	s.Synthetic.Count = 150
	s.Synthetic.BasePrice = 180000
	s.Synthetic.BaseArea = 1500
	return s
}

// LoadScenario reads a scenario from a YAML file, filling unset fields from
// the default scenario.
func LoadScenario(path string) (Scenario, error) {
	s := DefaultScenario()

	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return s, nil
}

// SimulationConfig assembles an engine config from the scenario, the loaded
// house records, and the run seed.
func (s Scenario) SimulationConfig(records []map[string]string, seed int64) (engine.Config, error) {
	mechanism, err := engine.ParseMechanism(s.Mechanism)
	if err != nil {
		return engine.Config{}, err
	}

	return engine.Config{
		Records:   records,
		Consumers: s.Consumers,
		Years:     s.Years,
		Income:    s.Income,
		Children:  s.Children,
		Rates:     s.Rates,
		Mechanism: mechanism,
		Seed:      seed,
	}, nil
}
