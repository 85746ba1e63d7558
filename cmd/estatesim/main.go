// Command estatesim runs the agent-based housing market simulation.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/tomowen/estatesim/internal/config"
	"github.com/tomowen/estatesim/internal/engine"
	"github.com/tomowen/estatesim/internal/housing"
	"github.com/tomowen/estatesim/internal/ingest"
	"github.com/tomowen/estatesim/internal/results"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	scenario := config.DefaultScenario()
	if cfg.ScenarioPath != "" {
		scenario, err = config.LoadScenario(cfg.ScenarioPath)
		if err != nil {
			slog.Error("failed to load scenario", "error", err)
			os.Exit(1)
		}
		slog.Info("scenario loaded", "path", cfg.ScenarioPath)
	}

	// ── House records ────────────────────────────────────────────────
	var records []map[string]string
	if cfg.DatasetPath != "" {
		records, err = ingest.LoadCSV(cfg.DatasetPath)
		if err != nil {
			slog.Error("failed to load dataset", "error", err)
			os.Exit(1)
		}
		if err := ingest.ValidateColumns(records, ingest.RequiredColumns); err != nil {
			slog.Error("dataset validation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("dataset loaded", "path", cfg.DatasetPath, "records", len(records))
	} else {
		slog.Info("no dataset configured, generating synthetic inventory",
			"count", scenario.Synthetic.Count, "seed", cfg.Seed)
		houses := housing.GenerateInventory(housing.GenConfig{
			Count:     scenario.Synthetic.Count,
			Seed:      cfg.Seed,
			BasePrice: scenario.Synthetic.BasePrice,
			BaseArea:  scenario.Synthetic.BaseArea,
		})
		records = recordsFromHouses(houses)
	}

	// ── Simulation ───────────────────────────────────────────────────
	simCfg, err := scenario.SimulationConfig(records, cfg.Seed)
	if err != nil {
		slog.Error("invalid scenario", "error", err)
		os.Exit(1)
	}

	sim := engine.NewSimulation(simCfg)
	if err := sim.Run(); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	ownership, err := sim.OwnershipRate()
	if err != nil {
		slog.Error("ownership rate", "error", err)
		os.Exit(1)
	}
	availability, err := sim.AvailabilityRate()
	if err != nil {
		slog.Error("availability rate", "error", err)
		os.Exit(1)
	}

	stats := sim.Stats()
	slog.Info("simulation complete",
		"mechanism", simCfg.Mechanism,
		"ownership_rate", fmt.Sprintf("%.3f", ownership),
		"availability_rate", fmt.Sprintf("%.3f", availability),
		"owners", stats.Owners,
		"mean_savings", humanize.CommafWithDigits(stats.MeanSavings, 2),
		"mean_house_price", humanize.CommafWithDigits(stats.MeanHousePrice, 2),
	)

	fmt.Printf("\n%d consumers competed for %s houses over %d years.\n",
		stats.TotalConsumers, humanize.Comma(int64(stats.TotalHouses)), simCfg.Years)
	fmt.Printf("Ownership rate: %.1f%%  Availability rate: %.1f%%\n",
		ownership*100, availability*100)

	// ── Results snapshot ─────────────────────────────────────────────
	if cfg.ResultsPath != "" {
		db, err := results.Open(cfg.ResultsPath)
		if err != nil {
			slog.Error("failed to open results db", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		runID, err := db.SaveRun(sim, cfg.Seed, simCfg.Mechanism.String(), simCfg.Years)
		if err != nil {
			slog.Error("failed to save run", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Run saved: %s\n", runID)
	}
}

// recordsFromHouses converts a synthetic inventory back into raw records so
// both input paths feed the simulation identically.
func recordsFromHouses(houses []*housing.House) []map[string]string {
	records := make([]map[string]string, 0, len(houses))
	for _, h := range houses {
		records = append(records, map[string]string{
			"Id":           fmt.Sprintf("%d", h.ID),
			"SalePrice":    fmt.Sprintf("%.2f", h.Price),
			"GrLivArea":    fmt.Sprintf("%.2f", h.Area),
			"BedroomAbvGr": fmt.Sprintf("%d", h.Bedrooms),
			"YearBuilt":    fmt.Sprintf("%d", h.YearBuilt),
		})
	}
	return records
}
