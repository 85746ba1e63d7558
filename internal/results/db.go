// Package results provides SQLite-based storage of finished simulation
// runs for downstream reporting. The simulation core itself never touches
// persistence — snapshots are written only after a run completes.
package results

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tomowen/estatesim/internal/engine"
)

// DB wraps a SQLite connection for run snapshots.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		mechanism TEXT NOT NULL,
		years INTEGER NOT NULL,
		ownership_rate REAL NOT NULL,
		availability_rate REAL NOT NULL,
		total_consumers INTEGER NOT NULL,
		total_houses INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS houses (
		run_id TEXT NOT NULL,
		id INTEGER NOT NULL,
		price REAL NOT NULL,
		area REAL NOT NULL,
		bedrooms INTEGER NOT NULL,
		year_built INTEGER NOT NULL,
		quality TEXT NOT NULL,
		available INTEGER NOT NULL,
		segment TEXT NOT NULL,
		PRIMARY KEY (run_id, id)
	);

	CREATE TABLE IF NOT EXISTS consumers (
		run_id TEXT NOT NULL,
		id INTEGER NOT NULL,
		annual_income REAL NOT NULL,
		children INTEGER NOT NULL,
		segment TEXT NOT NULL,
		savings REAL NOT NULL,
		house_id INTEGER,
		PRIMARY KEY (run_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_houses_run ON houses(run_id);
	CREATE INDEX IF NOT EXISTS idx_consumers_run ON consumers(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun writes the final state of a cleared simulation and returns the
// generated run ID.
func (db *DB) SaveRun(sim *engine.Simulation, seed int64, mechanism string, years int) (string, error) {
	ownership, err := sim.OwnershipRate()
	if err != nil {
		return "", fmt.Errorf("ownership rate: %w", err)
	}
	availability, err := sim.AvailabilityRate()
	if err != nil {
		return "", fmt.Errorf("availability rate: %w", err)
	}

	runID := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, seed, mechanism, years, ownership_rate, availability_rate, total_consumers, total_houses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), seed, mechanism, years,
		ownership, availability, len(sim.Consumers), len(sim.Market.Houses),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	houseStmt, err := tx.Preparex(`INSERT INTO houses
		(run_id, id, price, area, bedrooms, year_built, quality, available, segment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer houseStmt.Close()

	for _, h := range sim.Market.Houses {
		h.ComputeQuality()
		available := 0
		if h.Available {
			available = 1
		}
		if _, err := houseStmt.Exec(
			runID, h.ID, h.Price, h.Area, h.Bedrooms, h.YearBuilt,
			h.Quality.String(), available, h.Segment,
		); err != nil {
			return "", fmt.Errorf("insert house %d: %w", h.ID, err)
		}
	}

	consumerStmt, err := tx.Preparex(`INSERT INTO consumers
		(run_id, id, annual_income, children, segment, savings, house_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer consumerStmt.Close()

	for _, c := range sim.Consumers {
		var houseID *int
		if c.House != nil {
			houseID = &c.House.ID
		}
		if _, err := consumerStmt.Exec(
			runID, c.ID, c.AnnualIncome, c.Children, c.Segment.String(),
			c.Savings, houseID,
		); err != nil {
			return "", fmt.Errorf("insert consumer %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("run snapshot saved", "run_id", runID,
		"houses", len(sim.Market.Houses), "consumers", len(sim.Consumers))
	return runID, nil
}

// RunSummary is one saved run's headline numbers.
type RunSummary struct {
	ID               string  `db:"id"`
	CreatedAt        string  `db:"created_at"`
	Mechanism        string  `db:"mechanism"`
	OwnershipRate    float64 `db:"ownership_rate"`
	AvailabilityRate float64 `db:"availability_rate"`
}

// RecentRuns returns the most recent N run summaries.
func (db *DB) RecentRuns(limit int) ([]RunSummary, error) {
	var runs []RunSummary
	err := db.conn.Select(&runs,
		`SELECT id, created_at, mechanism, ownership_rate, availability_rate
		 FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	return runs, err
}
