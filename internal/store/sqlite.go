package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteSink archives cleaned records in a local SQLite database.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the archive database and ensures its schema.
func OpenSQLite(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id      TEXT PRIMARY KEY,
			source      TEXT NOT NULL,
			started_at  TEXT NOT NULL,
			rows_read   INTEGER NOT NULL,
			rejected    INTEGER NOT NULL,
			duplicates  INTEGER NOT NULL,
			written     INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS clean_sales (
			run_id     TEXT NOT NULL REFERENCES runs(run_id),
			id         INTEGER NOT NULL,
			product    TEXT NOT NULL,
			price_usd  REAL NOT NULL,
			price_inr  REAL NOT NULL,
			country    TEXT NOT NULL,
			PRIMARY KEY (run_id, product, price_usd)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_clean_sales_product ON clean_sales(product)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create sqlite schema: %w", err)
		}
	}

	return &SQLiteSink{db: db}, nil
}

// Name identifies the sink in logs.
func (s *SQLiteSink) Name() string { return "sqlite" }

// Export writes the run's provenance row and records in one transaction.
func (s *SQLiteSink) Export(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin sqlite tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, source, started_at, rows_read, rejected, duplicates, written)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.Source, run.StartedAt.UTC().Format("2006-01-02T15:04:05Z"),
		run.Stats.RowsRead, run.Stats.Rejected, run.Stats.Duplicates, run.Stats.Written,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO clean_sales (run_id, id, product, price_usd, price_inr, country)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range run.Records {
		if _, err := stmt.ExecContext(ctx,
			run.ID.String(), rec.ID, rec.Product, rec.PriceUSD, rec.PriceINR, rec.Country,
		); err != nil {
			return fmt.Errorf("insert record id=%d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sqlite tx: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
