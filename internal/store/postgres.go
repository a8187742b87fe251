package store

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/salesclean/internal/config"
)

// PostgresSink exports cleaned records to the warehouse database.
type PostgresSink struct {
	pool *pgxpool.Pool
}

// BuildConnString builds a PostgreSQL connection string from config.
func BuildConnString(cfg config.DBConfig) string {
	// URL-encode password to handle special characters
	escapedPassword := url.QueryEscape(cfg.Password)

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		escapedPassword,
		cfg.Host,
		cfg.Port,
		cfg.Name,
		sslMode,
	)
}

// ConnectPostgres creates the warehouse connection pool and verifies it.
func ConnectPostgres(ctx context.Context, cfg config.DBConfig) (*PostgresSink, error) {
	poolCfg, err := pgxpool.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &PostgresSink{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// ensureSchema creates the warehouse tables when they do not exist. The
// unique constraint on (product, price_usd) backs the ON CONFLICT target.
func (s *PostgresSink) ensureSchema(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id      UUID PRIMARY KEY,
			source      TEXT NOT NULL,
			started_at  TIMESTAMPTZ NOT NULL,
			rows_read   INTEGER NOT NULL,
			rejected    INTEGER NOT NULL,
			duplicates  INTEGER NOT NULL,
			written     INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS clean_sales (
			run_id     UUID NOT NULL REFERENCES runs(run_id),
			id         BIGINT NOT NULL,
			product    TEXT NOT NULL,
			price_usd  DOUBLE PRECISION NOT NULL,
			price_inr  DOUBLE PRECISION NOT NULL,
			country    TEXT NOT NULL,
			UNIQUE (product, price_usd)
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create warehouse schema: %w", err)
		}
	}
	return nil
}

// Name identifies the sink in logs.
func (s *PostgresSink) Name() string { return "postgres" }

// Export batch-inserts the run's records. Records already present in the
// warehouse on the (product, price_usd) business key are left untouched.
func (s *PostgresSink) Export(ctx context.Context, run Run) error {
	batch := &pgx.Batch{}

	batch.Queue(`
		INSERT INTO runs (run_id, source, started_at, rows_read, rejected, duplicates, written)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, run.ID, run.Source, run.StartedAt,
		run.Stats.RowsRead, run.Stats.Rejected, run.Stats.Duplicates, run.Stats.Written)

	for _, rec := range run.Records {
		batch.Queue(`
			INSERT INTO clean_sales (run_id, id, product, price_usd, price_inr, country)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (product, price_usd) DO NOTHING
		`, run.ID, rec.ID, rec.Product, rec.PriceUSD, rec.PriceINR, rec.Country)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert: %w", err)
		}
	}

	return nil
}

// Close closes the connection pool.
func (s *PostgresSink) Close() error {
	s.pool.Close()
	return nil
}
