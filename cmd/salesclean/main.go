package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickgao/salesclean/internal/config"
	"github.com/rickgao/salesclean/internal/pipeline"
	"github.com/rickgao/salesclean/internal/store"
	"github.com/rickgao/salesclean/internal/version"
)

const defaultConfigPath = "configs/salesclean.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to config file")
	inputPath := flag.String("input", "", "input CSV path (overrides config)")
	outputPath := flag.String("output", "", "output JSON path (overrides config)")
	rate := flag.Float64("rate", 0, "USD to INR rate (overrides config)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting salesclean",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Flag overrides
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	if *rate != 0 {
		cfg.Convert.USDToINR = *rate
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := pipeline.New(cfg, logger).Run(ctx)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	if err := exportSinks(ctx, cfg, res, logger); err != nil {
		logger.Error("sink export failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s created successfully\n", cfg.Output.Path)
}

// loadConfig reads the config file, falling back to defaults when the
// default path does not exist so the tool runs with no setup at all.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if path != defaultConfigPath {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

// exportSinks opens the configured sinks and fans the run out to them.
func exportSinks(ctx context.Context, cfg *config.Config, res *pipeline.Result, logger *slog.Logger) error {
	var sinks []store.Sink

	if cfg.Sinks.SQLite.Enabled() {
		sink, err := store.OpenSQLite(cfg.Sinks.SQLite.Path)
		if err != nil {
			return err
		}
		defer sink.Close()
		sinks = append(sinks, sink)
	}

	if cfg.Sinks.Postgres.Enabled() {
		sink, err := store.ConnectPostgres(ctx, cfg.Sinks.Postgres)
		if err != nil {
			return err
		}
		defer sink.Close()
		sinks = append(sinks, sink)
	}

	if len(sinks) == 0 {
		return nil
	}

	run := store.Run{
		ID:        res.RunID,
		Source:    cfg.Input.Path,
		StartedAt: res.StartedAt,
		Records:   res.Records,
		Stats:     res.Stats,
	}

	if err := store.ExportAll(ctx, run, sinks...); err != nil {
		return err
	}

	for _, s := range sinks {
		logger.Info("exported run", "sink", s.Name(), "records", len(run.Records))
	}
	return nil
}
