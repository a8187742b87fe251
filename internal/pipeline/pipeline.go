package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/salesclean/internal/config"
	"github.com/rickgao/salesclean/internal/convert"
	"github.com/rickgao/salesclean/internal/dedup"
	"github.com/rickgao/salesclean/internal/model"
	"github.com/rickgao/salesclean/internal/normalize"
	"github.com/rickgao/salesclean/internal/reader"
	"github.com/rickgao/salesclean/internal/report"
)

// Pipeline transforms one raw sales file into the clean JSON report.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Result is the outcome of a completed run.
type Result struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Records   []model.CleanRecord
	Rejects   []model.RejectedRow
	Stats     model.RunStats
}

// New creates a Pipeline.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes the full cleaning sequence and writes the report (and the
// rejects side channel under the skip policy).
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}
	skip := p.cfg.Errors.Policy == config.PolicySkip

	p.logger.Info("reading input",
		"run_id", res.RunID,
		"path", p.cfg.Input.Path,
	)

	rows, err := reader.ReadFile(p.cfg.Input.Path)
	if err != nil {
		return nil, err
	}
	res.Stats.RowsRead = len(rows)
	p.logger.Info("input loaded", "rows", len(rows))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	schema := model.DefaultSchema()
	candidates := make([]model.CleanRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := transformRow(row, schema)
		if err != nil {
			if !skip {
				return nil, err
			}
			res.Rejects = append(res.Rejects, model.RejectedRow{
				Line:   row.Line,
				Fields: row.Fields,
				Reason: err.Error(),
			})
			continue
		}
		candidates = append(candidates, rec)
	}
	res.Stats.Rejected = len(res.Rejects)

	res.Records = dedup.Deduplicate(candidates)
	res.Stats.Duplicates = len(candidates) - len(res.Records)
	p.logger.Info("deduplicated",
		"candidates", len(candidates),
		"duplicates", res.Stats.Duplicates,
	)

	conv := convert.New(p.cfg.Convert.USDToINR)
	res.Records = conv.Apply(res.Records)
	res.Stats.Written = len(res.Records)

	if err := report.Write(p.cfg.Output.Path, res.Records, p.cfg.Output.Indent); err != nil {
		return nil, err
	}
	if skip {
		if err := report.WriteRejects(p.cfg.Errors.RejectsPath, res.Rejects); err != nil {
			return nil, err
		}
	}

	p.logger.Info("report written",
		"path", p.cfg.Output.Path,
		"records", res.Stats.Written,
		"rejected", res.Stats.Rejected,
		"duplicates", res.Stats.Duplicates,
		"rate", conv.Rate(),
	)

	return res, nil
}

// transformRow takes one raw row through parse and normalization.
func transformRow(row reader.Row, schema model.Schema) (model.CleanRecord, error) {
	raw, err := reader.ParseRow(row, schema)
	if err != nil {
		return model.CleanRecord{}, err
	}

	id, err := normalize.ParseID(raw.ID, raw.Line)
	if err != nil {
		return model.CleanRecord{}, err
	}

	price, err := normalize.CleanPrice(raw.Price)
	if err != nil {
		var fe *model.FormatError
		if errors.As(err, &fe) {
			fe.Line = raw.Line
		}
		return model.CleanRecord{}, fmt.Errorf("clean price: %w", err)
	}

	return model.CleanRecord{
		ID:       id,
		Product:  normalize.CleanProduct(raw.Product),
		PriceUSD: price,
		Country:  normalize.CleanCountry(raw.Country),
	}, nil
}
