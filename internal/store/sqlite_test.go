package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/salesclean/internal/model"
)

func testRun() Run {
	return Run{
		ID:        uuid.New(),
		Source:    "raw_data/sales.csv",
		StartedAt: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		Records: []model.CleanRecord{
			{ID: 1, Product: "Widget A", PriceUSD: 10.50, PriceINR: 871.50, Country: "US"},
			{ID: 2, Product: "Widget B", PriceUSD: 5.00, PriceINR: 415.00, Country: "UK"},
		},
		Stats: model.RunStats{RowsRead: 3, Duplicates: 1, Written: 2},
	}
}

func TestSQLiteSinkExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.sqlite")

	sink, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite error = %v", err)
	}
	defer sink.Close()

	run := testRun()
	if err := sink.Export(context.Background(), run); err != nil {
		t.Fatalf("Export error = %v", err)
	}

	var count int
	if err := sink.db.QueryRow(
		`SELECT COUNT(*) FROM clean_sales WHERE run_id = ?`, run.ID.String(),
	).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("clean_sales rows = %d, want 2", count)
	}

	var written int
	if err := sink.db.QueryRow(
		`SELECT written FROM runs WHERE run_id = ?`, run.ID.String(),
	).Scan(&written); err != nil {
		t.Fatal(err)
	}
	if written != 2 {
		t.Errorf("runs.written = %d, want 2", written)
	}
}

func TestSQLiteSinkExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.sqlite")

	sink, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite error = %v", err)
	}
	defer sink.Close()

	run := testRun()
	if err := sink.Export(context.Background(), run); err != nil {
		t.Fatalf("Export error = %v", err)
	}

	rows, err := sink.db.Query(
		`SELECT id, product, price_usd, price_inr, country
		 FROM clean_sales WHERE run_id = ? ORDER BY id`, run.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var got []model.CleanRecord
	for rows.Next() {
		var rec model.CleanRecord
		if err := rows.Scan(&rec.ID, &rec.Product, &rec.PriceUSD, &rec.PriceINR, &rec.Country); err != nil {
			t.Fatal(err)
		}
		got = append(got, rec)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}

	if len(got) != len(run.Records) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(run.Records))
	}
	for i := range got {
		if got[i] != run.Records[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], run.Records[i])
		}
	}
}

func TestSQLiteSinkSeparateRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.sqlite")

	sink, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite error = %v", err)
	}
	defer sink.Close()

	// Two runs over the same data coexist under different run ids.
	if err := sink.Export(context.Background(), testRun()); err != nil {
		t.Fatalf("first Export error = %v", err)
	}
	if err := sink.Export(context.Background(), testRun()); err != nil {
		t.Fatalf("second Export error = %v", err)
	}

	var runs int
	if err := sink.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&runs); err != nil {
		t.Fatal(err)
	}
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestExportAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.sqlite")

	sink, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite error = %v", err)
	}
	defer sink.Close()

	if err := ExportAll(context.Background(), testRun(), sink); err != nil {
		t.Fatalf("ExportAll error = %v", err)
	}
}
