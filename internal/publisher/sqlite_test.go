package publisher

import (
	"path/filepath"
	"testing"

	"ProfitPulse/internal/model"
)

func sampleReport() *model.DerivedReport {
	return &model.DerivedReport{
		Day:                  "2024-01-01",
		ClosedProfitToday:    "1.00",
		TradesToday:          2,
		ClosedProfitPctTotal: "10.00",
		OpenProfitPctTotal:   "15.00",
		PositionSizePct:      "4.55",
		BestPair:             "ETH/BTC",
		BestPairProfitPct:    "2.00",
		AllTrades:            10,
		ClosedTrades:         8,
		LastAction:           "2024-01-01",
		AvgDuration:          "2:30",
		Text:                 "report",
	}
}

func TestSQLitePublisher_AppendAndRead(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	p, err := NewSQLitePublisher(dbPath)
	if err != nil {
		t.Fatalf("NewSQLitePublisher: %v", err)
	}
	defer p.Close()

	if err := p.Publish(sampleReport()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := p.Publish(sampleReport()); err != nil {
		t.Fatalf("second Publish: %v", err)
	}

	var count int
	if err := p.db.QueryRow("SELECT COUNT(*) FROM trades").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows, got %d", count)
	}

	var day, bestPair, bestPct string
	var tradesToday int
	err = p.db.QueryRow(
		"SELECT day, best_pair, best_pair_profit_percentage, trades_today FROM trades LIMIT 1",
	).Scan(&day, &bestPair, &bestPct, &tradesToday)
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if day != "2024-01-01" || bestPair != "ETH/BTC" || bestPct != "2.00" || tradesToday != 2 {
		t.Errorf("unexpected row: day=%q best_pair=%q best_pct=%q trades=%d",
			day, bestPair, bestPct, tradesToday)
	}
}

func TestSQLitePublisher_SchemaSetupIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	p1, err := NewSQLitePublisher(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := p1.Publish(sampleReport()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := p1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening runs the migration again; existing rows must survive.
	p2, err := NewSQLitePublisher(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer p2.Close()

	var count int
	if err := p2.db.QueryRow("SELECT COUNT(*) FROM trades").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected the row to survive re-migration, got %d rows", count)
	}
}
