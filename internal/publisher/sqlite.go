package publisher

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"ProfitPulse/internal/model"
)

// SQLitePublisher appends one row per report to an append-only trades table.
// Rows are never updated or deleted.
type SQLitePublisher struct {
	db     *sql.DB
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewSQLitePublisher opens (or creates) the history database and creates the
// trades table if it does not exist. Schema setup is idempotent.
func NewSQLitePublisher(dbPath string) (*SQLitePublisher, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	p := &SQLitePublisher{
		db:     db,
		logger: log.With().Str("module", "sqlite").Logger(),
	}
	if err := p.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	p.logger.Info().Str("path", dbPath).Msg("history store opened")
	return p, nil
}

func (p *SQLitePublisher) migrate() error {
	_, err := p.db.Exec(`CREATE TABLE IF NOT EXISTS trades (
		timestamp                      NUMERIC,
		day                            TEXT,
		closed_profit_today            NUMERIC,
		trades_today                   NUMERIC,
		closed_profit_percentage_total NUMERIC,
		open_profit_percentage_total   NUMERIC,
		position_size                  NUMERIC,
		best_pair                      TEXT,
		best_pair_profit_percentage    NUMERIC,
		all_trades                     NUMERIC,
		closed_trades                  NUMERIC,
		last_action                    TEXT,
		average_duration               TEXT
	)`)
	return err
}

func (p *SQLitePublisher) Name() string { return "sqlite" }

// Publish appends one row with the capture timestamp, the day label, and
// every DerivedReport field.
func (p *SQLitePublisher) Publish(rep *model.DerivedReport) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := p.db.Exec(`INSERT INTO trades
		(timestamp, day, closed_profit_today, trades_today,
		 closed_profit_percentage_total, open_profit_percentage_total,
		 position_size, best_pair, best_pair_profit_percentage,
		 all_trades, closed_trades, last_action, average_duration)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rep.Day, rep.ClosedProfitToday, rep.TradesToday,
		rep.ClosedProfitPctTotal, rep.OpenProfitPctTotal,
		rep.PositionSizePct, rep.BestPair, rep.BestPairProfitPct,
		rep.AllTrades, rep.ClosedTrades, rep.LastAction, rep.AvgDuration,
	)
	return err
}

func (p *SQLitePublisher) Close() error {
	p.logger.Info().Msg("closing history store")
	return p.db.Close()
}
