package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ProfitPulse/internal/metrics"
	"ProfitPulse/internal/model"
	"ProfitPulse/internal/publisher"
)

// SummaryFetcher is the slice of the REST client the scheduler consumes.
// Either method returns a nil summary when the server was unreachable.
type SummaryFetcher interface {
	Profit() (*model.ProfitSummary, error)
	Daily(days int) (*model.DailyResult, error)
}

// ErrNoData marks a cycle where either fetch yielded no usable data. The
// publish step is skipped; the loop sleeps and retries next cycle.
var ErrNoData = errors.New("scheduler: no data this cycle")

// Scheduler runs the poll loop: fetch both summaries, compose the report,
// hand it to every enabled publisher, sleep, repeat. Cycles are strictly
// sequential.
type Scheduler struct {
	fetcher         SummaryFetcher
	publishers      []publisher.Publisher
	interval        time.Duration
	startingCapital float64
	positionSize    float64
	logger          zerolog.Logger
}

// New creates a Scheduler polling at the given interval.
func New(fetcher SummaryFetcher, pubs []publisher.Publisher, interval time.Duration, startingCapital, positionSize float64) *Scheduler {
	return &Scheduler{
		fetcher:         fetcher,
		publishers:      pubs,
		interval:        interval,
		startingCapital: startingCapital,
		positionSize:    positionSize,
		logger:          log.With().Str("module", "scheduler").Logger(),
	}
}

// Run executes poll cycles at the fixed interval until ctx is cancelled.
// The first cycle runs immediately; cancellation mid-sleep returns without
// completing the wait.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		s.RunCycle()
		s.logger.Info().Dur("sleep", s.interval).Msg("sleeping until next cycle")
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("poll loop stopped")
			return
		case <-time.After(s.interval):
		}
	}
}

// RunCron schedules cycles on a cron spec (seconds field enabled) instead of
// the fixed interval. SkipIfStillRunning keeps cycles sequential. Blocks
// until ctx is cancelled.
func (s *Scheduler) RunCron(ctx context.Context, spec string) error {
	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(&s.logger))))
	if _, err := c.AddFunc(spec, s.RunCycle); err != nil {
		return fmt.Errorf("register poll task: %w", err)
	}
	c.Start()
	s.logger.Info().Str("cron", spec).Msg("cron poll started")
	<-ctx.Done()
	c.Stop()
	s.logger.Info().Msg("cron poll stopped")
	return nil
}

// RunCycle executes one fetch/compute/publish pass. Every error and panic is
// contained here: whatever happens inside a cycle, the loop proceeds to the
// next scheduled run.
func (s *Scheduler) RunCycle() {
	if err := s.cycle(); err != nil {
		if errors.Is(err, ErrNoData) {
			s.logger.Warn().Msg("no data this cycle, skipping publish")
		} else {
			s.logger.Error().Err(err).Msg("cycle failed, skipping run")
		}
	}
}

func (s *Scheduler) cycle() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cycle panic: %v", r)
		}
	}()

	profit, err := s.fetcher.Profit()
	if err != nil {
		return fmt.Errorf("fetch profit: %w", err)
	}
	daily, err := s.fetcher.Daily(0)
	if err != nil {
		return fmt.Errorf("fetch daily: %w", err)
	}
	// Nothing is published from a partially-failed cycle.
	if profit == nil || daily.Latest() == nil {
		return ErrNoData
	}

	rep, err := metrics.ComposeReport(profit, daily.Latest(), s.startingCapital, s.positionSize)
	if err != nil {
		return fmt.Errorf("compose report: %w", err)
	}
	s.logger.Info().Str("day", rep.Day).Msg("report composed")

	for _, p := range s.publishers {
		if perr := p.Publish(rep); perr != nil {
			s.logger.Error().Err(perr).Str("publisher", p.Name()).Msg("publish failed")
		}
	}
	return nil
}
