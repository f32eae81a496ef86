package scheduler

import (
	"context"
	"sync"
	"time"

	"wallet-ledger/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs the periodic reconciliation jobs: the accumulation sweep
// and stale order expiry. A per-job mutex guarantees a run never overlaps
// its previous run.
type Scheduler struct {
	cron     *cron.Cron
	sweepSvc ports.SweepService
	log      zerolog.Logger

	sweepMu  sync.Mutex
	expireMu sync.Mutex
}

// New creates a Scheduler.
func New(sweepSvc ports.SweepService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		sweepSvc: sweepSvc,
		log:      log,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(sweepSchedule, expirySchedule string) error {
	if _, err := s.cron.AddFunc(sweepSchedule, s.runSweep); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(expirySchedule, s.runExpiry); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().
		Str("sweep", sweepSchedule).
		Str("expiry", expirySchedule).
		Msg("scheduler started")
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runSweep() {
	if !s.sweepMu.TryLock() {
		s.log.Warn().Msg("previous sweep still running, skipping")
		return
	}
	defer s.sweepMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := s.sweepSvc.SweepAccumulated(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("accumulation sweep failed")
		return
	}
	if report.Scanned > 0 {
		s.log.Info().
			Int("scanned", report.Scanned).
			Int("swept", report.Swept).
			Int("failed", report.Failed).
			Msg("accumulation sweep done")
	}
}

func (s *Scheduler) runExpiry() {
	if !s.expireMu.TryLock() {
		s.log.Warn().Msg("previous expiry run still running, skipping")
		return
	}
	defer s.expireMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.sweepSvc.ExpireStaleOrders(ctx); err != nil {
		s.log.Error().Err(err).Msg("stale order expiry failed")
	}
}
