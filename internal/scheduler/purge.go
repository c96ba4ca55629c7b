// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vaultport/vaultport/internal/database"
)

// HistoryPurgeScheduler deletes import history records older than the
// configured retention window on a cron schedule.
type HistoryPurgeScheduler struct {
	history       *database.ImportHistory
	retentionDays int
	schedule      string
	log           *zap.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewHistoryPurgeScheduler(history *database.ImportHistory, retentionDays int, schedule string, log *zap.Logger) *HistoryPurgeScheduler {
	return &HistoryPurgeScheduler{
		history:       history,
		retentionDays: retentionDays,
		schedule:      schedule,
		log:           log,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if a retention window is configured.
func (s *HistoryPurgeScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.retentionDays <= 0 {
		s.log.Info("history purge scheduler disabled, retention not configured")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runPurge()
	})
	if err != nil {
		return fmt.Errorf("invalid purge schedule %q: %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.log.Info("history purge scheduler started",
		zap.String("schedule", s.schedule),
		zap.Int("retention_days", s.retentionDays))

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to
// complete.
func (s *HistoryPurgeScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	s.log.Info("history purge scheduler stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *HistoryPurgeScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *HistoryPurgeScheduler) runPurge() {
	purged, err := s.history.PurgeOlderThan(s.retentionDays)
	if err != nil {
		s.log.Error("history purge failed", zap.Error(err))
		return
	}
	if purged > 0 {
		s.log.Info("purged old import records", zap.Int64("purged", purged))
	}
}
