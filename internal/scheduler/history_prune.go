package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nlfmt/huepick/internal/historystore"
)

// HistoryPruneScheduler periodically re-applies the history cap. The
// insert path already trims, so this only matters when
// max_history_records is lowered while entries sit above the new cap.
type HistoryPruneScheduler struct {
	history  *historystore.Store
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewHistoryPruneScheduler(history *historystore.Store, schedule string) *HistoryPruneScheduler {
	return &HistoryPruneScheduler{
		history:  history,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler. An empty schedule disables it.
func (s *HistoryPruneScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.schedule == "" {
		log.Printf("History prune scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runPrune()
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("History prune scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running prune.
func (s *HistoryPruneScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("History prune scheduler: stopped")
}

// RunNow triggers an immediate prune.
func (s *HistoryPruneScheduler) RunNow() error {
	go s.runPrune()
	return nil
}

// IsRunning returns whether the scheduler is active.
func (s *HistoryPruneScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next prune will occur.
func (s *HistoryPruneScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *HistoryPruneScheduler) runPrune() {
	startTime := time.Now()

	removed, err := s.history.Prune()
	if err != nil {
		log.Printf("History prune: failed: %v", err)
		return
	}

	if removed == 0 {
		log.Printf("History prune: nothing to remove")
		return
	}
	log.Printf("History prune: removed %d entries in %v", removed, time.Since(startTime).Round(time.Millisecond))
}
