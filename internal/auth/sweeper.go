package auth

import (
	"context"
	"sync"
	"time"

	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/repository"
)

// Sweeper periodically deletes expired sessions.
type Sweeper struct {
	sessions repository.SessionRepository
	now      func() time.Time
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSweeper creates a sweeper over sessions.
func NewSweeper(sessions repository.SessionRepository) *Sweeper {
	return &Sweeper{
		sessions: sessions,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start sweeps immediately and then every interval until Stop.
func (s *Sweeper) Start(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.Sweep(context.Background())

		for {
			select {
			case <-ticker.C:
				s.Sweep(context.Background())
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Sweep deletes the sessions expired at now and returns how many went.
func (s *Sweeper) Sweep(ctx context.Context) int64 {
	n, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		logger.Error("Failed to delete expired sessions", "error", err)
		return 0
	}
	if n > 0 {
		logger.Debug("Deleted expired sessions", "count", n)
	}
	return n
}

// Stop stops the sweeper and waits for the current sweep to finish.
func (s *Sweeper) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
