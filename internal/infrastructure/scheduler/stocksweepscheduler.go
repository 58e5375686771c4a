// Package scheduler runs periodic background checks.
package scheduler

import (
	"context"
	"sync"
	"time"

	"art/internal/shared/goroutine"
	"art/internal/shared/logger"
)

// StockSweeper is satisfied by *notification.Handler.
type StockSweeper interface {
	SweepLowStock(ctx context.Context) error
}

// StockSweepScheduler runs a low stock sweep on start and then every interval.
type StockSweepScheduler struct {
	sweeper  StockSweeper
	interval time.Duration
	logger   logger.Interface

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

func NewStockSweepScheduler(sweeper StockSweeper, interval time.Duration, logger logger.Interface) *StockSweepScheduler {
	return &StockSweepScheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the loop in the background and returns immediately.
func (s *StockSweepScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting stock sweep scheduler", "interval", s.interval)
	goroutine.SafeGo(s.logger, "stock-sweep-scheduler", func() {
		defer close(s.done)
		s.run(ctx)
	})
}

func (s *StockSweepScheduler) run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("stock sweep scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("stock sweep scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop ends the loop and waits for a running sweep to finish. Only call it
// after Start.
func (s *StockSweepScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	<-s.done
}

func (s *StockSweepScheduler) sweep(ctx context.Context) {
	startTime := time.Now()
	s.logger.Debugw("stock sweep started")

	if err := s.sweeper.SweepLowStock(ctx); err != nil {
		s.logger.Errorw("stock sweep failed", "error", err)
		return
	}

	s.logger.Debugw("stock sweep completed", "duration", time.Since(startTime))
}
