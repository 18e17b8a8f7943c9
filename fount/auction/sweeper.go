package auction

import (
	"context"
	"log/slog"
	"time"

	"github.com/Fount-Gallery/fount-contracts/fount/logger"
)

// Sweeper periodically settles auctions whose bidding window has closed.
// Settlement is open to any caller, so the sweeper is just a convenience
// caller on a ticker; the engine itself never fires time-based transitions.
type Sweeper struct {
	engine   *Engine
	ticker   *time.Ticker
	timeout  time.Duration
	shutdown chan struct{}
}

func NewSweeper(engine *Engine, interval time.Duration) *Sweeper {
	if engine == nil {
		panic("engine cannot be nil")
	}

	return &Sweeper{
		engine:   engine,
		ticker:   time.NewTicker(interval),
		timeout:  30 * time.Second,
		shutdown: make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) run() {
	defer s.ticker.Stop()

	for {
		select {
		case <-s.ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
			s.sweep(ctx)
			cancel()
		case <-s.shutdown:
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	for _, id := range s.engine.ExpiredAuctions() {
		start := time.Now()
		// Someone may have settled between the snapshot and here; the error
		// is logged and the sweep moves on.
		err := s.engine.SettleAuction(ctx, id)
		logger.LogAuction("settle", id, time.Since(start), err)
	}
}

// Shutdown stops the sweep loop.
func (s *Sweeper) Shutdown() {
	close(s.shutdown)
	slog.Info("Auction sweeper shutdown completed")
}
