package worker

import (
	"context"
	"time"

	"github.com/acadra/gradebook-backend/internal/service"
	"github.com/rs/zerolog"
)

// LeaderboardWorker periodically rebuilds the cached top boards from
// PostgreSQL. Ranking passes refresh the cache themselves; this worker is
// the reconciliation path for refreshes lost to transient Redis failures.
type LeaderboardWorker struct {
	ranking  *service.RankingService
	interval time.Duration
	log      zerolog.Logger
}

// NewLeaderboardWorker creates a new LeaderboardWorker.
func NewLeaderboardWorker(ranking *service.RankingService, interval time.Duration, log zerolog.Logger) *LeaderboardWorker {
	return &LeaderboardWorker{
		ranking:  ranking,
		interval: interval,
		log:      log.With().Str("component", "leaderboard_worker").Logger(),
	}
}

// Start begins the refresh loop. Call in a goroutine; stops when ctx is
// cancelled.
func (w *LeaderboardWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			if err := w.ranking.RefreshLeaderboards(ctx); err != nil && ctx.Err() == nil {
				w.log.Error().Err(err).Msg("Leaderboard refresh failed")
			}
		}
	}
}
