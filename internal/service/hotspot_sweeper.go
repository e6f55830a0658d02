package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// HotspotMarker moves hotspots out of the active state.
type HotspotMarker interface {
	MarkStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// HotspotSweeper periodically marks hotspots stale when no report has
// refreshed them within the configured window. The detector itself never
// demotes a hotspot; this sweep is the only automatic path out of active,
// and it is optional.
type HotspotSweeper struct {
	hotspots   HotspotMarker
	staleAfter time.Duration
	interval   time.Duration
	logger     *zap.Logger
}

// NewHotspotSweeper creates a HotspotSweeper. staleAfter <= 0 disables the
// sweep: Start then returns immediately and hotspots stay active until
// deactivated externally.
func NewHotspotSweeper(hotspots HotspotMarker, staleAfter time.Duration, logger *zap.Logger) *HotspotSweeper {
	return &HotspotSweeper{
		hotspots:   hotspots,
		staleAfter: staleAfter,
		interval:   time.Hour,
		logger:     logger,
	}
}

// Start runs the sweep loop until ctx is cancelled. Sweep failures are logged
// and the loop continues.
func (s *HotspotSweeper) Start(ctx context.Context) {
	if s.staleAfter <= 0 {
		s.logger.Info("Hotspot staleness sweep disabled")
		return
	}

	s.logger.Info("Hotspot sweeper started",
		zap.Duration("stale_after", s.staleAfter),
		zap.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Hotspot sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *HotspotSweeper) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.staleAfter)

	marked, err := s.hotspots.MarkStale(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to mark stale hotspots", zap.Error(err))
		return
	}

	if marked > 0 {
		s.logger.Info("Marked stale hotspots", zap.Int64("count", marked))
	}
}
