package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/common/redisutil"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// StatsStore supplies anonymized aggregate statistics.
type StatsStore interface {
	Stats(ctx context.Context, timeframe, district string) (*models.SurveillanceStats, error)
}

// HotspotReader lists active hotspots.
type HotspotReader interface {
	ActiveHotspots(ctx context.Context) ([]models.Hotspot, error)
}

// StatsService serves dashboard views: aggregate statistics and active
// hotspots. Hotspots are cached in Redis with a short TTL; cache failures
// fall through to the database.
type StatsService struct {
	stats       StatsStore
	hotspots    HotspotReader
	redisClient *redisutil.Client
	cachePrefix string
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewStatsService creates a StatsService. redisClient may be nil; hotspot
// reads then always hit the database.
func NewStatsService(
	stats StatsStore,
	hotspots HotspotReader,
	redisClient *redisutil.Client,
	cachePrefix string,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		stats:       stats,
		hotspots:    hotspots,
		redisClient: redisClient,
		cachePrefix: cachePrefix,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Stats returns the aggregate view for one timeframe (1d, 7d or 30d),
// optionally narrowed to one district (empty means all districts).
// Individual reports are never exposed here.
func (s *StatsService) Stats(ctx context.Context, timeframe, district string) (*models.SurveillanceStats, error) {
	stats, err := s.stats.Stats(ctx, timeframe, district)
	if err != nil {
		return nil, fmt.Errorf("failed to load surveillance stats: %w", err)
	}
	return stats, nil
}

// ActiveHotspots returns the active hotspots, cached for the configured TTL.
func (s *StatsService) ActiveHotspots(ctx context.Context) ([]models.Hotspot, error) {
	cacheKey := s.cachePrefix + "active"

	if cached, ok := s.readCache(ctx, cacheKey); ok {
		return cached, nil
	}

	hotspots, err := s.hotspots.ActiveHotspots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active hotspots: %w", err)
	}

	s.writeCache(ctx, cacheKey, hotspots)

	return hotspots, nil
}

func (s *StatsService) readCache(ctx context.Context, key string) ([]models.Hotspot, bool) {
	if s.redisClient == nil {
		return nil, false
	}

	data, err := s.redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("Failed to read hotspot cache", zap.Error(err))
		return nil, false
	}

	var hotspots []models.Hotspot
	if err := json.Unmarshal([]byte(data), &hotspots); err != nil {
		s.logger.Warn("Failed to decode hotspot cache", zap.Error(err))
		return nil, false
	}

	return hotspots, true
}

func (s *StatsService) writeCache(ctx context.Context, key string, hotspots []models.Hotspot) {
	if s.redisClient == nil {
		return
	}

	data, err := json.Marshal(hotspots)
	if err != nil {
		s.logger.Warn("Failed to encode hotspot cache", zap.Error(err))
		return
	}

	if err := s.redisClient.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to write hotspot cache", zap.Error(err))
	}
}
