package service

import (
	"context"
	"time"

	"dealerdesk/internal/cache"
	"dealerdesk/internal/model"
)

const dashboardCacheKey = "analytics:dashboard"

// StatsStore is implemented by repository.AnalyticsRepository.
type StatsStore interface {
	CountDashboard(ctx context.Context) (model.DashboardStats, error)
}

type AnalyticsService struct {
	store    StatsStore
	cache    *cache.Cache
	cacheTTL time.Duration
}

// NewAnalyticsService accepts a nil cache, which disables caching.
func NewAnalyticsService(store StatsStore, c *cache.Cache, cacheTTL time.Duration) *AnalyticsService {
	return &AnalyticsService{store: store, cache: c, cacheTTL: cacheTTL}
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats
	if s.cache.Get(ctx, dashboardCacheKey, &stats) {
		return stats, nil
	}

	stats, err := s.store.CountDashboard(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}

	s.cache.Set(ctx, dashboardCacheKey, stats, s.cacheTTL)
	return stats, nil
}
