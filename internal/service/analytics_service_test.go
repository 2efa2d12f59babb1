package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dealerdesk/internal/model"
)

type fakeStatsStore struct {
	stats model.DashboardStats
	err   error
	calls int
}

func (f *fakeStatsStore) CountDashboard(context.Context) (model.DashboardStats, error) {
	f.calls++
	return f.stats, f.err
}

func TestDashboardWithoutCacheHitsStoreEveryTime(t *testing.T) {
	store := &fakeStatsStore{stats: model.DashboardStats{Leads: 3, Jobs: 2, Parts: 7}}
	svc := NewAnalyticsService(store, nil, 30*time.Second)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, store.stats, stats)

	_, err = svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, store.calls)
}

func TestDashboardPropagatesStoreError(t *testing.T) {
	store := &fakeStatsStore{err: context.DeadlineExceeded}
	svc := NewAnalyticsService(store, nil, 30*time.Second)

	_, err := svc.Dashboard(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
