package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dealerdesk/internal/model"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) CountDashboard(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&stats.Leads); err != nil {
		return model.DashboardStats{}, fmt.Errorf("count leads: %w", err)
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_cards`).Scan(&stats.Jobs); err != nil {
		return model.DashboardStats{}, fmt.Errorf("count job cards: %w", err)
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM parts`).Scan(&stats.Parts); err != nil {
		return model.DashboardStats{}, fmt.Errorf("count parts: %w", err)
	}

	return stats, nil
}
