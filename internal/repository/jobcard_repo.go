package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dealerdesk/internal/model"
)

type JobCardRepository struct {
	pool *pgxpool.Pool
}

func NewJobCardRepository(pool *pgxpool.Pool) *JobCardRepository {
	return &JobCardRepository{pool: pool}
}

func (r *JobCardRepository) List(ctx context.Context) ([]model.JobCard, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, customer_id, car_model, status, technician_id, created_at
		 FROM job_cards ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list job cards: %w", err)
	}
	defer rows.Close()

	cards := make([]model.JobCard, 0)
	for rows.Next() {
		var jc model.JobCard
		if err := rows.Scan(&jc.ID, &jc.CustomerID, &jc.CarModel, &jc.Status, &jc.TechnicianID, &jc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job card: %w", err)
		}
		cards = append(cards, jc)
	}
	return cards, rows.Err()
}

func (r *JobCardRepository) Create(ctx context.Context, jc model.JobCard) (model.JobCard, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO job_cards (id, customer_id, car_model, status, technician_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		jc.ID, jc.CustomerID, jc.CarModel, jc.Status, jc.TechnicianID).
		Scan(&jc.CreatedAt)
	if err != nil {
		return model.JobCard{}, fmt.Errorf("create job card: %w", err)
	}
	return jc, nil
}
