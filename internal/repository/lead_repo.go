package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dealerdesk/internal/model"
)

type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) List(ctx context.Context) ([]model.Lead, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, customer_id, name, email, phone, status, assigned_to, created_at
		 FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]model.Lead, 0)
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.AssignedTo, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Create(ctx context.Context, l model.Lead) (model.Lead, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO leads (id, customer_id, name, email, phone, status, assigned_to)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		l.ID, l.CustomerID, l.Name, l.Email, l.Phone, l.Status, l.AssignedTo).
		Scan(&l.CreatedAt)
	if err != nil {
		return model.Lead{}, fmt.Errorf("create lead: %w", err)
	}
	return l, nil
}
