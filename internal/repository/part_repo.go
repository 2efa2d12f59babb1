package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dealerdesk/internal/model"
)

type PartRepository struct {
	pool *pgxpool.Pool
}

func NewPartRepository(pool *pgxpool.Pool) *PartRepository {
	return &PartRepository{pool: pool}
}

func (r *PartRepository) List(ctx context.Context) ([]model.Part, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, part_number, supplier_id, stock, reorder_level, created_at
		 FROM parts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	parts := make([]model.Part, 0)
	for rows.Next() {
		var p model.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.PartNumber, &p.SupplierID, &p.Stock, &p.ReorderLevel, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func (r *PartRepository) Create(ctx context.Context, p model.Part) (model.Part, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO parts (id, name, part_number, supplier_id, stock, reorder_level)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		p.ID, p.Name, p.PartNumber, p.SupplierID, p.Stock, p.ReorderLevel).
		Scan(&p.CreatedAt)
	if err != nil {
		return model.Part{}, fmt.Errorf("create part: %w", err)
	}
	return p, nil
}
