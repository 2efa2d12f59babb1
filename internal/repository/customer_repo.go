package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dealerdesk/internal/model"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, address, created_at
		 FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO customers (id, name, email, phone, address)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		c.ID, c.Name, c.Email, c.Phone, c.Address).
		Scan(&c.CreatedAt)
	if err != nil {
		return model.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}
