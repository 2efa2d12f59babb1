package model

import "time"

// Lead is a sales lead tracked by the dealership.
type Lead struct {
	ID         string    `json:"id"`
	CustomerID *string   `json:"customer_id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Status     string    `json:"status"`
	AssignedTo *string   `json:"assigned_to"`
	CreatedAt  time.Time `json:"created_at"`
}

// JobCard is a service-center work order.
type JobCard struct {
	ID           string    `json:"id"`
	CustomerID   *string   `json:"customer_id"`
	CarModel     string    `json:"car_model"`
	Status       string    `json:"status"`
	TechnicianID *string   `json:"technician_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Part is an inventory item with stock tracking.
type Part struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PartNumber   string    `json:"part_number"`
	SupplierID   *string   `json:"supplier_id"`
	Stock        int       `json:"stock"`
	ReorderLevel int       `json:"reorder_level"`
	CreatedAt    time.Time `json:"created_at"`
}

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats carries the row counts shown on the dashboard.
type DashboardStats struct {
	Leads int64 `json:"leads"`
	Jobs  int64 `json:"jobs"`
	Parts int64 `json:"parts"`
}
