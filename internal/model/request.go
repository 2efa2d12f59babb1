package model

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateLeadRequest struct {
	CustomerID *string `json:"customer_id"`
	Name       string  `json:"name" validate:"required"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Status     string  `json:"status"`
	AssignedTo *string `json:"assigned_to"`
}

type CreateJobCardRequest struct {
	CustomerID   *string `json:"customer_id"`
	CarModel     string  `json:"car_model" validate:"required"`
	Status       string  `json:"status"`
	TechnicianID *string `json:"technician_id"`
}

type CreatePartRequest struct {
	Name         string  `json:"name" validate:"required"`
	PartNumber   string  `json:"part_number" validate:"required"`
	SupplierID   *string `json:"supplier_id"`
	Stock        int     `json:"stock"`
	ReorderLevel int     `json:"reorder_level"`
}

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
