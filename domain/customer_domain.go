package domain

import (
	"errors"
)

var (
	MessageSuccessRegisterCustomer = "customer registered successfully"
	MessageFailedRegisterCustomer  = "failed to register customer"

	ErrCustomerNotFound = errors.New("customer not found")
)

type (
	RegisterCustomerRequest struct {
		CustomerName string `json:"customer_name" validate:"required"`
	}

	RegisterCustomerResponse struct {
		CustomerID string `json:"customer_id"`
	}
)
