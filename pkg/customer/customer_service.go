package customer

import (
	"context"
	"meal-planner/domain"
	"meal-planner/entities"

	"github.com/google/uuid"
)

type (
	CustomerService interface {
		RegisterCustomer(ctx context.Context, req domain.RegisterCustomerRequest) (domain.RegisterCustomerResponse, error)
	}

	customerService struct {
		customerRepository CustomerRepository
	}
)

func NewCustomerService(customerRepository CustomerRepository) CustomerService {
	return &customerService{customerRepository: customerRepository}
}

func (s *customerService) RegisterCustomer(ctx context.Context, req domain.RegisterCustomerRequest) (domain.RegisterCustomerResponse, error) {
	customer := &entities.Customer{
		ID:           uuid.New(),
		CustomerName: req.CustomerName,
	}

	if err := s.customerRepository.CreateCustomer(ctx, customer); err != nil {
		return domain.RegisterCustomerResponse{}, err
	}
	return domain.RegisterCustomerResponse{CustomerID: customer.ID.String()}, nil
}
