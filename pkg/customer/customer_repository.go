package customer

import (
	"context"
	"meal-planner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CustomerRepository interface {
		CreateCustomer(ctx context.Context, customer *entities.Customer) error
		GetCustomerByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error)
	}

	customerRepository struct {
		db *gorm.DB
	}
)

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
