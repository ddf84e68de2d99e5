package entities

import (
	"github.com/google/uuid"
)

type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName string    `json:"customer_name"`

	Timestamp
}
