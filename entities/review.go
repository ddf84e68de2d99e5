package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID   uint      `json:"recipe_id"`
	CustomerID uuid.UUID `gorm:"type:uuid" json:"customer_id"`
	Rating     int       `json:"rating"`
	Review     string    `gorm:"type:text" json:"review"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID"`
	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Timestamp
}
