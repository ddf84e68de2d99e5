package entities

import (
	"github.com/google/uuid"
)

type Cart struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid" json:"customer_id"`

	Customer *Customer   `gorm:"foreignKey:CustomerID"`
	Items    []*CartItem `gorm:"foreignKey:CartID"`
	Timestamp
}

type CartItem struct {
	CartID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"cart_id"`
	ItemID   uint      `gorm:"primaryKey" json:"item_id"`
	Quantity int       `json:"quantity"`

	Cart *Cart       `gorm:"foreignKey:CartID"`
	Item *Ingredient `gorm:"foreignKey:ItemID"`
	Timestamp
}

type Payment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CartID      uuid.UUID `gorm:"type:uuid" json:"cart_id"`
	OrderRef    string    `json:"order_ref"`
	Amount      float64   `json:"amount"`
	Token       string    `json:"token,omitempty"`
	RedirectURL string    `json:"redirect_url,omitempty"`
	Status      string    `json:"status"` // Pending, Settled, Failed

	Cart *Cart `gorm:"foreignKey:CartID"`
	Timestamp
}
