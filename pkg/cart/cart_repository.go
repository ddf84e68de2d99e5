package cart

import (
	"context"
	"meal-planner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CartRepository interface {
		CreateCart(ctx context.Context, cart *entities.Cart) error
		GetCartByID(ctx context.Context, id uuid.UUID) (*entities.Cart, error)
		SetCartItem(ctx context.Context, item *entities.CartItem) error
		GetCheckoutTotals(ctx context.Context, cartID uuid.UUID) (CheckoutTotals, error)
		CreatePayment(ctx context.Context, payment *entities.Payment) error
	}

	cartRepository struct {
		db *gorm.DB
	}

	CheckoutTotals struct {
		TotalIngredientsPurchased int64
		TotalAmountPaid           float64
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *entities.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) GetCartByID(ctx context.Context, id uuid.UUID) (*entities.Cart, error) {
	var cart entities.Cart
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) SetCartItem(ctx context.Context, item *entities.CartItem) error {
	// Setting a quantity for an item already in the cart overwrites it.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(item).Error
}

func (r *cartRepository) GetCheckoutTotals(ctx context.Context, cartID uuid.UUID) (CheckoutTotals, error) {
	var totals CheckoutTotals
	if err := r.db.WithContext(ctx).
		Table("cart_items AS ci").
		Select("COALESCE(SUM(ci.quantity), 0) AS total_ingredients_purchased, COALESCE(SUM(ci.quantity * i.price), 0) AS total_amount_paid").
		Joins("JOIN ingredients AS i ON i.id = ci.item_id").
		Where("ci.cart_id = ?", cartID).
		Scan(&totals).Error; err != nil {
		return CheckoutTotals{}, err
	}
	return totals, nil
}

func (r *cartRepository) CreatePayment(ctx context.Context, payment *entities.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}
