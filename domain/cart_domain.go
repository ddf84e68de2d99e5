package domain

import (
	"errors"
)

var (
	MessageSuccessCreateCart      = "cart created successfully"
	MessageSuccessSetItemQuantity = "item quantity set successfully"
	MessageSuccessCheckout        = "checkout completed successfully"

	MessageFailedCreateCart      = "failed to create cart"
	MessageFailedSetItemQuantity = "failed to set item quantity"
	MessageFailedCheckout        = "failed to checkout cart"

	ErrCartNotFound       = errors.New("cart not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrEmptyCart          = errors.New("cart has no items to checkout")
)

type (
	CreateCartRequest struct {
		CustomerID string `json:"customer_id" validate:"required,uuid"`
	}

	CreateCartResponse struct {
		CartID string `json:"cart_id"`
	}

	SetItemQuantityRequest struct {
		Quantity int `json:"quantity" validate:"required"`
	}

	PaymentToken struct {
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	CheckoutResponse struct {
		TotalIngredientsPurchased int64        `json:"total_ingredients_purchased"`
		TotalAmountPaid           float64      `json:"total_amount_paid"`
		Payment                   PaymentToken `json:"payment"`
	}
)
