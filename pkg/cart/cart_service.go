package cart

import (
	"context"
	"errors"
	"math"
	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/pkg/catalog"
	"meal-planner/pkg/customer"
	"meal-planner/pkg/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		CreateCart(ctx context.Context, req domain.CreateCartRequest) (domain.CreateCartResponse, error)
		SetItemQuantity(ctx context.Context, cartID string, itemID uint, quantity int) error
		Checkout(ctx context.Context, cartID string) (domain.CheckoutResponse, error)
	}

	cartService struct {
		cartRepository     CartRepository
		customerRepository customer.CustomerRepository
		catalogRepository  catalog.CatalogRepository
		gateway            payment.Gateway
	}
)

func NewCartService(
	cartRepository CartRepository,
	customerRepository customer.CustomerRepository,
	catalogRepository catalog.CatalogRepository,
	gateway payment.Gateway,
) CartService {
	return &cartService{
		cartRepository:     cartRepository,
		customerRepository: customerRepository,
		catalogRepository:  catalogRepository,
		gateway:            gateway,
	}
}

func (s *cartService) CreateCart(ctx context.Context, req domain.CreateCartRequest) (domain.CreateCartResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return domain.CreateCartResponse{}, domain.ErrCustomerNotFound
	}

	if _, err := s.customerRepository.GetCustomerByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateCartResponse{}, domain.ErrCustomerNotFound
		}
		return domain.CreateCartResponse{}, err
	}

	cart := &entities.Cart{
		ID:         uuid.New(),
		CustomerID: customerID,
	}
	if err := s.cartRepository.CreateCart(ctx, cart); err != nil {
		return domain.CreateCartResponse{}, err
	}
	return domain.CreateCartResponse{CartID: cart.ID.String()}, nil
}

func (s *cartService) SetItemQuantity(ctx context.Context, cartID string, itemID uint, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	id, err := uuid.Parse(cartID)
	if err != nil {
		return domain.ErrCartNotFound
	}

	if _, err := s.catalogRepository.GetIngredientByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if _, err := s.cartRepository.GetCartByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartNotFound
		}
		return err
	}

	return s.cartRepository.SetCartItem(ctx, &entities.CartItem{
		CartID:   id,
		ItemID:   itemID,
		Quantity: quantity,
	})
}

func (s *cartService) Checkout(ctx context.Context, cartID string) (domain.CheckoutResponse, error) {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrCartNotFound
	}

	if _, err := s.cartRepository.GetCartByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrCartNotFound
		}
		return domain.CheckoutResponse{}, err
	}

	totals, err := s.cartRepository.GetCheckoutTotals(ctx, id)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	if totals.TotalIngredientsPurchased == 0 {
		return domain.CheckoutResponse{}, domain.ErrEmptyCart
	}

	// The snap API takes whole currency units; round rather than truncate.
	orderRef := uuid.New().String()
	token, err := s.gateway.CreateTransaction(orderRef, int64(math.Round(totals.TotalAmountPaid)))
	if err != nil {
		return domain.CheckoutResponse{}, err
	}

	paymentRow := &entities.Payment{
		ID:          uuid.New(),
		CartID:      id,
		OrderRef:    orderRef,
		Amount:      totals.TotalAmountPaid,
		Token:       token.Token,
		RedirectURL: token.RedirectURL,
		Status:      "Pending",
	}
	if err := s.cartRepository.CreatePayment(ctx, paymentRow); err != nil {
		return domain.CheckoutResponse{}, err
	}

	return domain.CheckoutResponse{
		TotalIngredientsPurchased: totals.TotalIngredientsPurchased,
		TotalAmountPaid:           totals.TotalAmountPaid,
		Payment:                   token,
	}, nil
}
