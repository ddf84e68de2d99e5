package cart

import (
	"context"
	"errors"
	"fmt"
	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/pkg/catalog"
	"meal-planner/pkg/customer"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubGateway records the last transaction request instead of calling out
// to the payment provider.
type stubGateway struct {
	lastOrderRef string
	lastAmount   int64
	err          error
}

func (g *stubGateway) CreateTransaction(orderRef string, grossAmount int64) (domain.PaymentToken, error) {
	g.lastOrderRef = orderRef
	g.lastAmount = grossAmount
	if g.err != nil {
		return domain.PaymentToken{}, g.err
	}
	return domain.PaymentToken{
		Token:       "tok-" + orderRef,
		RedirectURL: "https://pay.example/" + orderRef,
	}, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Customer{},
		&entities.Ingredient{},
		&entities.Cart{},
		&entities.CartItem{},
		&entities.Payment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type cartFixture struct {
	db       *gorm.DB
	service  CartService
	gateway  *stubGateway
	customer *entities.Customer
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	db := newTestDB(t)
	gateway := &stubGateway{}
	service := NewCartService(
		NewCartRepository(db),
		customer.NewCustomerRepository(db),
		catalog.NewCatalogRepository(db),
		gateway,
	)

	cust := &entities.Customer{ID: uuid.New(), CustomerName: "alice"}
	if err := db.Create(cust).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return &cartFixture{db: db, service: service, gateway: gateway, customer: cust}
}

func (f *cartFixture) seedIngredient(t *testing.T, name string, price float64) *entities.Ingredient {
	t.Helper()

	ingredient := &entities.Ingredient{Name: name, Price: &price}
	if err := f.db.Create(ingredient).Error; err != nil {
		t.Fatalf("seed ingredient %q: %v", name, err)
	}
	return ingredient
}

func (f *cartFixture) createCart(t *testing.T) string {
	t.Helper()

	created, err := f.service.CreateCart(context.Background(), domain.CreateCartRequest{
		CustomerID: f.customer.ID.String(),
	})
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}
	return created.CartID
}

func TestCreateCartForUnknownCustomer(t *testing.T) {
	t.Parallel()

	f := newCartFixture(t)

	_, err := f.service.CreateCart(context.Background(), domain.CreateCartRequest{
		CustomerID: uuid.New().String(),
	})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestSetItemQuantityValidation(t *testing.T) {
	t.Parallel()

	f := newCartFixture(t)
	ctx := context.Background()
	flour := f.seedIngredient(t, "flour", 2.5)
	cartID := f.createCart(t)

	if err := f.service.SetItemQuantity(ctx, cartID, flour.ID, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for zero, got %v", err)
	}
	if err := f.service.SetItemQuantity(ctx, cartID, flour.ID, -3); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for negative, got %v", err)
	}
	if err := f.service.SetItemQuantity(ctx, cartID, 99999, 1); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
	if err := f.service.SetItemQuantity(ctx, uuid.New().String(), flour.ID, 1); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestSetItemQuantityUpsertsRow(t *testing.T) {
	t.Parallel()

	f := newCartFixture(t)
	ctx := context.Background()
	flour := f.seedIngredient(t, "flour", 2.5)
	cartID := f.createCart(t)

	if err := f.service.SetItemQuantity(ctx, cartID, flour.ID, 2); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := f.service.SetItemQuantity(ctx, cartID, flour.ID, 5); err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	var items []entities.CartItem
	if err := f.db.Find(&items).Error; err != nil {
		t.Fatalf("read cart items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single cart item row, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5 after upsert, got %d", items[0].Quantity)
	}
}

func TestCheckoutComputesTotalsAndRecordsPayment(t *testing.T) {
	t.Parallel()

	f := newCartFixture(t)
	ctx := context.Background()
	flour := f.seedIngredient(t, "flour", 2.5)
	milk := f.seedIngredient(t, "milk", 1.5)
	cartID := f.createCart(t)

	if err := f.service.SetItemQuantity(ctx, cartID, flour.ID, 2); err != nil {
		t.Fatalf("set flour: %v", err)
	}
	if err := f.service.SetItemQuantity(ctx, cartID, milk.ID, 3); err != nil {
		t.Fatalf("set milk: %v", err)
	}

	resp, err := f.service.Checkout(ctx, cartID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if resp.TotalIngredientsPurchased != 5 {
		t.Fatalf("expected 5 units purchased, got %d", resp.TotalIngredientsPurchased)
	}
	// 2 * 2.5 + 3 * 1.5
	if resp.TotalAmountPaid != 9.5 {
		t.Fatalf("expected total 9.5, got %v", resp.TotalAmountPaid)
	}
	if resp.Payment.Token == "" || resp.Payment.RedirectURL == "" {
		t.Fatalf("expected payment token in response, got %+v", resp.Payment)
	}
	// 9.5 rounds up to whole currency units for the gateway.
	if f.gateway.lastAmount != 10 {
		t.Fatalf("expected rounded gross amount 10 sent to gateway, got %d", f.gateway.lastAmount)
	}

	var payments []entities.Payment
	if err := f.db.Find(&payments).Error; err != nil {
		t.Fatalf("read payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected one payment row, got %d", len(payments))
	}
	if payments[0].Status != "Pending" || payments[0].Amount != 9.5 {
		t.Fatalf("unexpected payment row: %+v", payments[0])
	}
	if payments[0].OrderRef != f.gateway.lastOrderRef {
		t.Fatalf("payment order ref %q does not match gateway call %q", payments[0].OrderRef, f.gateway.lastOrderRef)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	f := newCartFixture(t)
	cartID := f.createCart(t)

	if _, err := f.service.Checkout(context.Background(), cartID); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	var count int64
	if err := f.db.Model(&entities.Payment{}).Count(&count).Error; err != nil {
		t.Fatalf("count payments: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no payment recorded, got %d", count)
	}
}

func TestCheckoutUnknownCart(t *testing.T) {
	t.Parallel()

	f := newCartFixture(t)

	if _, err := f.service.Checkout(context.Background(), uuid.New().String()); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
	if _, err := f.service.Checkout(context.Background(), "not-a-uuid"); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound for malformed id, got %v", err)
	}
}

func TestGatewayFailureDoesNotRecordPayment(t *testing.T) {
	t.Parallel()

	f := newCartFixture(t)
	ctx := context.Background()
	flour := f.seedIngredient(t, "flour", 2.0)
	cartID := f.createCart(t)

	if err := f.service.SetItemQuantity(ctx, cartID, flour.ID, 1); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	f.gateway.err = errors.New("provider unavailable")
	if _, err := f.service.Checkout(ctx, cartID); err == nil {
		t.Fatal("expected checkout to fail when the gateway fails")
	}

	var count int64
	if err := f.db.Model(&entities.Payment{}).Count(&count).Error; err != nil {
		t.Fatalf("count payments: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no payment recorded on gateway failure, got %d", count)
	}
}
