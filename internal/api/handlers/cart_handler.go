package handlers

import (
	"errors"
	"meal-planner/domain"
	"meal-planner/internal/api/presenters"
	"meal-planner/pkg/cart"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		CreateCart(c *fiber.Ctx) error
		SetItemQuantity(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) CreateCart(c *fiber.Ctx) error {
	req := new(domain.CreateCartRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCart, err)
	}

	res, err := h.cartService.CreateCart(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedCreateCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCart)
}

func (h *cartHandler) SetItemQuantity(c *fiber.Ctx) error {
	itemID, err := strconv.ParseUint(c.Params("itemID"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetItemQuantity, domain.ErrInvalidRequestID)
	}

	req := new(domain.SetItemQuantityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.cartService.SetItemQuantity(c.Context(), c.Params("id"), uint(itemID), req.Quantity); err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedSetItemQuantity, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetItemQuantity)
}

func (h *cartHandler) Checkout(c *fiber.Ctx) error {
	res, err := h.cartService.Checkout(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckout)
}

func cartErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrCartNotFound), errors.Is(err, domain.ErrIngredientNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyCart):
		return fiber.StatusBadRequest
	default:
		// Not a domain sentinel, so the storage layer failed.
		return fiber.StatusInternalServerError
	}
}
