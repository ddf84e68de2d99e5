package handlers

import (
	"meal-planner/domain"
	"meal-planner/internal/api/presenters"
	"meal-planner/pkg/customer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CustomerHandler interface {
		RegisterCustomer(c *fiber.Ctx) error
	}

	customerHandler struct {
		customerService customer.CustomerService
		validator       *validator.Validate
	}
)

func NewCustomerHandler(customerService customer.CustomerService, validator *validator.Validate) CustomerHandler {
	return &customerHandler{
		customerService: customerService,
		validator:       validator,
	}
}

func (h *customerHandler) RegisterCustomer(c *fiber.Ctx) error {
	req := new(domain.RegisterCustomerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterCustomer, err)
	}

	res, err := h.customerService.RegisterCustomer(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegisterCustomer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterCustomer)
}
