package handlers

import (
	"errors"
	"meal-planner/domain"
	"meal-planner/internal/api/presenters"
	"meal-planner/pkg/review"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		GetReviews(c *fiber.Ctx) error
		CreateReview(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
		GetHighestReviewed(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) GetReviews(c *fiber.Ctx) error {
	recipeID, err := strconv.ParseUint(c.Params("recipeID"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReviews, domain.ErrInvalidRequestID)
	}

	res, err := h.reviewService.GetReviews(c.Context(), uint(recipeID))
	if err != nil {
		return presenters.ErrorResponse(c, reviewErrorStatus(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) CreateReview(c *fiber.Ctx) error {
	req := new(domain.CreateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReview, err)
	}

	res, err := h.reviewService.CreateReview(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, reviewErrorStatus(err), domain.MessageFailedCreateReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReview)
}

func (h *reviewHandler) DeleteReview(c *fiber.Ctx) error {
	recipeID, err := strconv.ParseUint(c.Params("recipeID"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReview, domain.ErrInvalidRequestID)
	}

	if err := h.reviewService.DeleteReview(c.Context(), uint(recipeID), c.Params("reviewID")); err != nil {
		return presenters.ErrorResponse(c, reviewErrorStatus(err), domain.MessageFailedDeleteReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReview)
}

func (h *reviewHandler) GetHighestReviewed(c *fiber.Ctx) error {
	res, err := h.reviewService.GetHighestReviewed(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, reviewErrorStatus(err), domain.MessageFailedGetHighestReviewed, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHighestReviewed)
}

func reviewErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound), errors.Is(err, domain.ErrReviewNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrCustomerNotFound):
		return fiber.StatusBadRequest
	default:
		// Not a domain sentinel, so the storage layer failed.
		return fiber.StatusInternalServerError
	}
}
