package handlers

import (
	"meal-planner/domain"
	"meal-planner/internal/api/presenters"
	"meal-planner/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		SearchIngredients(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewIngredientHandler(catalogService catalog.CatalogService) IngredientHandler {
	return &ingredientHandler{catalogService: catalogService}
}

func (h *ingredientHandler) SearchIngredients(c *fiber.Ctx) error {
	res, err := h.catalogService.SearchIngredients(c.Context(), c.Query("name", ""))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSearchIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchIngredients)
}
