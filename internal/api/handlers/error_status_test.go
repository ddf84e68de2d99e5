package handlers

import (
	"errors"
	"fmt"
	"meal-planner/domain"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRecipeErrorStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{domain.ErrIngredientConflict, fiber.StatusConflict},
		{domain.ErrSupplyConflict, fiber.StatusConflict},
		{domain.ErrEmptyRecipeName, fiber.StatusBadRequest},
		{domain.ErrEmptyDifficulty, fiber.StatusBadRequest},
		{domain.ErrInvalidRecipeTime, fiber.StatusBadRequest},
		{domain.ErrEmptyAmountUnits, fiber.StatusBadRequest},
		{fmt.Errorf("%w: flour", domain.ErrDuplicateIngredient), fiber.StatusBadRequest},
		{fmt.Errorf("%w: bowl", domain.ErrDuplicateSupply), fiber.StatusBadRequest},
		{domain.ErrEmptyIngredientName, fiber.StatusBadRequest},
		{domain.ErrEmptySupplyName, fiber.StatusBadRequest},
		{errors.New("driver: bad connection"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := recipeErrorStatus(tc.err); got != tc.want {
			t.Errorf("recipeErrorStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestCartErrorStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrCartNotFound, fiber.StatusNotFound},
		{domain.ErrIngredientNotFound, fiber.StatusNotFound},
		{domain.ErrCustomerNotFound, fiber.StatusBadRequest},
		{domain.ErrInvalidQuantity, fiber.StatusBadRequest},
		{domain.ErrEmptyCart, fiber.StatusBadRequest},
		{errors.New("driver: bad connection"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := cartErrorStatus(tc.err); got != tc.want {
			t.Errorf("cartErrorStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestReviewErrorStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{domain.ErrReviewNotFound, fiber.StatusNotFound},
		{domain.ErrCustomerNotFound, fiber.StatusBadRequest},
		{errors.New("driver: bad connection"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := reviewErrorStatus(tc.err); got != tc.want {
			t.Errorf("reviewErrorStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
