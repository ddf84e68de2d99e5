package domain

import (
	"errors"
)

var (
	MessageSuccessSearchIngredients = "success search ingredients"
	MessageFailedSearchIngredients  = "failed to search ingredients"

	ErrEmptyIngredientName = errors.New("ingredient name cannot be empty")
	ErrEmptySupplyName     = errors.New("supply name cannot be empty")
	ErrIngredientConflict  = errors.New("conflicting ingredient write")
	ErrSupplyConflict      = errors.New("conflicting supply write")
)

type (
	IngredientSearchResult struct {
		ID    uint     `json:"id"`
		Name  string   `json:"name"`
		Price *float64 `json:"price,omitempty"`
	}
)
