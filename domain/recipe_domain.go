package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetSuggestions  = "success get recipe suggestions"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetSuggestions  = "failed to get recipe suggestions"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrEmptyRecipeName     = errors.New("recipe name cannot be empty")
	ErrEmptyDifficulty     = errors.New("difficulty cannot be empty")
	ErrInvalidRecipeTime   = errors.New("time must be a positive integer")
	ErrEmptyAmountUnits    = errors.New("amount units cannot be empty")
	ErrDuplicateIngredient = errors.New("duplicate ingredient in recipe")
	ErrDuplicateSupply     = errors.New("duplicate supply in recipe")
)

type (
	Ingredient struct {
		Name        string   `json:"name" validate:"required"`
		AmountUnits *string  `json:"amount_units,omitempty"`
		Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
		ItemType    *string  `json:"item_type,omitempty"`
	}

	Supply struct {
		SupplyName string `json:"supply_name" validate:"required"`
	}

	UpsertRecipeRequest struct {
		Name         string       `json:"name" validate:"required"`
		Instructions string       `json:"instructions"`
		Time         int          `json:"time" validate:"required"`
		Difficulty   string       `json:"difficulty" validate:"required"`
		Ingredients  []Ingredient `json:"ingredients" validate:"dive"`
		Supplies     []Supply     `json:"supplies" validate:"dive"`
	}

	RecipeResponse struct {
		ID           uint         `json:"id"`
		Name         string       `json:"name"`
		Instructions string       `json:"instructions"`
		Time         int          `json:"time"`
		Difficulty   string       `json:"difficulty"`
		Ingredients  []Ingredient `json:"ingredients"`
		Supplies     []Supply     `json:"supplies"`
	}

	CreateRecipeResponse struct {
		RecipeID uint `json:"recipe_id"`
	}

	// RecipeQuery carries the optional list filters; every provided name must
	// be present on a recipe for it to pass (subset semantics).
	RecipeQuery struct {
		Ingredients []string
		Supplies    []string
		Difficulty  string
	}

	SuggestedRecipe struct {
		ID                 uint         `json:"id"`
		Name               string       `json:"name"`
		MissingIngredients []Ingredient `json:"missing_ingredients"`
	}
)
