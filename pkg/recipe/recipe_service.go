package recipe

import (
	"context"
	"errors"
	"fmt"
	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/internal/utils"
	"meal-planner/pkg/catalog"
	"strings"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id uint) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.UpsertRecipeRequest) (domain.CreateRecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpsertRecipeRequest) error
		DeleteRecipe(ctx context.Context, id uint) error
		GetSuggestions(ctx context.Context, ingredients []string) ([]domain.SuggestedRecipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		catalogService   catalog.CatalogService
	}
)

func NewRecipeService(recipeRepository RecipeRepository, catalogService catalog.CatalogService) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		catalogService:   catalogService,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	ingredientRows, err := s.recipeRepository.ListIngredientRows(ctx)
	if err != nil {
		return nil, err
	}
	supplyRows, err := s.recipeRepository.ListSupplyRows(ctx)
	if err != nil {
		return nil, err
	}

	composed := composeRecipes(recipes, ingredientRows, supplyRows)
	return filterRecipes(composed, query), nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	ingredientRows, err := s.recipeRepository.GetIngredientRows(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	supplyRows, err := s.recipeRepository.GetSupplyRows(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	response := domain.RecipeResponse{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Instructions: recipe.Instructions,
		Time:         recipe.Time,
		Difficulty:   recipe.Difficulty,
		Ingredients:  make([]domain.Ingredient, 0, len(ingredientRows)),
		Supplies:     make([]domain.Supply, 0, len(supplyRows)),
	}
	for _, row := range ingredientRows {
		response.Ingredients = append(response.Ingredients, ingredientFromRow(row))
	}
	for _, row := range supplyRows {
		if row.SupplyName == nil {
			continue
		}
		response.Supplies = append(response.Supplies, domain.Supply{SupplyName: *row.SupplyName})
	}
	return response, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.UpsertRecipeRequest) (domain.CreateRecipeResponse, error) {
	if err := validateRecipeRequest(req); err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	recipe, err := s.buildRecipe(ctx, req)
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.CreateRecipeResponse{}, err
	}
	return domain.CreateRecipeResponse{RecipeID: recipe.ID}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpsertRecipeRequest) error {
	if err := validateRecipeRequest(req); err != nil {
		return err
	}

	recipe, err := s.buildRecipe(ctx, req)
	if err != nil {
		return err
	}
	recipe.ID = id
	for _, link := range recipe.Ingredients {
		link.RecipeID = id
	}
	for _, link := range recipe.Supplies {
		link.RecipeID = id
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) GetSuggestions(ctx context.Context, ingredients []string) ([]domain.SuggestedRecipe, error) {
	available := make(map[string]struct{})
	for _, name := range utils.NormalizeNameSet(ingredients) {
		available[name] = struct{}{}
	}

	suggestions := make([]domain.SuggestedRecipe, 0)
	if len(available) == 0 {
		return suggestions, nil
	}

	rows, err := s.recipeRepository.ListIngredientRows(ctx)
	if err != nil {
		return nil, err
	}

	// Group ingredient usages per recipe, keeping recipe id order.
	type candidate struct {
		name        string
		ingredients []domain.Ingredient
	}
	order := make([]uint, 0)
	candidates := make(map[uint]*candidate)
	for _, row := range rows {
		if row.IngredientName == nil {
			continue
		}
		c, ok := candidates[row.RecipeID]
		if !ok {
			c = &candidate{name: row.RecipeName}
			candidates[row.RecipeID] = c
			order = append(order, row.RecipeID)
		}
		c.ingredients = append(c.ingredients, ingredientFromRow(row))
	}

	for _, id := range order {
		c := candidates[id]
		matched := false
		missing := make([]domain.Ingredient, 0)
		for _, ingredient := range c.ingredients {
			if _, ok := available[utils.NormalizeName(ingredient.Name)]; ok {
				matched = true
			} else {
				missing = append(missing, ingredient)
			}
		}
		// Fully covered recipes need nothing, so they are not suggestions.
		if !matched || len(missing) == 0 {
			continue
		}
		suggestions = append(suggestions, domain.SuggestedRecipe{
			ID:                 id,
			Name:               c.name,
			MissingIngredients: missing,
		})
	}
	return suggestions, nil
}

// buildRecipe resolves every ingredient and supply name to its canonical row
// and assembles the entity with its link rows, ready for a single
// transactional write.
func (s *recipeService) buildRecipe(ctx context.Context, req domain.UpsertRecipeRequest) (*entities.Recipe, error) {
	recipe := &entities.Recipe{
		Name:         strings.TrimSpace(req.Name),
		Instructions: req.Instructions,
		Time:         req.Time,
		Difficulty:   strings.TrimSpace(req.Difficulty),
	}

	for _, ingredient := range req.Ingredients {
		id, err := s.catalogService.ResolveIngredient(ctx, ingredient.Name, ingredient.Price, ingredient.ItemType)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = append(recipe.Ingredients, &entities.RecipeIngredient{
			IngredientID: id,
			AmountUnits:  ingredient.AmountUnits,
		})
	}

	for _, supply := range req.Supplies {
		id, err := s.catalogService.ResolveSupply(ctx, supply.SupplyName)
		if err != nil {
			return nil, err
		}
		recipe.Supplies = append(recipe.Supplies, &entities.RecipeSupply{SupplyID: id})
	}
	return recipe, nil
}

// validateRecipeRequest rejects bad payloads before anything is written.
func validateRecipeRequest(req domain.UpsertRecipeRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ErrEmptyRecipeName
	}
	if req.Time <= 0 {
		return domain.ErrInvalidRecipeTime
	}
	if strings.TrimSpace(req.Difficulty) == "" {
		return domain.ErrEmptyDifficulty
	}

	seenIngredients := make(map[string]struct{}, len(req.Ingredients))
	for _, ingredient := range req.Ingredients {
		canonical := utils.NormalizeName(ingredient.Name)
		if canonical == "" {
			return domain.ErrEmptyIngredientName
		}
		if ingredient.AmountUnits != nil && strings.TrimSpace(*ingredient.AmountUnits) == "" {
			return fmt.Errorf("%w: %s", domain.ErrEmptyAmountUnits, ingredient.Name)
		}
		if _, ok := seenIngredients[canonical]; ok {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateIngredient, ingredient.Name)
		}
		seenIngredients[canonical] = struct{}{}
	}

	seenSupplies := make(map[string]struct{}, len(req.Supplies))
	for _, supply := range req.Supplies {
		canonical := utils.NormalizeName(supply.SupplyName)
		if canonical == "" {
			return domain.ErrEmptySupplyName
		}
		if _, ok := seenSupplies[canonical]; ok {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateSupply, supply.SupplyName)
		}
		seenSupplies[canonical] = struct{}{}
	}
	return nil
}

// composeRecipes attaches the grouped ingredient and supply rows to their
// recipe scalar rows. Rows with a NULL child name are join artifacts of
// recipes without children and are skipped; a childless recipe keeps an
// empty list, never nil.
func composeRecipes(recipes []*entities.Recipe, ingredientRows []IngredientRow, supplyRows []SupplyRow) []domain.RecipeResponse {
	ingredientsByRecipe := make(map[uint][]domain.Ingredient)
	for _, row := range ingredientRows {
		if row.IngredientName == nil {
			continue
		}
		ingredientsByRecipe[row.RecipeID] = append(ingredientsByRecipe[row.RecipeID], ingredientFromRow(row))
	}

	suppliesByRecipe := make(map[uint][]domain.Supply)
	for _, row := range supplyRows {
		if row.SupplyName == nil {
			continue
		}
		suppliesByRecipe[row.RecipeID] = append(suppliesByRecipe[row.RecipeID], domain.Supply{SupplyName: *row.SupplyName})
	}

	composed := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response := domain.RecipeResponse{
			ID:           recipe.ID,
			Name:         recipe.Name,
			Instructions: recipe.Instructions,
			Time:         recipe.Time,
			Difficulty:   recipe.Difficulty,
			Ingredients:  ingredientsByRecipe[recipe.ID],
			Supplies:     suppliesByRecipe[recipe.ID],
		}
		if response.Ingredients == nil {
			response.Ingredients = make([]domain.Ingredient, 0)
		}
		if response.Supplies == nil {
			response.Supplies = make([]domain.Supply, 0)
		}
		composed = append(composed, response)
	}
	return composed
}

// filterRecipes applies the optional filters conjunctively, preserving
// composition order. The list filters use subset semantics: every requested
// name must be present on the recipe.
func filterRecipes(recipes []domain.RecipeResponse, query domain.RecipeQuery) []domain.RecipeResponse {
	difficulty := utils.NormalizeName(query.Difficulty)
	wantedIngredients := utils.NormalizeNameSet(query.Ingredients)
	wantedSupplies := utils.NormalizeNameSet(query.Supplies)

	filtered := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		if difficulty != "" && utils.NormalizeName(recipe.Difficulty) != difficulty {
			continue
		}
		if len(wantedSupplies) > 0 {
			names := make(map[string]struct{}, len(recipe.Supplies))
			for _, supply := range recipe.Supplies {
				names[utils.NormalizeName(supply.SupplyName)] = struct{}{}
			}
			if !containsAll(names, wantedSupplies) {
				continue
			}
		}
		if len(wantedIngredients) > 0 {
			names := make(map[string]struct{}, len(recipe.Ingredients))
			for _, ingredient := range recipe.Ingredients {
				names[utils.NormalizeName(ingredient.Name)] = struct{}{}
			}
			if !containsAll(names, wantedIngredients) {
				continue
			}
		}
		filtered = append(filtered, recipe)
	}
	return filtered
}

func containsAll(have map[string]struct{}, wanted []string) bool {
	for _, name := range wanted {
		if _, ok := have[name]; !ok {
			return false
		}
	}
	return true
}

func ingredientFromRow(row IngredientRow) domain.Ingredient {
	ingredient := domain.Ingredient{
		AmountUnits: row.AmountUnits,
		Price:       row.Price,
		ItemType:    row.ItemType,
	}
	if row.IngredientName != nil {
		ingredient.Name = *row.IngredientName
	}
	return ingredient
}
