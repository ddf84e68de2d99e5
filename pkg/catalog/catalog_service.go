package catalog

import (
	"context"
	"errors"
	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/internal/utils"

	"gorm.io/gorm"
)

type (
	// CatalogService resolves free-text ingredient and supply names to their
	// canonical rows, creating them on first use. Names are unique
	// case-insensitively; concurrent first writers race on the storage
	// uniqueness constraint and the loser re-reads instead of failing.
	CatalogService interface {
		ResolveIngredient(ctx context.Context, name string, price *float64, itemType *string) (uint, error)
		ResolveSupply(ctx context.Context, name string) (uint, error)
		SearchIngredients(ctx context.Context, name string) ([]domain.IngredientSearchResult, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) ResolveIngredient(ctx context.Context, name string, price *float64, itemType *string) (uint, error) {
	canonical := utils.NormalizeName(name)
	if canonical == "" {
		return 0, domain.ErrEmptyIngredientName
	}

	existing, err := s.catalogRepository.FindIngredientByName(ctx, canonical)
	if err == nil {
		// First-writer-wins: price and item_type of an existing row are kept.
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	ingredient := &entities.Ingredient{
		Name:     canonical,
		Price:    price,
		ItemType: itemType,
	}
	if err := s.catalogRepository.CreateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; the row exists now.
			existing, findErr := s.catalogRepository.FindIngredientByName(ctx, canonical)
			if findErr != nil {
				return 0, domain.ErrIngredientConflict
			}
			return existing.ID, nil
		}
		return 0, err
	}
	return ingredient.ID, nil
}

func (s *catalogService) ResolveSupply(ctx context.Context, name string) (uint, error) {
	canonical := utils.NormalizeName(name)
	if canonical == "" {
		return 0, domain.ErrEmptySupplyName
	}

	existing, err := s.catalogRepository.FindSupplyByName(ctx, canonical)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	supply := &entities.Supply{Name: canonical}
	if err := s.catalogRepository.CreateSupply(ctx, supply); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := s.catalogRepository.FindSupplyByName(ctx, canonical)
			if findErr != nil {
				return 0, domain.ErrSupplyConflict
			}
			return existing.ID, nil
		}
		return 0, err
	}
	return supply.ID, nil
}

func (s *catalogService) SearchIngredients(ctx context.Context, name string) ([]domain.IngredientSearchResult, error) {
	ingredients, err := s.catalogRepository.SearchIngredients(ctx, utils.NormalizeName(name))
	if err != nil {
		return nil, err
	}

	results := make([]domain.IngredientSearchResult, 0, len(ingredients))
	for _, ingredient := range ingredients {
		results = append(results, domain.IngredientSearchResult{
			ID:    ingredient.ID,
			Name:  ingredient.Name,
			Price: ingredient.Price,
		})
	}
	return results, nil
}
