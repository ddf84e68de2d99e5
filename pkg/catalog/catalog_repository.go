package catalog

import (
	"context"
	"meal-planner/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		FindIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error)
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		SearchIngredients(ctx context.Context, pattern string) ([]*entities.Ingredient, error)
		FindSupplyByName(ctx context.Context, name string) (*entities.Supply, error)
		CreateSupply(ctx context.Context, supply *entities.Supply) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", name).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *catalogRepository) GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *catalogRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *catalogRepository) SearchIngredients(ctx context.Context, pattern string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+pattern+"%").
		Order("id asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *catalogRepository) FindSupplyByName(ctx context.Context, name string) (*entities.Supply, error) {
	var supply entities.Supply
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", name).
		First(&supply).Error; err != nil {
		return nil, err
	}
	return &supply, nil
}

func (r *catalogRepository) CreateSupply(ctx context.Context, supply *entities.Supply) error {
	return r.db.WithContext(ctx).Create(supply).Error
}
