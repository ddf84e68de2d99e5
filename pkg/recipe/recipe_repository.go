package recipe

import (
	"context"
	"meal-planner/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		ListRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		ListIngredientRows(ctx context.Context) ([]IngredientRow, error)
		ListSupplyRows(ctx context.Context) ([]SupplyRow, error)
		GetIngredientRows(ctx context.Context, recipeID uint) ([]IngredientRow, error)
		GetSupplyRows(ctx context.Context, recipeID uint) ([]SupplyRow, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error
	}

	recipeRepository struct {
		db *gorm.DB
	}

	// IngredientRow is one joined row of a recipe's ingredient usage. The
	// ingredient columns are pointers because the list query joins
	// left-outer: a recipe without ingredients still yields one row, with a
	// NULL ingredient name.
	IngredientRow struct {
		RecipeID       uint
		RecipeName     string
		IngredientName *string
		AmountUnits    *string
		Price          *float64
		ItemType       *string
	}

	SupplyRow struct {
		RecipeID   uint
		SupplyName *string
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) ListRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Order("id asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListIngredientRows(ctx context.Context) ([]IngredientRow, error) {
	var rows []IngredientRow
	if err := r.db.WithContext(ctx).
		Table("recipes AS r").
		Select("r.id AS recipe_id, r.name AS recipe_name, i.name AS ingredient_name, ri.amount_units, i.price, i.item_type").
		Joins("LEFT JOIN recipe_ingredients AS ri ON ri.recipe_id = r.id").
		Joins("LEFT JOIN ingredients AS i ON i.id = ri.ingredient_id").
		Order("r.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) ListSupplyRows(ctx context.Context) ([]SupplyRow, error) {
	var rows []SupplyRow
	if err := r.db.WithContext(ctx).
		Table("recipes AS r").
		Select("r.id AS recipe_id, s.name AS supply_name").
		Joins("LEFT JOIN recipe_supplies AS rs ON rs.recipe_id = r.id").
		Joins("LEFT JOIN supplies AS s ON s.id = rs.supply_id").
		Order("r.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) GetIngredientRows(ctx context.Context, recipeID uint) ([]IngredientRow, error) {
	var rows []IngredientRow
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients AS ri").
		Select("ri.recipe_id AS recipe_id, i.name AS ingredient_name, ri.amount_units, i.price, i.item_type").
		Joins("JOIN ingredients AS i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id = ?", recipeID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) GetSupplyRows(ctx context.Context, recipeID uint) ([]SupplyRow, error) {
	var rows []SupplyRow
	if err := r.db.WithContext(ctx).
		Table("recipe_supplies AS rs").
		Select("rs.recipe_id AS recipe_id, s.name AS supply_name").
		Joins("JOIN supplies AS s ON s.id = rs.supply_id").
		Where("rs.recipe_id = ?", recipeID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	// Create inserts the recipe row and its link rows in one transaction;
	// the link rows pick up the generated recipe id.
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]interface{}{
				"name":         recipe.Name,
				"instructions": recipe.Instructions,
				"time":         recipe.Time,
				"difficulty":   recipe.Difficulty,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Full replace of children: drop every link row, then reinsert.
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeSupply{}).Error; err != nil {
			return err
		}

		if len(recipe.Ingredients) > 0 {
			if err := tx.Create(recipe.Ingredients).Error; err != nil {
				return err
			}
		}
		if len(recipe.Supplies) > 0 {
			if err := tx.Create(recipe.Supplies).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeSupply{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
