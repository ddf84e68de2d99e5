package review

import (
	"context"
	"meal-planner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		DeleteReview(ctx context.Context, recipeID uint, reviewID uuid.UUID) error
		GetReviewsByRecipe(ctx context.Context, recipeID uint) ([]ReviewRow, error)
		GetHighestReviewed(ctx context.Context) ([]HighestReviewedRow, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}

	ReviewRow struct {
		RecipeName   string
		Rating       int
		Review       string
		CustomerName string
	}

	HighestReviewedRow struct {
		Recipe    string
		Review    string
		Rating    int
		AvgRating float64
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) DeleteReview(ctx context.Context, recipeID uint, reviewID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND id = ?", recipeID, reviewID).
		Delete(&entities.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) GetReviewsByRecipe(ctx context.Context, recipeID uint) ([]ReviewRow, error) {
	var rows []ReviewRow
	if err := r.db.WithContext(ctx).
		Table("reviews").
		Select("recipes.name AS recipe_name, reviews.rating, reviews.review, customers.customer_name").
		Joins("INNER JOIN customers ON customers.id = reviews.customer_id").
		Joins("INNER JOIN recipes ON recipes.id = reviews.recipe_id").
		Where("reviews.recipe_id = ?", recipeID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetHighestReviewed returns the best three reviews per recipe together with
// the recipe-wide average rating.
func (r *reviewRepository) GetHighestReviewed(ctx context.Context) ([]HighestReviewedRow, error) {
	var rows []HighestReviewedRow
	if err := r.db.WithContext(ctx).Raw(`
		WITH ranked_reviews AS (
			SELECT reviews.review,
			       reviews.rating,
			       reviews.recipe_id,
			       recipes.name AS recipe,
			       AVG(reviews.rating) OVER (PARTITION BY reviews.recipe_id) AS avg_rating,
			       ROW_NUMBER() OVER (PARTITION BY reviews.recipe_id ORDER BY reviews.rating DESC, reviews.created_at ASC) AS row_num
			FROM reviews
			INNER JOIN recipes ON recipes.id = reviews.recipe_id
		)
		SELECT recipe, review, rating, avg_rating
		FROM ranked_reviews
		WHERE row_num <= 3
		ORDER BY recipe, row_num`).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
