package review

import (
	"context"
	"errors"
	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		GetReviews(ctx context.Context, recipeID uint) ([]domain.ReviewResponse, error)
		CreateReview(ctx context.Context, req domain.CreateReviewRequest) (domain.CreateReviewResponse, error)
		DeleteReview(ctx context.Context, recipeID uint, reviewID string) error
		GetHighestReviewed(ctx context.Context) ([]domain.HighestReviewedEntry, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *reviewService) GetReviews(ctx context.Context, recipeID uint) ([]domain.ReviewResponse, error) {
	rows, err := s.reviewRepository.GetReviewsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.ReviewResponse, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, domain.ReviewResponse{
			RecipeName: row.RecipeName,
			Rating:     row.Rating,
			Review:     row.Review,
			Customer:   row.CustomerName,
		})
	}
	return reviews, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.CreateReviewRequest) (domain.CreateReviewResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateReviewResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CreateReviewResponse{}, err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return domain.CreateReviewResponse{}, domain.ErrCustomerNotFound
	}

	review := &entities.Review{
		ID:         uuid.New(),
		RecipeID:   req.RecipeID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Review:     req.Review,
	}
	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return domain.CreateReviewResponse{}, err
	}
	return domain.CreateReviewResponse{ReviewID: review.ID.String()}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, recipeID uint, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	if err := s.reviewRepository.DeleteReview(ctx, recipeID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}
	return nil
}

func (s *reviewService) GetHighestReviewed(ctx context.Context) ([]domain.HighestReviewedEntry, error) {
	rows, err := s.reviewRepository.GetHighestReviewed(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.HighestReviewedEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.HighestReviewedEntry{
			Recipe:        row.Recipe,
			Review:        row.Review,
			Rating:        row.Rating,
			AverageRating: row.AvgRating,
		})
	}
	return entries, nil
}
