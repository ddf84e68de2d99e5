package domain

import (
	"errors"
)

var (
	MessageSuccessGetReviews         = "success get reviews"
	MessageSuccessCreateReview       = "review created successfully"
	MessageSuccessDeleteReview       = "review deleted successfully"
	MessageSuccessGetHighestReviewed = "success get highest reviewed recipes"

	MessageFailedGetReviews         = "failed to get reviews"
	MessageFailedCreateReview       = "failed to create review"
	MessageFailedDeleteReview       = "failed to delete review"
	MessageFailedGetHighestReviewed = "failed to get highest reviewed recipes"

	ErrReviewNotFound = errors.New("review not found")
)

type (
	CreateReviewRequest struct {
		RecipeID   uint   `json:"recipe_id" validate:"required"`
		CustomerID string `json:"customer_id" validate:"required,uuid"`
		Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
		Review     string `json:"review"`
	}

	CreateReviewResponse struct {
		ReviewID string `json:"review_id"`
	}

	ReviewResponse struct {
		RecipeName string `json:"recipe_name"`
		Rating     int    `json:"rating"`
		Review     string `json:"review"`
		Customer   string `json:"customer"`
	}

	// HighestReviewedEntry is one of the up-to-three best reviews of a recipe,
	// carrying the recipe-wide average rating alongside.
	HighestReviewedEntry struct {
		Recipe        string  `json:"recipe"`
		Review        string  `json:"review"`
		Rating        int     `json:"rating"`
		AverageRating float64 `json:"average_rating"`
	}
)
