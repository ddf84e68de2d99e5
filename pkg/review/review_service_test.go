package review

import (
	"context"
	"errors"
	"fmt"
	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/pkg/recipe"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Recipe{},
		&entities.Customer{},
		&entities.Review{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type reviewFixture struct {
	db       *gorm.DB
	service  ReviewService
	recipe   *entities.Recipe
	customer *entities.Customer
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	db := newTestDB(t)
	service := NewReviewService(NewReviewRepository(db), recipe.NewRecipeRepository(db))

	rec := &entities.Recipe{Name: "Pancakes", Time: 15, Difficulty: "easy"}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	cust := &entities.Customer{ID: uuid.New(), CustomerName: "alice"}
	if err := db.Create(cust).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return &reviewFixture{db: db, service: service, recipe: rec, customer: cust}
}

func (f *reviewFixture) createReview(t *testing.T, recipeID uint, rating int, text string) string {
	t.Helper()

	created, err := f.service.CreateReview(context.Background(), domain.CreateReviewRequest{
		RecipeID:   recipeID,
		CustomerID: f.customer.ID.String(),
		Rating:     rating,
		Review:     text,
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	return created.ReviewID
}

func TestCreateAndGetReviews(t *testing.T) {
	t.Parallel()

	f := newReviewFixture(t)
	f.createReview(t, f.recipe.ID, 5, "fluffy and golden")

	reviews, err := f.service.GetReviews(context.Background(), f.recipe.ID)
	if err != nil {
		t.Fatalf("get reviews: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	got := reviews[0]
	if got.RecipeName != "Pancakes" || got.Rating != 5 || got.Review != "fluffy and golden" || got.Customer != "alice" {
		t.Fatalf("unexpected review row: %+v", got)
	}
}

func TestCreateReviewForUnknownRecipe(t *testing.T) {
	t.Parallel()

	f := newReviewFixture(t)

	_, err := f.service.CreateReview(context.Background(), domain.CreateReviewRequest{
		RecipeID:   99999,
		CustomerID: f.customer.ID.String(),
		Rating:     4,
	})
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestDeleteReview(t *testing.T) {
	t.Parallel()

	f := newReviewFixture(t)
	ctx := context.Background()
	reviewID := f.createReview(t, f.recipe.ID, 3, "decent")

	if err := f.service.DeleteReview(ctx, f.recipe.ID, reviewID); err != nil {
		t.Fatalf("delete review: %v", err)
	}

	reviews, err := f.service.GetReviews(ctx, f.recipe.ID)
	if err != nil {
		t.Fatalf("get reviews: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected review gone, got %d", len(reviews))
	}

	if err := f.service.DeleteReview(ctx, f.recipe.ID, reviewID); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound on second delete, got %v", err)
	}
	if err := f.service.DeleteReview(ctx, f.recipe.ID, "not-a-uuid"); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound for malformed id, got %v", err)
	}
}

func TestDeleteReviewScopedToRecipe(t *testing.T) {
	t.Parallel()

	f := newReviewFixture(t)
	reviewID := f.createReview(t, f.recipe.ID, 4, "")

	other := &entities.Recipe{Name: "Bread", Time: 120, Difficulty: "hard"}
	if err := f.db.Create(other).Error; err != nil {
		t.Fatalf("seed second recipe: %v", err)
	}

	if err := f.service.DeleteReview(context.Background(), other.ID, reviewID); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound for mismatched recipe, got %v", err)
	}
}

func TestGetHighestReviewedCapsAtThreePerRecipe(t *testing.T) {
	t.Parallel()

	f := newReviewFixture(t)
	ctx := context.Background()

	for _, rating := range []int{5, 4, 3, 2} {
		f.createReview(t, f.recipe.ID, rating, fmt.Sprintf("rated %d", rating))
	}

	other := &entities.Recipe{Name: "Bread", Time: 120, Difficulty: "hard"}
	if err := f.db.Create(other).Error; err != nil {
		t.Fatalf("seed second recipe: %v", err)
	}
	f.createReview(t, other.ID, 2, "dense")

	entries, err := f.service.GetHighestReviewed(ctx)
	if err != nil {
		t.Fatalf("get highest reviewed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 3 pancake entries plus 1 bread entry, got %d", len(entries))
	}

	var pancakes []domain.HighestReviewedEntry
	for _, entry := range entries {
		if entry.Recipe == "Pancakes" {
			pancakes = append(pancakes, entry)
		}
	}
	if len(pancakes) != 3 {
		t.Fatalf("expected 3 pancake reviews, got %d", len(pancakes))
	}
	for i, wantRating := range []int{5, 4, 3} {
		if pancakes[i].Rating != wantRating {
			t.Fatalf("expected pancake review %d to have rating %d, got %d", i, wantRating, pancakes[i].Rating)
		}
		// AVG over all four ratings: (5+4+3+2)/4.
		if pancakes[i].AverageRating != 3.5 {
			t.Fatalf("expected average 3.5, got %v", pancakes[i].AverageRating)
		}
	}
}
