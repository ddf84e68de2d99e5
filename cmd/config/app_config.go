package config

import (
	"meal-planner/internal/api/handlers"
	"meal-planner/internal/api/routes"
	"meal-planner/internal/middleware"
	"meal-planner/internal/utils"
	"meal-planner/pkg/cart"
	"meal-planner/pkg/catalog"
	"meal-planner/pkg/customer"
	"meal-planner/pkg/payment"
	"meal-planner/pkg/recipe"
	"meal-planner/pkg/review"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	catalogRepository := catalog.NewCatalogRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	customerRepository := customer.NewCustomerRepository(db)
	cartRepository := cart.NewCartRepository(db)
	reviewRepository := review.NewReviewRepository(db)

	// Service
	gateway := payment.NewMidtransGateway()
	catalogService := catalog.NewCatalogService(catalogRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, catalogService)
	customerService := customer.NewCustomerService(customerRepository)
	cartService := cart.NewCartService(cartRepository, customerRepository, catalogRepository, gateway)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(catalogService)
	customerHandler := handlers.NewCustomerHandler(customerService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		CustomerHandler:   customerHandler,
		CartHandler:       cartHandler,
		ReviewHandler:     reviewHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
