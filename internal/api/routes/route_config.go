package routes

import (
	"meal-planner/internal/api/handlers"
	"meal-planner/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	CustomerHandler   handlers.CustomerHandler
	CartHandler       handlers.CartHandler
	ReviewHandler     handlers.ReviewHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Ingredients()
	c.Customers()
	c.Carts()
	c.Reviews()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	// static paths before the :id wildcard
	{
		recipes.Get("/suggestions", c.RecipeHandler.GetSuggestions)
		recipes.Get("/highest-reviewed", c.ReviewHandler.GetHighestReviewed)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.SearchIngredients)
	}
}

func (c *Config) Customers() {
	customers := c.App.Group("/api/v1/customers")
	{
		customers.Post("", c.CustomerHandler.RegisterCustomer)
	}
}

func (c *Config) Carts() {
	carts := c.App.Group("/api/v1/carts")
	{
		carts.Post("", c.CartHandler.CreateCart)
		carts.Post("/:id/items/:itemID", c.CartHandler.SetItemQuantity)
		carts.Post("/:id/checkout", c.CartHandler.Checkout)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews")
	{
		reviews.Get("/:recipeID", c.ReviewHandler.GetReviews)
		reviews.Post("", c.ReviewHandler.CreateReview)
		reviews.Delete("/:recipeID/:reviewID", c.ReviewHandler.DeleteReview)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, welcome to the meal planner"})
	})
}
