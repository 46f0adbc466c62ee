package routes

import (
	"Nutriplan-Backend/internal/api/handlers"
	"Nutriplan-Backend/internal/middleware"
	"Nutriplan-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	FoodHandler     handlers.FoodHandler
	NutrientHandler handlers.NutrientHandler
	MealPlanHandler handlers.MealPlanHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.USDA()
	c.MealPlans()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) USDA() {
	usda := c.App.Group("/api/v1/usda", c.Middleware.AuthMiddleware(c.JWTService))
	usda.Get("/nutrients", c.NutrientHandler.GetNutrients)

	usda.Get("/foods", c.FoodHandler.SearchFoods)
	usda.Post("/foods", c.FoodHandler.IngestFoodItem)
	usda.Get("/foods/:id", c.FoodHandler.GetFoodItem)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))
	mealPlans.Get("", c.MealPlanHandler.GetMealPlans)
	mealPlans.Post("/generate", c.MealPlanHandler.GenerateMealPlan)
	mealPlans.Get("/:id", c.MealPlanHandler.GetMealPlan)
	mealPlans.Put("/:id", c.MealPlanHandler.UpdateMealPlan)
	mealPlans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
}
