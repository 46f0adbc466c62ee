package config

import (
	"Nutriplan-Backend/internal/api/handlers"
	"Nutriplan-Backend/internal/api/routes"
	"Nutriplan-Backend/internal/middleware"
	"Nutriplan-Backend/internal/utils"
	"Nutriplan-Backend/pkg/food"
	"Nutriplan-Backend/pkg/jwt"
	"Nutriplan-Backend/pkg/mealplan"
	"Nutriplan-Backend/pkg/nutrient"
	"Nutriplan-Backend/pkg/recipe"
	"Nutriplan-Backend/pkg/usda"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
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
	logFile := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		logFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("TIME_ZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	usdaClient := usda.NewUSDAClient(USDAConfig())

	// Repository
	nutrientRepository := nutrient.NewNutrientRepository(db)
	foodRepository := food.NewFoodRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	nutrientService := nutrient.NewNutrientService(nutrientRepository, usdaClient)
	foodService := food.NewFoodService(foodRepository, usdaClient, validator)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, recipeRepository, validator)

	// Handler
	nutrientHandler := handlers.NewNutrientHandler(nutrientService)
	foodHandler := handlers.NewFoodHandler(foodService)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		NutrientHandler: nutrientHandler,
		FoodHandler:     foodHandler,
		MealPlanHandler: mealPlanHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// USDAConfig builds the upstream client settings from the loaded config.
// Unset or unparsable numbers leave the limiter and timeout disabled.
func USDAConfig() usda.Config {
	cfg := usda.Config{
		BaseURL: utils.GetConfig("USDA_API_URL"),
		APIKey:  utils.GetConfig("USDA_API_KEY"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = usda.DefaultBaseURL
	}
	if cfg.APIKey == "" {
		log.Warn("USDA_API_KEY is not set")
	}

	if v := utils.GetConfig("USDA_REQUESTS_PER_HOUR"); v != "" {
		rph, err := strconv.Atoi(v)
		if err != nil {
			log.Warnf("invalid USDA_REQUESTS_PER_HOUR %q: %v", v, err)
		} else {
			cfg.RequestsPerHour = rph
		}
	}
	if v := utils.GetConfig("USDA_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			log.Warnf("invalid USDA_TIMEOUT_SECONDS %q: %v", v, err)
		} else {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}
