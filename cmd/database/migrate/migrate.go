package migration

import (
	"Nutriplan-Backend/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates or updates every table. Order matters: referenced tables
// come before the tables holding their foreign keys.
func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"nutrient definition", &entities.NutrientDefinition{}},
		{"food item", &entities.FoodItem{}},
		{"nutrient amount", &entities.NutrientAmount{}},
		{"recipe", &entities.Recipe{}},
		{"meal plan", &entities.MealPlan{}},
		{"meal", &entities.Meal{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s database: %w", m.name, err)
		}
	}

	log.Info("Database migration complete")
	return nil
}
