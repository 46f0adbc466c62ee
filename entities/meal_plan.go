package entities

import (
	"github.com/google/uuid"
	"time"
)

type MealPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	StartDate time.Time `gorm:"type:timestamp" json:"start_date"`
	EndDate   time.Time `gorm:"type:timestamp" json:"end_date"`

	Meals []*Meal `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Meal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MealPlanID uuid.UUID `gorm:"type:uuid;index;not null" json:"meal_plan_id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	Type       string    `gorm:"type:varchar(16);not null" json:"type"` // breakfast, lunch, dinner, snack
	Date       time.Time `gorm:"type:timestamp" json:"date"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
