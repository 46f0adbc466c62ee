package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// GeneratedMealTypes are the slots filled for every day of a generated plan,
// in creation order. Snacks only appear through manual edits.
var GeneratedMealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

var (
	MessageSuccessGenerateMealPlan = "meal plan generated successfully"
	MessageSuccessGetMealPlans     = "meal plans retrieved successfully"
	MessageSuccessGetMealPlan      = "meal plan retrieved successfully"
	MessageSuccessUpdateMealPlan   = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan   = "meal plan deleted successfully"

	MessageFailedGenerateMealPlan = "failed to generate meal plan"
	MessageFailedGetMealPlans     = "failed to retrieve meal plans"
	MessageFailedGetMealPlan      = "failed to retrieve meal plan"
	MessageFailedUpdateMealPlan   = "failed to update meal plan"
	MessageFailedDeleteMealPlan   = "failed to delete meal plan"

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrMealNotFound     = errors.New("meal not found in meal plan")
)

// MealTypeOrder ranks slots within a day.
func MealTypeOrder(t string) int {
	switch t {
	case MealTypeBreakfast:
		return 0
	case MealTypeLunch:
		return 1
	case MealTypeDinner:
		return 2
	case MealTypeSnack:
		return 3
	}
	return 4
}

func IsMealType(t string) bool {
	return MealTypeOrder(t) < 4
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

type (
	GenerateMealPlanRequest struct {
		StartDate string `json:"startDate" validate:"required"`
		EndDate   string `json:"endDate" validate:"required"`
	}

	GetMealPlansRequest struct {
		StartDate string `query:"startDate" validate:"required"`
		EndDate   string `query:"endDate" validate:"required"`
	}

	UpdateMealRequest struct {
		ID       string  `json:"id" validate:"required,uuid"`
		Type     *string `json:"type" validate:"omitempty,meal_type"`
		RecipeID *string `json:"recipeId" validate:"omitempty,uuid"`
	}

	UpdateMealPlanRequest struct {
		Meals []UpdateMealRequest `json:"meals" validate:"required,min=1,dive"`
	}

	MealSummary struct {
		ID         string `json:"id"`
		RecipeID   string `json:"recipeId"`
		RecipeName string `json:"recipeName"`
		Type       string `json:"type"`
		Date       string `json:"date"`
	}

	MealPlanSummary struct {
		ID        string        `json:"id"`
		StartDate string        `json:"startDate"`
		EndDate   string        `json:"endDate"`
		Meals     []MealSummary `json:"meals"`
	}

	MealDetail struct {
		ID         string           `json:"id"`
		Type       string           `json:"type"`
		RecipeName string           `json:"recipeName"`
		RecipeID   string           `json:"recipeId"`
		Date       string           `json:"date"`
		Calories   float64          `json:"calories"`
		Protein    float64          `json:"protein"`
		Carbs      float64          `json:"carbs"`
		Fat        float64          `json:"fat"`
		Nutrients  []NutrientAmount `json:"nutrients"`
	}

	MealPlan struct {
		ID        string       `json:"id"`
		StartDate string       `json:"startDate"`
		EndDate   string       `json:"endDate"`
		Meals     []MealDetail `json:"meals"`
	}
)
