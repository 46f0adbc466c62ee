package mealplan

import (
	"Nutriplan-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mealBatchSize keeps each meal INSERT well under the bind-variable limits
// of SQLite and Postgres.
const mealBatchSize = 500

type (
	MealPlanRepository interface {
		// CreateMealPlan writes the plan and its meals in one transaction.
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		// GetMealPlanByID preloads meals and their recipes. A miss returns
		// gorm.ErrRecordNotFound.
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		GetMealPlans(ctx context.Context, userID string, start, end time.Time) ([]*entities.MealPlan, error)
		UpdateMeals(ctx context.Context, meals []*entities.Meal) error
		DeleteMealPlan(ctx context.Context, id string) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(plan).Error; err != nil {
			return err
		}
		if len(plan.Meals) == 0 {
			return nil
		}
		for _, m := range plan.Meals {
			m.MealPlanID = plan.ID
		}
		return tx.Omit(clause.Associations).CreateInBatches(plan.Meals, mealBatchSize).Error
	})
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Meals").
		Preload("Meals.Recipe").
		Where("id = ?", id).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, userID string, start, end time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Meals").
		Preload("Meals.Recipe").
		Where("user_id = ? AND start_date >= ? AND end_date <= ?", userID, start, end).
		Order("start_date asc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) UpdateMeals(ctx context.Context, meals []*entities.Meal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range meals {
			if err := tx.Model(&entities.Meal{}).
				Where("id = ?", m.ID).
				Updates(map[string]any{
					"type":       m.Type,
					"recipe_id":  m.RecipeID,
					"updated_at": time.Now(),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", id).Delete(&entities.Meal{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.MealPlan{}).Error
	})
}
