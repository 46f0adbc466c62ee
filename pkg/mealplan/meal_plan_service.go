package mealplan

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/entities"
	"Nutriplan-Backend/internal/utils"
	"Nutriplan-Backend/pkg/recipe"
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest, userID string) (domain.MealPlan, error)
		GetMealPlan(ctx context.Context, id string, userID string) (domain.MealPlan, error)
		GetMealPlans(ctx context.Context, req domain.GetMealPlansRequest, userID string) ([]domain.MealPlanSummary, error)
		UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlan, error)
		DeleteMealPlan(ctx context.Context, id string, userID string) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		recipeRepository   recipe.RecipeRepository
		validator          *validator.Validate
		// pick returns an index in [0, n).
		pick func(n int) int
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, recipeRepository recipe.RecipeRepository, validator *validator.Validate) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		recipeRepository:   recipeRepository,
		validator:          validator,
		pick:               rand.IntN,
	}
}

// GenerateMealPlan fills breakfast, lunch and dinner for every day in
// [startDate, endDate], drawing each recipe from the whole pool with
// replacement.
func (s *mealPlanService) GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest, userID string) (domain.MealPlan, error) {
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.MealPlan{}, err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlan{}, domain.ErrParseUUID
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return domain.MealPlan{}, err
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.MealPlan{}, domain.StorageError(err)
	}
	if len(recipes) == 0 {
		return domain.MealPlan{}, domain.ErrNoRecipes
	}

	days := dayCount(start, end)
	plan := &entities.MealPlan{
		ID:        uuid.New(),
		UserID:    userUUID,
		StartDate: start,
		EndDate:   end,
		Meals:     make([]*entities.Meal, 0, days*len(domain.GeneratedMealTypes)),
	}
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		for _, mealType := range domain.GeneratedMealTypes {
			r := recipes[s.pick(len(recipes))]
			plan.Meals = append(plan.Meals, &entities.Meal{
				ID:         uuid.New(),
				MealPlanID: plan.ID,
				RecipeID:   r.ID,
				Type:       mealType,
				Date:       date,
				Recipe:     r,
			})
		}
	}

	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return domain.MealPlan{}, domain.StorageError(err)
	}
	log.Infof("generated meal plan %s with %d meals for user %s", plan.ID, len(plan.Meals), userID)

	return materialize(plan), nil
}

func (s *mealPlanService) GetMealPlan(ctx context.Context, id string, userID string) (domain.MealPlan, error) {
	plan, err := s.ownedMealPlan(ctx, id, userID)
	if err != nil {
		return domain.MealPlan{}, err
	}
	return materialize(plan), nil
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, req domain.GetMealPlansRequest, userID string) ([]domain.MealPlanSummary, error) {
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	plans, err := s.mealPlanRepository.GetMealPlans(ctx, userID, start, end)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	res := make([]domain.MealPlanSummary, 0, len(plans))
	for _, plan := range plans {
		sortMeals(plan.Meals)
		summary := domain.MealPlanSummary{
			ID:        plan.ID.String(),
			StartDate: domain.FormatDateTime(plan.StartDate),
			EndDate:   domain.FormatDateTime(plan.EndDate),
			Meals:     make([]domain.MealSummary, 0, len(plan.Meals)),
		}
		for _, m := range plan.Meals {
			ms := domain.MealSummary{
				ID:       m.ID.String(),
				RecipeID: m.RecipeID.String(),
				Type:     m.Type,
				Date:     domain.FormatDateTime(m.Date),
			}
			if m.Recipe != nil {
				ms.RecipeName = m.Recipe.Name
			}
			summary.Meals = append(summary.Meals, ms)
		}
		res = append(res, summary)
	}
	return res, nil
}

// UpdateMealPlan reassigns the type and/or recipe of the listed meals. The
// three-meals-per-day shape is not enforced after an edit.
func (s *mealPlanService) UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlan, error) {
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.MealPlan{}, err
	}
	plan, err := s.ownedMealPlan(ctx, id, userID)
	if err != nil {
		return domain.MealPlan{}, err
	}

	byID := make(map[string]*entities.Meal, len(plan.Meals))
	for _, m := range plan.Meals {
		byID[m.ID.String()] = m
	}

	changed := make([]*entities.Meal, 0, len(req.Meals))
	for _, update := range req.Meals {
		meal, ok := byID[update.ID]
		if !ok {
			return domain.MealPlan{}, domain.ErrMealNotFound
		}
		if update.Type != nil {
			meal.Type = *update.Type
		}
		if update.RecipeID != nil {
			r, err := s.recipeRepository.GetRecipeByID(ctx, *update.RecipeID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.MealPlan{}, domain.ErrRecipeNotFound
				}
				return domain.MealPlan{}, domain.StorageError(err)
			}
			meal.RecipeID = r.ID
			meal.Recipe = r
		}
		changed = append(changed, meal)
	}

	if err := s.mealPlanRepository.UpdateMeals(ctx, changed); err != nil {
		return domain.MealPlan{}, domain.StorageError(err)
	}

	updated, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		return domain.MealPlan{}, domain.StorageError(err)
	}
	return materialize(updated), nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedMealPlan(ctx, id, userID); err != nil {
		return err
	}
	if err := s.mealPlanRepository.DeleteMealPlan(ctx, id); err != nil {
		return domain.StorageError(err)
	}
	return nil
}

func (s *mealPlanService) ownedMealPlan(ctx context.Context, id string, userID string) (*entities.MealPlan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.NewValidationError("id", "uuid")
	}

	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, domain.StorageError(err)
	}
	if plan.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return plan, nil
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := domain.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("startDate", "date")
	}
	end, err := domain.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("endDate", "date")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, domain.NewValidationError("endDate", "gtefield=startDate")
	}
	return start, end, nil
}

// dayCount returns the number of calendar days in [start, end]. Both are
// midnight UTC; Unix seconds avoid the time.Duration range limit.
func dayCount(start, end time.Time) int {
	return int((end.Unix()-start.Unix())/(24*60*60)) + 1
}

func sortMeals(meals []*entities.Meal) {
	sort.SliceStable(meals, func(i, j int) bool {
		if !meals[i].Date.Equal(meals[j].Date) {
			return meals[i].Date.Before(meals[j].Date)
		}
		return domain.MealTypeOrder(meals[i].Type) < domain.MealTypeOrder(meals[j].Type)
	})
}

// materialize reads nutrition from each recipe's blob at call time, so an
// edited recipe is reflected in every plan that uses it.
func materialize(plan *entities.MealPlan) domain.MealPlan {
	sortMeals(plan.Meals)

	res := domain.MealPlan{
		ID:        plan.ID.String(),
		StartDate: domain.FormatDateTime(plan.StartDate),
		EndDate:   domain.FormatDateTime(plan.EndDate),
		Meals:     make([]domain.MealDetail, 0, len(plan.Meals)),
	}
	for _, m := range plan.Meals {
		detail := domain.MealDetail{
			ID:        m.ID.String(),
			Type:      m.Type,
			RecipeID:  m.RecipeID.String(),
			Date:      domain.FormatDateTime(m.Date),
			Nutrients: []domain.NutrientAmount{},
		}
		if m.Recipe != nil {
			detail.RecipeName = m.Recipe.Name
			info, err := domain.ParseNutritionInfo(m.Recipe.NutritionInfo)
			if err != nil {
				log.Warnf("recipe %s has unreadable nutrition info: %v", m.Recipe.ID, err)
			}
			detail.Calories = info.Calories
			detail.Protein = info.Protein
			detail.Carbs = info.Carbs
			detail.Fat = info.Fat
			detail.Nutrients = info.Nutrients
		}
		res.Meals = append(res.Meals, detail)
	}
	return res
}
