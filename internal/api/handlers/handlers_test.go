package handlers

import (
	"Nutriplan-Backend/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFoodService struct {
	lastSearch domain.FoodSearchRequest
	lastIngest domain.IngestFoodItemRequest
	item       domain.FoodItem
	err        error
}

func (s *stubFoodService) ResolveFoodItem(ctx context.Context, fdcID string) (domain.FoodItem, error) {
	return s.item, s.err
}

func (s *stubFoodService) SearchFoods(ctx context.Context, req domain.FoodSearchRequest) (domain.FoodSearchResult, error) {
	s.lastSearch = req
	return domain.FoodSearchResult{Foods: []domain.FoodSummary{}, CurrentPage: req.Page}, s.err
}

func (s *stubFoodService) IngestFoodItem(ctx context.Context, req domain.IngestFoodItemRequest) (domain.FoodItem, error) {
	s.lastIngest = req
	return s.item, s.err
}

type stubMealPlanService struct {
	userID string
	plan   domain.MealPlan
	err    error
}

func (s *stubMealPlanService) GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest, userID string) (domain.MealPlan, error) {
	s.userID = userID
	return s.plan, s.err
}

func (s *stubMealPlanService) GetMealPlan(ctx context.Context, id string, userID string) (domain.MealPlan, error) {
	s.userID = userID
	return s.plan, s.err
}

func (s *stubMealPlanService) GetMealPlans(ctx context.Context, req domain.GetMealPlansRequest, userID string) ([]domain.MealPlanSummary, error) {
	s.userID = userID
	return []domain.MealPlanSummary{}, s.err
}

func (s *stubMealPlanService) UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlan, error) {
	s.userID = userID
	return s.plan, s.err
}

func (s *stubMealPlanService) DeleteMealPlan(ctx context.Context, id string, userID string) error {
	s.userID = userID
	return s.err
}

func newTestApp(foods *stubFoodService, plans *stubMealPlanService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "user-1")
		return c.Next()
	})
	fh := NewFoodHandler(foods)
	app.Get("/foods", fh.SearchFoods)
	app.Post("/foods", fh.IngestFoodItem)
	app.Get("/foods/:id", fh.GetFoodItem)

	mh := NewMealPlanHandler(plans)
	app.Post("/meal-plans/generate", mh.GenerateMealPlan)
	app.Get("/meal-plans", mh.GetMealPlans)
	app.Get("/meal-plans/:id", mh.GetMealPlan)
	app.Put("/meal-plans/:id", mh.UpdateMealPlan)
	app.Delete("/meal-plans/:id", mh.DeleteMealPlan)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestSearchFoodsDefaults(t *testing.T) {
	foods := &stubFoodService{}
	app := newTestApp(foods, &stubMealPlanService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/foods?search=apple", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.FoodSearchRequest{Query: "apple", Page: 1, PageSize: 20}, foods.lastSearch)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/foods?search=apple&page=3&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, foods.lastSearch.Page)
	assert.Equal(t, 5, foods.lastSearch.PageSize)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/foods?page=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetFoodItemUpstreamNotFound(t *testing.T) {
	foods := &stubFoodService{err: &domain.UpstreamError{Op: domain.OpFetchFood, StatusCode: http.StatusNotFound, Detail: "no such food"}}
	app := newTestApp(foods, &stubMealPlanService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/foods/999999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, domain.MessageFailedGetFoodItem, body["message"])
	assert.Contains(t, body["error"], "no such food")
}

func TestGetFoodItemEmptyNutrients(t *testing.T) {
	foods := &stubFoodService{item: domain.FoodItem{FdcID: "1", Nutrients: []domain.FoodNutrient{}}}
	app := newTestApp(foods, &stubMealPlanService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/foods/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, []any{}, data["nutrients"])
}

func TestIngestFoodItem(t *testing.T) {
	foods := &stubFoodService{item: domain.FoodItem{FdcID: "171705", Nutrients: []domain.FoodNutrient{}}}
	app := newTestApp(foods, &stubMealPlanService{})

	req := httptest.NewRequest(http.MethodPost, "/foods", strings.NewReader(`{"fdcId":171705,"description":"Avocados, raw","servingSize":100}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, domain.FlexString("171705"), foods.lastIngest.FdcID)
	require.NotNil(t, foods.lastIngest.ServingSize)
	assert.Equal(t, 100.0, *foods.lastIngest.ServingSize)
}

func TestIngestFoodItemConflict(t *testing.T) {
	existing := domain.FoodItem{FdcID: "171705", Description: "Avocados, raw", Nutrients: []domain.FoodNutrient{}}
	foods := &stubFoodService{err: &domain.ConflictError{Existing: existing}}
	app := newTestApp(foods, &stubMealPlanService{})

	req := httptest.NewRequest(http.MethodPost, "/foods", strings.NewReader(`{"fdcId":"171705","description":"Avocados, raw"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, domain.MessageFoodItemExists, body["message"])
	assert.Equal(t, "Avocados, raw", body["data"].(map[string]any)["description"])
}

func TestIngestFoodItemMalformedBody(t *testing.T) {
	app := newTestApp(&stubFoodService{}, &stubMealPlanService{})

	req := httptest.NewRequest(http.MethodPost, "/foods", strings.NewReader(`{"fdcId":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateMealPlanHandler(t *testing.T) {
	plans := &stubMealPlanService{plan: domain.MealPlan{ID: "p1", Meals: []domain.MealDetail{}}}
	app := newTestApp(&stubFoodService{}, plans)

	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate", strings.NewReader(`{"startDate":"2024-01-01","endDate":"2024-01-02"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "user-1", plans.userID)
}

func TestMealPlanHandlerErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		method string
		path   string
		want   int
	}{
		{"no recipes", domain.ErrNoRecipes, http.MethodPost, "/meal-plans/generate", http.StatusUnprocessableEntity},
		{"not found", domain.ErrMealPlanNotFound, http.MethodGet, "/meal-plans/x", http.StatusNotFound},
		{"forbidden", domain.ErrUnauthorizedAccess, http.MethodDelete, "/meal-plans/x", http.StatusForbidden},
		{"storage", domain.StorageError(assert.AnError), http.MethodGet, "/meal-plans?startDate=a&endDate=b", http.StatusInternalServerError},
		{"recipe", domain.ErrRecipeNotFound, http.MethodPut, "/meal-plans/x", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&stubFoodService{}, &stubMealPlanService{err: tc.err})
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestIngestFoodItemWrongFieldType(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
		rule  string
	}{
		{"description number", `{"fdcId":"1","description":5}`, "description", "type=string"},
		{"serving size string", `{"fdcId":"1","description":"Kale","servingSize":"big"}`, "servingSize", "type=float64"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			foods := &stubFoodService{}
			app := newTestApp(foods, &stubMealPlanService{})

			req := httptest.NewRequest(http.MethodPost, "/foods", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decode(t, resp)
			assert.Equal(t, domain.MessageFailedBodyRequest, body["message"])
			assert.Equal(t, map[string]any{tc.field: tc.rule}, body["errors"])
			assert.Empty(t, foods.lastIngest.FdcID)
		})
	}
}
