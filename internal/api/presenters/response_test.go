package presenters

import (
	"Nutriplan-Backend/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.NewValidationError("fdcId", "required"), http.StatusBadRequest},
		{domain.ErrTokenInvalid, http.StatusUnauthorized},
		{domain.ErrUnauthorizedAccess, http.StatusForbidden},
		{domain.ErrMealPlanNotFound, http.StatusNotFound},
		{domain.ErrRecipeNotFound, http.StatusNotFound},
		{&domain.UpstreamError{Op: domain.OpFetchFood, StatusCode: http.StatusNotFound}, http.StatusNotFound},
		{&domain.UpstreamError{Op: domain.OpFetchFood, StatusCode: http.StatusInternalServerError}, http.StatusBadGateway},
		{&domain.UpstreamError{Op: domain.OpSearchFoods, Err: errors.New("eof")}, http.StatusBadGateway},
		{&domain.ConflictError{Existing: domain.FoodItem{FdcID: "1"}}, http.StatusConflict},
		{domain.ErrNoRecipes, http.StatusUnprocessableEntity},
		{domain.StorageError(errors.New("db down")), http.StatusInternalServerError},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ErrorStatus(tc.err), tc.err.Error())
	}
}

func TestHandleErrorBody(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return HandleError(c, "failed", &domain.ConflictError{Existing: domain.FoodItem{FdcID: "7", Nutrients: []domain.FoodNutrient{}}})
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return HandleError(c, "failed", domain.NewValidationError("description", "required"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body struct {
		Status bool            `json:"status"`
		Data   domain.FoodItem `json:"data"`
		Error  string          `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, "7", body.Data.FdcID)
	assert.NotEmpty(t, body.Error)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/invalid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var invalid Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&invalid))
	assert.Equal(t, map[string]string{"description": "required"}, invalid.Errors)
}
