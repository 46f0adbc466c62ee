package handlers

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/internal/api/presenters"
	"Nutriplan-Backend/pkg/food"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		SearchFoods(c *fiber.Ctx) error
		GetFoodItem(c *fiber.Ctx) error
		IngestFoodItem(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
	}
)

func NewFoodHandler(foodService food.FoodService) FoodHandler {
	return &foodHandler{
		foodService: foodService,
	}
}

func (h *foodHandler) SearchFoods(c *fiber.Ctx) error {
	req := domain.FoodSearchRequest{Page: 1, PageSize: 20}
	if err := c.QueryParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchFoods, err)
	}

	res, err := h.foodService.SearchFoods(c.Context(), req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedSearchFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchFoods)
}

func (h *foodHandler) GetFoodItem(c *fiber.Ctx) error {
	res, err := h.foodService.ResolveFoodItem(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodItem)
}

func (h *foodHandler) IngestFoodItem(c *fiber.Ctx) error {
	req := new(domain.IngestFoodItemRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.foodService.IngestFoodItem(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemExists) {
			return presenters.HandleError(c, domain.MessageFoodItemExists, err)
		}
		return presenters.HandleError(c, domain.MessageFailedIngestFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessIngestFoodItem)
}
