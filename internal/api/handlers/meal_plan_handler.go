package handlers

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/internal/api/presenters"
	"Nutriplan-Backend/pkg/mealplan"

	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		GenerateMealPlan(c *fiber.Ctx) error
		GetMealPlans(c *fiber.Ctx) error
		GetMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
	}
}

func (h *mealPlanHandler) GenerateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateMealPlanRequest)

	if err := parseBody(c, req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealPlanService.GenerateMealPlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGenerateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateMealPlan)
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GetMealPlansRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, err)
	}

	res, err := h.mealPlanService.GetMealPlans(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetMealPlan(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlan)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateMealPlanRequest)

	if err := parseBody(c, req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealPlanService.UpdateMealPlan(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}
