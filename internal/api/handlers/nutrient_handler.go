package handlers

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/internal/api/presenters"
	"Nutriplan-Backend/pkg/nutrient"

	"github.com/gofiber/fiber/v2"
)

type (
	NutrientHandler interface {
		GetNutrients(c *fiber.Ctx) error
	}

	nutrientHandler struct {
		nutrientService nutrient.NutrientService
	}
)

func NewNutrientHandler(nutrientService nutrient.NutrientService) NutrientHandler {
	return &nutrientHandler{
		nutrientService: nutrientService,
	}
}

func (h *nutrientHandler) GetNutrients(c *fiber.Ctx) error {
	res, err := h.nutrientService.GetCatalog(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetNutrients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNutrients)
}
