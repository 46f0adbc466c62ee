package presenters

import (
	"Nutriplan-Backend/domain"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// HandleError writes err with the status derived from its kind. Validation
// failures carry their fields; conflicts carry the stored record.
func HandleError(c *fiber.Ctx, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
		Error:   err.Error(),
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		res.Errors = vErr.Fields
	}
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		res.Data = conflict.Existing
	}

	return c.Status(ErrorStatus(err)).JSON(res)
}

func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrTokenNotFound), errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUnauthorizedAccess), errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrMealPlanNotFound),
		errors.Is(err, domain.ErrMealNotFound),
		errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrFoodItemExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNoRecipes):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway
	}
	return http.StatusInternalServerError
}
