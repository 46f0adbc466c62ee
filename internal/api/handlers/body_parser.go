package handlers

import (
	"Nutriplan-Backend/domain"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the request body into out. A JSON value of the wrong
// type becomes a *domain.ValidationError on that field; any other decode
// failure still matches domain.ErrValidation.
func parseBody(c *fiber.Ctx, out any) error {
	err := c.BodyParser(out)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewValidationError(typeErr.Field, "type="+typeErr.Type.Kind().String())
	}
	return fmt.Errorf("%w: %w", domain.ErrValidation, err)
}
