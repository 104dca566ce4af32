package handlers

import (
	"fmt"
	"strings"

	"todoapp/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// validateStruct runs the declared field constraints and folds failures
// into a single Validation error.
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidation("Validation failed")
	}

	details := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
	}
	return apperrors.NewValidation("Validation failed: " + strings.Join(details, "; "))
}

// parseID validates a path parameter as a well-formed uuid before any
// lookup happens.
func parseID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.NewValidation(fmt.Sprintf("'%s' is not a valid todo id", id))
	}
	return id, nil
}
