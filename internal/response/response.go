package response

import (
	"errors"
	"log"

	"todoapp/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response body returned by every endpoint.
type Envelope struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// NewSuccess builds a success envelope. The body statusCode is always 200;
// the HTTP status on the wire may differ (e.g. 201 on creates).
func NewSuccess(message string, data interface{}) *Envelope {
	if message == "" {
		message = "Success"
	}
	return &Envelope{
		Success:    true,
		StatusCode: fiber.StatusOK,
		Message:    message,
		Data:       data,
	}
}

// NewFailure builds a failure envelope with a nil data field.
func NewFailure(statusCode int, message string) *Envelope {
	return &Envelope{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ErrorHandler is the single global filter at the HTTP boundary. Domain
// errors keep their status and message; everything else is surfaced as a
// generic 500 without leaking internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(NewFailure(appErr.StatusCode, appErr.Message))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(NewFailure(fiberErr.Code, fiberErr.Message))
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).
		JSON(NewFailure(fiber.StatusInternalServerError, "Internal Server Error"))
}
