package handlers

import (
	"todoapp/internal/apperrors"
	"todoapp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
// These routes bypass the auth gate.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// HandleRegister handles new user registration and issues a bearer token.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}
	if err := validateStruct(h.validate, input); err != nil {
		return err
	}

	env, err := h.authService.Register(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(env)
}

// HandleLogin handles user login and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}
	if err := validateStruct(h.validate, input); err != nil {
		return err
	}

	env, err := h.authService.Login(input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}
