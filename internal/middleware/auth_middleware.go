package middleware

import (
	"strings"

	"todoapp/internal/apperrors"
	"todoapp/internal/models"
	"todoapp/internal/repositories"
	"todoapp/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware guarding routes behind bearer-token
// auth. The user is re-read from the database on every request, so a
// deactivated account is locked out on its very next call.
func AuthRequired(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c.Get("Authorization"))

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			return err
		}

		userID, _ := claims["id"].(string)
		user, err := userRepo.FindActiveByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperrors.NewUnauthorized("Unauthorized Access Detected")
		}

		c.Locals("user", models.AuthUser{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		})
		return c.Next()
	}
}

// extractToken reads an Authorization header of form "Bearer <token>" and
// returns an empty string for anything else. Empty means unauthenticated.
func extractToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
