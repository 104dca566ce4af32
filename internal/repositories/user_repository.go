package repositories

import "todoapp/internal/models"

// UserRepository defines the interface for user data access. Finders
// return (nil, nil) when no row matches so the caller owns the decision of
// what a miss means.
type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindActiveByID(id string) (*models.User, error)
}
