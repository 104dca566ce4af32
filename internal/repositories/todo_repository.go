package repositories

import "todoapp/internal/models"

// TodoFilter narrows FindAll results. Zero values mean "no predicate"; all
// provided predicates are ANDed together.
type TodoFilter struct {
	Status     string
	SearchTerm string
}

// TodoRepository defines the interface for todo data access. FindByID
// returns (nil, nil) when no row matches.
type TodoRepository interface {
	Create(todo *models.Todo) error
	FindAll(filter TodoFilter) ([]models.Todo, error)
	FindByID(id string) (*models.Todo, error)
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}
