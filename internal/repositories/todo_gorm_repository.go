package repositories

import (
	"errors"
	"fmt"
	"strings"

	"todoapp/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTodoRepository is a GORM implementation of TodoRepository.
type GORMTodoRepository struct {
	db *gorm.DB
}

// NewGORMTodoRepository creates a new instance of GORMTodoRepository.
func NewGORMTodoRepository(db *gorm.DB) *GORMTodoRepository {
	return &GORMTodoRepository{
		db: db,
	}
}

// Create creates a new todo in the database, assigning an id when the
// caller did not set one.
func (r *GORMTodoRepository) Create(todo *models.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	if err := r.db.Create(todo).Error; err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	return nil
}

// FindAll retrieves todos matching every provided predicate, newest first.
// The search term matches title or description case-insensitively;
// LOWER/LIKE is used instead of ILIKE so postgres and sqlite behave the
// same way.
func (r *GORMTodoRepository) FindAll(filter TodoFilter) ([]models.Todo, error) {
	query := r.db.Model(&models.Todo{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SearchTerm != "" {
		pattern := "%" + strings.ToLower(filter.SearchTerm) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	todos := make([]models.Todo, 0)
	if err := query.Order("created_at DESC").Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// FindByID retrieves a single todo by its id.
func (r *GORMTodoRepository) FindByID(id string) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.First(&todo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find todo by ID %s: %w", id, err)
	}
	return &todo, nil
}

// Update applies the given columns to the row. It deliberately does not
// inspect the affected-row count: a write against an unknown id silently
// matches zero rows, and callers detect that by re-reading.
func (r *GORMTodoRepository) Update(id string, fields map[string]interface{}) error {
	if err := r.db.Model(&models.Todo{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update todo %s: %w", id, err)
	}
	return nil
}

// Delete removes a todo by its id.
func (r *GORMTodoRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Todo{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", id, err)
	}
	return nil
}
