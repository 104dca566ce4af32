package services

import (
	"fmt"
	"log"

	"todoapp/internal/apperrors"
	"todoapp/internal/models"
	"todoapp/internal/repositories"
	"todoapp/internal/response"
	"todoapp/pkg/rabbitmq"
)

// CreateTodoInput is the payload for creating a todo.
type CreateTodoInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
}

// UpdateTodoInput is the payload for partially updating a todo. Only
// non-nil fields are applied.
type UpdateTodoInput struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
}

// TodoFilterInput narrows the todo listing.
type TodoFilterInput struct {
	SearchTerm string `query:"searchTerm"`
	Status     string `query:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
}

// TodoService orchestrates CRUD calls against the todo repository. Every
// operation returns a uniform success envelope; failures are domain errors
// rendered by the global error handler.
type TodoService struct {
	todoRepo repositories.TodoRepository
	mqClient *rabbitmq.Client
}

// NewTodoService creates a new TodoService. mqClient may be nil, in which
// case event publishing is skipped.
func NewTodoService(todoRepo repositories.TodoRepository, mqClient *rabbitmq.Client) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		mqClient: mqClient,
	}
}

// Create persists a new todo. Status defaults to PENDING when omitted.
func (s *TodoService) Create(input CreateTodoInput) (*response.Envelope, error) {
	status := models.TodoStatus(input.Status)
	if status == "" {
		status = models.StatusPending
	}

	todo := &models.Todo{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
	}
	if err := s.todoRepo.Create(todo); err != nil {
		return nil, err
	}

	s.publishEvent("todo.created", todo)
	return response.NewSuccess("Todo Created", todo), nil
}

// FindAll retrieves todos matching the provided filter, newest first.
func (s *TodoService) FindAll(filter TodoFilterInput) (*response.Envelope, error) {
	todos, err := s.todoRepo.FindAll(repositories.TodoFilter{
		Status:     filter.Status,
		SearchTerm: filter.SearchTerm,
	})
	if err != nil {
		return nil, err
	}
	return response.NewSuccess("Todos Retrieved", todos), nil
}

// FindByID retrieves a single todo.
func (s *TodoService) FindByID(id string) (*response.Envelope, error) {
	todo, err := s.todoRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Todo with ID %s not found", id))
	}
	return response.NewSuccess("Todo Retrieved", todo), nil
}

// Update applies only the provided fields. The write matches zero rows for
// an unknown id without reporting it; the re-read afterwards is what
// decides existence.
func (s *TodoService) Update(id string, input UpdateTodoInput) (*response.Envelope, error) {
	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	if len(fields) > 0 {
		if err := s.todoRepo.Update(id, fields); err != nil {
			return nil, err
		}
	}

	todo, err := s.todoRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Todo with ID %s not found", id))
	}

	s.publishEvent("todo.updated", todo)
	return response.NewSuccess("Todo Updated", todo), nil
}

// Delete removes a todo, checking explicitly that it exists first.
func (s *TodoService) Delete(id string) (*response.Envelope, error) {
	todo, err := s.todoRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Todo with ID %s not found", id))
	}

	if err := s.todoRepo.Delete(id); err != nil {
		return nil, err
	}

	s.publishEvent("todo.deleted", todo)
	return response.NewSuccess("Todo Deleted", nil), nil
}

// publishEvent publishes a todo lifecycle event. Publishing is best
// effort: failures are logged and never fail the request.
func (s *TodoService) publishEvent(event string, todo *models.Todo) {
	if s.mqClient == nil {
		return
	}

	payload := map[string]interface{}{
		"todoID": todo.ID,
		"title":  todo.Title,
		"status": todo.Status,
	}
	if err := s.mqClient.PublishTodoEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for todo %s: %v", event, todo.ID, err)
	}
}
