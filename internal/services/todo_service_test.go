package services_test

import (
	"testing"

	"todoapp/internal/apperrors"
	"todoapp/internal/models"
	"todoapp/internal/repositories"
	"todoapp/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTodoRepository is a mock implementation of repositories.TodoRepository
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) Create(todo *models.Todo) error {
	args := m.Called(todo)
	return args.Error(0)
}

func (m *MockTodoRepository) FindAll(filter repositories.TodoFilter) ([]models.Todo, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Todo), args.Error(1)
}

func (m *MockTodoRepository) FindByID(id string) (*models.Todo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *MockTodoRepository) Update(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockTodoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestTodoService_CreateDefaultsStatus(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Todo")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Todo).ID = "todo-1"
	}).Return(nil).Once()

	env, err := todoService.Create(services.CreateTodoInput{Title: "Buy milk"})
	assert.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "Todo Created", env.Message)

	todo, ok := env.Data.(*models.Todo)
	assert.True(t, ok)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, models.StatusPending, todo.Status)
	assert.Nil(t, todo.Description)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_CreateKeepsExplicitStatus(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Todo")).Return(nil).Once()

	env, err := todoService.Create(services.CreateTodoInput{
		Title:       "Ship release",
		Description: strPtr("cut the tag"),
		Status:      "DONE",
	})
	assert.NoError(t, err)

	todo := env.Data.(*models.Todo)
	assert.Equal(t, models.StatusDone, todo.Status)
	assert.Equal(t, "cut the tag", *todo.Description)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_FindAllPassesFilter(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	expected := []models.Todo{{ID: "todo-1", Title: "Buy milk"}}
	mockRepo.On("FindAll", repositories.TodoFilter{Status: "DONE", SearchTerm: "milk"}).Return(expected, nil).Once()

	env, err := todoService.FindAll(services.TodoFilterInput{Status: "DONE", SearchTerm: "milk"})
	assert.NoError(t, err)
	assert.Equal(t, "Todos Retrieved", env.Message)
	assert.Equal(t, expected, env.Data)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_FindByIDNotFound(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	mockRepo.On("FindByID", "missing-id").Return(nil, nil).Once()

	_, err := todoService.FindByID("missing-id")
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Contains(t, appErr.Message, "missing-id")
	mockRepo.AssertExpectations(t)
}

func TestTodoService_UpdateAppliesOnlyProvidedFields(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	updated := &models.Todo{ID: "todo-1", Title: "Buy milk", Status: models.StatusDone}
	mockRepo.On("Update", "todo-1", map[string]interface{}{"status": "DONE"}).Return(nil).Once()
	mockRepo.On("FindByID", "todo-1").Return(updated, nil).Once()

	env, err := todoService.Update("todo-1", services.UpdateTodoInput{Status: strPtr("DONE")})
	assert.NoError(t, err)
	assert.Equal(t, "Todo Updated", env.Message)
	assert.Equal(t, updated, env.Data)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_UpdateWithNoFieldsSkipsWrite(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	existing := &models.Todo{ID: "todo-1", Title: "Buy milk", Status: models.StatusPending}
	mockRepo.On("FindByID", "todo-1").Return(existing, nil).Once()

	env, err := todoService.Update("todo-1", services.UpdateTodoInput{})
	assert.NoError(t, err)
	assert.Equal(t, existing, env.Data)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_UpdateNotFoundByReRead(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	// The write succeeds (matching zero rows); only the re-read reports
	// the missing row.
	mockRepo.On("Update", "missing-id", map[string]interface{}{"title": "New title"}).Return(nil).Once()
	mockRepo.On("FindByID", "missing-id").Return(nil, nil).Once()

	_, err := todoService.Update("missing-id", services.UpdateTodoInput{Title: strPtr("New title")})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_Delete(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	existing := &models.Todo{ID: "todo-1", Title: "Buy milk"}
	mockRepo.On("FindByID", "todo-1").Return(existing, nil).Once()
	mockRepo.On("Delete", "todo-1").Return(nil).Once()

	env, err := todoService.Delete("todo-1")
	assert.NoError(t, err)
	assert.Equal(t, "Todo Deleted", env.Message)
	assert.Nil(t, env.Data)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_DeleteNotFound(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	todoService := services.NewTodoService(mockRepo, nil)

	mockRepo.On("FindByID", "missing-id").Return(nil, nil).Once()

	_, err := todoService.Delete("missing-id")
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	mockRepo.AssertExpectations(t)
}
