package handlers

import (
	"todoapp/internal/apperrors"
	"todoapp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TodoHandler handles HTTP requests for todos.
type TodoHandler struct {
	service  *services.TodoService
	validate *validator.Validate
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(service *services.TodoService) *TodoHandler {
	return &TodoHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the todo routes with the Fiber app. The router
// passed in is expected to carry the auth middleware.
func (h *TodoHandler) RegisterRoutes(router fiber.Router) {
	todoRoutes := router.Group("/todos")
	todoRoutes.Post("/", h.HandleCreate)
	todoRoutes.Get("/", h.HandleList)
	todoRoutes.Get("/:id", h.HandleGetByID)
	todoRoutes.Put("/:id", h.HandleUpdate)
	todoRoutes.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates a new todo.
func (h *TodoHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.CreateTodoInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}
	if err := validateStruct(h.validate, input); err != nil {
		return err
	}

	env, err := h.service.Create(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(env)
}

// HandleList retrieves todos matching the optional status and searchTerm
// query filters.
func (h *TodoHandler) HandleList(c *fiber.Ctx) error {
	var filter services.TodoFilterInput
	if err := c.QueryParser(&filter); err != nil {
		return apperrors.NewValidation("Invalid query parameters")
	}
	if err := validateStruct(h.validate, filter); err != nil {
		return err
	}

	env, err := h.service.FindAll(filter)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// HandleGetByID retrieves a single todo by its id.
func (h *TodoHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	env, err := h.service.FindByID(id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// HandleUpdate applies a partial update to a todo.
func (h *TodoHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input services.UpdateTodoInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}
	if err := validateStruct(h.validate, input); err != nil {
		return err
	}

	env, err := h.service.Update(id, input)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// HandleDelete deletes a todo by its id.
func (h *TodoHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	env, err := h.service.Delete(id)
	if err != nil {
		return err
	}
	return c.JSON(env)
}
