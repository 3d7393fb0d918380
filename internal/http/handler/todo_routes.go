package handler

import (
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TodoService interface {
	GetTodos(actor *entity.Profile) ([]*contract.TodoResponse, apierror.ErrorResponse)
	GetTodo(actor *entity.Profile, todoID string) (*contract.TodoResponse, apierror.ErrorResponse)
	CreateTodo(actor *entity.Profile, req *contract.CreateTodoRequest) (*contract.TodoResponse, apierror.ErrorResponse)
	UpdateTodo(actor *entity.Profile, todoID string, req *contract.UpdateTodoRequest) (*contract.TodoResponse, apierror.ErrorResponse)
	DeleteTodo(actor *entity.Profile, todoID string) apierror.ErrorResponse
}

type DefaultTodoRoute struct {
	TodoService TodoService
}

func NewTodoDefault(todoService TodoService) *DefaultTodoRoute {
	return &DefaultTodoRoute{TodoService: todoService}
}

func (h *DefaultTodoRoute) GetTodos(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	todos, apierr := h.TodoService.GetTodos(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"todos": todos}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultTodoRoute) GetTodo(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	todoID := c.Param("todoId")
	if todoID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("todoId"))
	}

	todo, apierr := h.TodoService.GetTodo(actor, todoID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &todo)
}

func (h *DefaultTodoRoute) CreateTodo(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	todo, apierr := h.TodoService.CreateTodo(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &todo)
}

func (h *DefaultTodoRoute) UpdateTodo(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	todoID := c.Param("todoId")
	if todoID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("todoId"))
	}

	var req contract.UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	todo, apierr := h.TodoService.UpdateTodo(actor, todoID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &todo)
}

func (h *DefaultTodoRoute) DeleteTodo(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	todoID := c.Param("todoId")
	if todoID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("todoId"))
	}

	if apierr := h.TodoService.DeleteTodo(actor, todoID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
