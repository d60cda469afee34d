package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-api/internal/api/metrics"
	"github.com/taskhive/task-api/internal/core/domain"
	"github.com/taskhive/task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. The caller identity
// is taken from the auth context on every request.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /api/tasks.
//
// @Summary      Create a task owned by the caller
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Username:    username,
	})
	if err != nil {
		return taskError(c, err, "")
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusOK, task)
}

// List handles GET /api/tasks.
//
// @Summary      List the caller's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  errorResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), username)
	if err != nil {
		return taskError(c, err, "")
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	return c.JSON(http.StatusOK, tasks)
}

// Update handles PUT /api/tasks/:id.
//
// @Summary      Update a task owned by the caller
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Task id"
// @Param        body  body      taskRequest  true  "Updated task details"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Username:    username,
	})
	if err != nil {
		return taskError(c, err, "update")
	}

	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id.
//
// @Summary      Delete a task owned by the caller
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), username); err != nil {
		return taskError(c, err, "delete")
	}

	metrics.TasksDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "task deleted successfully"})
}

// taskError maps task service errors to deterministic HTTP responses.
// operation names the attempted mutation and shapes the forbidden message.
func taskError(c echo.Context, err error, operation string) error {
	switch {
	case errors.Is(err, domain.ErrTitleRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotTaskOwner):
		metrics.OwnershipDeniedTotal.WithLabelValues(operation).Inc()
		return c.JSON(http.StatusForbidden, errorResponse{Error: "you are not authorized to " + operation + " this task"})
	case errors.Is(err, domain.ErrCallerNotFound):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
