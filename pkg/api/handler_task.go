package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/models"
)

// createTaskHandler handles POST /tasks.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.TaskType == "" {
		req.TaskType = string(task.TaskTypeCode)
	}

	created, err := s.tasks.CreateTask(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// listTasksHandler handles GET /tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	filter := models.ListTasksFilter{
		Status:  c.QueryParam("status"),
		AgentID: c.QueryParam("agent"),
	}
	if filter.Status != "" {
		if err := task.StatusValidator(task.Status(filter.Status)); err != nil {
			return badRequest("invalid status: " + filter.Status)
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return badRequest("limit must be a positive integer")
		}
		filter.Limit = n
	}

	tasks, err := s.tasks.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// getTaskHandler handles GET /tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("task id is required")
	}
	t, err := s.tasks.GetTask(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// updateTaskHandler handles PATCH /tasks/:id.
func (s *Server) updateTaskHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("task id is required")
	}
	var req models.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	updated, err := s.tasks.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// completeTaskHandler handles POST /tasks/:id/complete.
func (s *Server) completeTaskHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("task id is required")
	}
	var req models.CompleteTaskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	updated, err := s.tasks.CompleteTask(c.Request().Context(), id, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// deleteTaskHandler handles DELETE /tasks/:id.
func (s *Server) deleteTaskHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("task id is required")
	}
	if err := s.tasks.DeleteTask(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
