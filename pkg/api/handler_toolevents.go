package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/frugalops/foreman/pkg/queue"
)

// toolEventHandler handles POST /internal/tool-events/:id — the agent
// runtime reports each tool call of a running task here and receives the
// observation the agent should see next, possibly rewritten by the loop
// detector.
func (s *Server) toolEventHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return badRequest("task id is required")
	}
	var ev queue.ToolEvent
	if err := c.Bind(&ev); err != nil {
		return badRequest("invalid request body")
	}
	if ev.Action == "" {
		return badRequest("action is required")
	}

	outcome, err := s.sink.HandleToolEvent(c.Request().Context(), taskID, ev)
	if err != nil {
		if errors.Is(err, queue.ErrNoActiveRun) {
			return apiError(http.StatusConflict, "no_active_run",
				"task is not currently executing on this instance")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, outcome)
}
