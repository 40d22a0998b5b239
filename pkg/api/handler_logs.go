package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// taskLogsHandler handles GET /execution-logs/task/:id.
func (s *Server) taskLogsHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("task id is required")
	}
	// The task must exist; an empty log on a real task returns [].
	if _, err := s.tasks.GetTask(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}

	logs, err := s.logs.List(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, logs)
}

// exportLogsHandler handles GET /execution-logs/export. Streams every tool
// call as JSON lines for offline analysis and fine-tuning datasets.
func (s *Server) exportLogsHandler(c *echo.Context) error {
	resp := c.Response()
	resp.Header().Set("Content-Type", "application/x-ndjson")
	resp.Header().Set("Content-Disposition", `attachment; filename="execution-logs.jsonl"`)
	resp.WriteHeader(http.StatusOK)

	return s.logs.ExportJSONL(c.Request().Context(), resp)
}
