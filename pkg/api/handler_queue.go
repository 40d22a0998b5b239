package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/frugalops/foreman/pkg/models"
)

// assignHandler handles POST /queue/assign — operator-forced placement of a
// pending task on a specific agent.
func (s *Server) assignHandler(c *echo.Context) error {
	var req models.AssignRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.TaskID == "" {
		return badRequest("taskId is required")
	}
	if req.AgentID == "" {
		return badRequest("agentId is required")
	}

	assigned, err := s.assigner.AssignManual(c.Request().Context(), req.TaskID, req.AgentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, assigned)
}

// resourcesHandler handles GET /queue/resources.
func (s *Server) resourcesHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.pool.Status())
}

// queueHealthHandler handles GET /queue/health.
func (s *Server) queueHealthHandler(c *echo.Context) error {
	health := s.assigner.Health(c.Request().Context())
	if s.sweeper != nil {
		health.LastSweep, health.SweptTotal = s.sweeper.Stats()
		health.RecentRecovery = s.sweeper.Recoveries()
	}
	return c.JSON(http.StatusOK, health)
}
