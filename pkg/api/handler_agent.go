package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/frugalops/foreman/pkg/models"
)

// listAgentsHandler handles GET /agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	agents, err := s.agents.ListAgents(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agents)
}

// getAgentHandler handles GET /agents/:id.
func (s *Server) getAgentHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("agent id is required")
	}
	a, err := s.agents.GetAgent(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// updateAgentHandler handles PATCH /agents/:id.
func (s *Server) updateAgentHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("agent id is required")
	}
	var req models.UpdateAgentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	updated, err := s.agents.UpdateAgent(c.Request().Context(), id, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// resetAgentsHandler handles POST /agents/reset-all. It forces every agent
// idle and drops all held resource slots — the admin escape hatch after an
// operational incident.
func (s *Server) resetAgentsHandler(c *echo.Context) error {
	n, err := s.agents.ResetAll(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	s.pool.Clear()
	return c.JSON(http.StatusOK, map[string]int{"reset": n})
}
