package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// budgetHandler handles GET /budget.
func (s *Server) budgetHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.budget.Snapshot())
}
