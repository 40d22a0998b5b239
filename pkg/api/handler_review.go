package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// taskReviewHandler handles GET /code-reviews/task/:id.
func (s *Server) taskReviewHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("task id is required")
	}
	review, err := s.reviews.GetByTaskID(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, review)
}
