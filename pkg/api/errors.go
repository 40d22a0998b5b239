package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/frugalops/foreman/pkg/services"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func apiError(status int, code, message string) *echo.HTTPError {
	return echo.NewHTTPError(status, errorBody{Error: code, Message: message})
}

func badRequest(message string) *echo.HTTPError {
	return apiError(http.StatusBadRequest, "bad_request", message)
}

func unauthorized(message string) *echo.HTTPError {
	return apiError(http.StatusUnauthorized, "unauthorized", message)
}

func forbidden(message string) *echo.HTTPError {
	return apiError(http.StatusForbidden, "forbidden", message)
}

func rateLimited() *echo.HTTPError {
	return apiError(http.StatusTooManyRequests, "rate_limited", "request rate limit exceeded")
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return badRequest(validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return apiError(http.StatusNotFound, "not_found", "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return apiError(http.StatusConflict, "already_exists", "resource already exists")
	}
	if errors.Is(err, services.ErrStateConflict) {
		return apiError(http.StatusConflict, "state_conflict", "resource is not in a state that allows this operation")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return apiError(http.StatusInternalServerError, "internal", "internal server error")
}
