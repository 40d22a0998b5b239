package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", services.NewValidationError("title", "required"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("ctx"), services.ErrNotFound), http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"state conflict", services.ErrStateConflict, http.StatusConflict},
		{"unknown", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestMapServiceError_BodyShape(t *testing.T) {
	httpErr := mapServiceError(services.ErrStateConflict)

	body, ok := httpErr.Message.(errorBody)
	require.True(t, ok)
	assert.Equal(t, "state_conflict", body.Error)
	assert.NotEmpty(t, body.Message)
}

func TestMapServiceError_InternalHidesDetail(t *testing.T) {
	httpErr := mapServiceError(errors.New("pq: connection reset"))

	body, ok := httpErr.Message.(errorBody)
	require.True(t, ok)
	assert.Equal(t, "internal", body.Error)
	assert.NotContains(t, body.Message, "pq:")
}
