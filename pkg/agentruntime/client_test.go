package agentruntime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/execute", r.URL.Path)

		var req ExecuteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "task-1", req.TaskID)
		assert.True(t, req.UsePremium)

		json.NewEncoder(w).Encode(ExecuteResponse{
			Success: true,
			Output: Output{
				Status:       StatusSuccess,
				Confidence:   0.92,
				FilesCreated: []string{"main.go"},
			},
			Metrics: Metrics{InputTokens: 1200, OutputTokens: 800, ModelUsed: "claude-opus", WallMS: 42000},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	resp, err := c.Execute(context.Background(), &ExecuteRequest{
		TaskID: "task-1", AgentID: "coder-1", TaskDescription: "write main", UsePremium: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsTerminalSuccess())
	assert.Equal(t, 800, resp.Metrics.OutputTokens)
	assert.Equal(t, []string{"main.go"}, resp.Output.FilesCreated)
}

func TestExecuteSoftFailureIsNotSuccess(t *testing.T) {
	resp := &ExecuteResponse{
		Success: true,
		Output:  Output{Status: StatusSoftFailure, Confidence: 0.4},
	}
	assert.False(t, resp.IsTerminalSuccess())

	resp.Output.Status = StatusUncertain
	assert.False(t, resp.IsTerminalSuccess())
}

func TestExecuteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "runtime exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Execute(context.Background(), &ExecuteRequest{TaskID: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestExecuteCancelledContext(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c := NewClient(srv.URL, time.Minute)
	_, err := c.Execute(ctx, &ExecuteRequest{TaskID: "t"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Execute(context.Background(), &ExecuteRequest{TaskID: "t"})
	assert.Error(t, err)
}
