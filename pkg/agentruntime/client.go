// Package agentruntime talks to the external agent runtime: the process that
// actually runs a coding agent against a task. The orchestrator calls its
// /execute endpoint synchronously and classifies the terminal payload.
package agentruntime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Terminal statuses reported by the runtime.
const (
	StatusSuccess     = "SUCCESS"
	StatusSoftFailure = "SOFT_FAILURE"
	StatusHardFailure = "HARD_FAILURE"
	StatusUncertain   = "UNCERTAIN"
)

// DefaultTimeout bounds one runtime call. Runs can span minutes; the task
// wall-clock timeout is enforced separately by the sweeper.
const DefaultTimeout = 10 * time.Minute

// ExecuteRequest is the body of POST /execute.
type ExecuteRequest struct {
	TaskID          string            `json:"task_id"`
	AgentID         string            `json:"agent_id"`
	TaskDescription string            `json:"task_description"`
	ExpectedOutput  string            `json:"expected_output,omitempty"`
	UsePremium      bool              `json:"use_premium"`
	Model           string            `json:"model,omitempty"`
	Env             map[string]string `json:"env,omitempty"`
}

// Output is the runtime's structured verdict.
type Output struct {
	Status           string   `json:"status"`
	Confidence       float64  `json:"confidence"`
	FilesCreated     []string `json:"files_created"`
	CommandsExecuted []string `json:"commands_executed"`
	ActualOutput     string   `json:"actual_output,omitempty"`
	FailureReason    string   `json:"failure_reason,omitempty"`
	Suggestions      []string `json:"suggestions,omitempty"`
}

// Metrics is the runtime's resource accounting for one run.
type Metrics struct {
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	ModelUsed    string `json:"model_used"`
	WallMS       int64  `json:"wall_ms"`
}

// ExecuteResponse is the terminal payload of one run.
type ExecuteResponse struct {
	Success bool    `json:"success"`
	Output  Output  `json:"output"`
	Metrics Metrics `json:"metrics"`
}

// Runtime executes tasks. Implemented by Client; stubbed in tests.
type Runtime interface {
	Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResponse, error)
}

// Client is an HTTP client for the agent runtime.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a runtime client. A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Execute runs one task to completion on the runtime. Transport and decode
// failures are returned as errors; the caller maps them to the transport
// error category. Cancelling ctx aborts the call.
func (c *Client) Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode execute request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/execute", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build execute request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("agent runtime call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("agent runtime returned %d: %s", resp.StatusCode, payload)
	}

	var out ExecuteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode runtime response: %w", err)
	}
	return &out, nil
}

// IsTerminalSuccess reports whether the runtime considers the run a success.
// An UNCERTAIN or SOFT_FAILURE status is never a success on its own.
func (r *ExecuteResponse) IsTerminalSuccess() bool {
	return r.Success && r.Output.Status == StatusSuccess
}
