// Package models holds the request and response shapes of the control API.
package models

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	TaskType          string `json:"task_type"`
	Priority          *int   `json:"priority,omitempty"`
	MaxIterations     *int   `json:"max_iterations,omitempty"`
	RequiredAgent     string `json:"required_agent,omitempty"`
	ValidationCommand string `json:"validation_command,omitempty"`
	ParentTaskID      string `json:"parent_task_id,omitempty"`
}

// UpdateTaskRequest is the body of PATCH /tasks/:id. Only these fields may
// change after creation, and only while the task is still pending.
type UpdateTaskRequest struct {
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Priority          *int     `json:"priority,omitempty"`
	MaxIterations     *int     `json:"max_iterations,omitempty"`
	ValidationCommand *string  `json:"validation_command,omitempty"`
	Complexity        *float64 `json:"complexity,omitempty"`
}

// CompleteTaskRequest is the body of POST /tasks/:id/complete.
type CompleteTaskRequest struct {
	Success bool                   `json:"success"`
	Result  map[string]interface{} `json:"result,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// ListTasksFilter narrows GET /tasks.
type ListTasksFilter struct {
	Status  string
	AgentID string
	Limit   int
}
