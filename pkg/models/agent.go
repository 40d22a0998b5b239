package models

// UpdateAgentRequest is the body of PATCH /agents/:id.
type UpdateAgentRequest struct {
	Model  *string `json:"model,omitempty"`
	Status *string `json:"status,omitempty"` // only idle <-> paused via API
}

// AssignRequest is the body of POST /queue/assign.
type AssignRequest struct {
	TaskID  string `json:"taskId"`
	AgentID string `json:"agentId"`
}
