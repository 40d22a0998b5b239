package events

// TaskStatusPayload accompanies task_created, task_assigned, task_updated,
// task_completed and task_timeout events.
type TaskStatusPayload struct {
	TaskID        string  `json:"task_id"`
	Status        string  `json:"status"`
	TaskType      string  `json:"task_type,omitempty"`
	AgentID       string  `json:"agent_id,omitempty"`
	Priority      int     `json:"priority,omitempty"`
	Complexity    float64 `json:"complexity,omitempty"`
	ErrorCategory string  `json:"error_category,omitempty"`
	ErrorMessage  string  `json:"error_message,omitempty"`
}

// AgentStatusPayload accompanies agent_status_changed events.
type AgentStatusPayload struct {
	AgentID       string `json:"agent_id"`
	Kind          string `json:"kind"`
	Status        string `json:"status"`
	CurrentTaskID string `json:"current_task_id,omitempty"`
}

// ToolCalledPayload accompanies tool_called events — one per runtime tool call.
type ToolCalledPayload struct {
	TaskID       string `json:"task_id"`
	Step         int    `json:"step"`
	Action       string `json:"action"`
	DurationMs   int    `json:"duration_ms"`
	ModelUsed    string `json:"model_used,omitempty"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	LoopDetected bool   `json:"loop_detected"`
}

// LoopDetectedPayload accompanies loop_detected events.
type LoopDetectedPayload struct {
	TaskID  string `json:"task_id"`
	Action  string `json:"action"`
	Verdict string `json:"verdict"` // "warn", "block" or "abort"
	Reason  string `json:"reason"`
}

// BudgetPayload accompanies budget_warning and budget_exceeded events.
type BudgetPayload struct {
	DailySpentCents float64 `json:"daily_spent_cents"`
	DailyLimitCents int64   `json:"daily_limit_cents"`
	Model           string  `json:"model,omitempty"`
}

// CodeReviewPayload accompanies code_review_completed events.
type CodeReviewPayload struct {
	ReviewID     string  `json:"review_id"`
	TaskID       string  `json:"task_id"`
	Status       string  `json:"status"`
	QualityScore float64 `json:"quality_score"`
	Findings     int     `json:"findings"`
}

// DroppedPayload is synthesized by the WebSocket gateway when a slow consumer
// lost events to the drop-oldest policy. It never originates from the bus.
type DroppedPayload struct {
	Dropped int64 `json:"dropped"`
}
