package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/executionlog"
)

// LogEntry is one tool-call record to append to a task's execution log.
type LogEntry struct {
	Step           int
	Action         string
	Input          string
	Observation    string
	DurationMS     int
	ModelUsed      string
	InputTokens    int
	OutputTokens   int
	IsLoopDetected bool
}

// LogService manages the append-only execution log. Entries for one task are
// totally ordered by step; the unique (task_id, step) index is the backstop.
type LogService struct {
	client *ent.Client
}

// NewLogService creates a LogService.
func NewLogService(client *ent.Client) *LogService {
	return &LogService{client: client}
}

// Append writes one entry. A duplicate step for the same task is rejected by
// the unique index and surfaces as ErrAlreadyExists.
func (s *LogService) Append(ctx context.Context, taskID string, entry LogEntry) (*ent.ExecutionLog, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if entry.Action == "" {
		return nil, NewValidationError("action", "required")
	}
	if entry.Step < 1 {
		return nil, NewValidationError("step", "must be >= 1")
	}

	created, err := s.client.ExecutionLog.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetStep(entry.Step).
		SetAction(entry.Action).
		SetInput(entry.Input).
		SetObservation(entry.Observation).
		SetDurationMs(entry.DurationMS).
		SetModelUsed(entry.ModelUsed).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetIsLoopDetected(entry.IsLoopDetected).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to append log for task %s: %w", taskID, err)
	}
	return created, nil
}

// NextStep returns the next free step number for a task (1-based).
func (s *LogService) NextStep(ctx context.Context, taskID string) (int, error) {
	last, err := s.client.ExecutionLog.Query().
		Where(executionlog.TaskIDEQ(taskID)).
		Order(ent.Desc(executionlog.FieldStep)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to find last step for task %s: %w", taskID, err)
	}
	return last.Step + 1, nil
}

// List returns a task's log ordered by step.
func (s *LogService) List(ctx context.Context, taskID string) ([]*ent.ExecutionLog, error) {
	logs, err := s.client.ExecutionLog.Query().
		Where(executionlog.TaskIDEQ(taskID)).
		Order(ent.Asc(executionlog.FieldStep)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs for task %s: %w", taskID, err)
	}
	return logs, nil
}

// exportRecord is one JSONL line of the training-data export.
type exportRecord struct {
	TaskID       string `json:"task_id"`
	Step         int    `json:"step"`
	Action       string `json:"action"`
	Input        string `json:"input"`
	Observation  string `json:"observation"`
	ModelUsed    string `json:"model_used,omitempty"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	LoopDetected bool   `json:"loop_detected"`
}

// ExportJSONL streams every execution log record as JSON lines, ordered by
// task then step. Pages through the table to bound memory.
func (s *LogService) ExportJSONL(ctx context.Context, w io.Writer) error {
	enc := json.NewEncoder(w)
	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		page, err := s.client.ExecutionLog.Query().
			Order(ent.Asc(executionlog.FieldTaskID), ent.Asc(executionlog.FieldStep)).
			Offset(offset).
			Limit(pageSize).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to page logs at offset %d: %w", offset, err)
		}
		for _, l := range page {
			rec := exportRecord{
				TaskID:       l.TaskID,
				Step:         l.Step,
				Action:       l.Action,
				Input:        l.Input,
				Observation:  l.Observation,
				ModelUsed:    l.ModelUsed,
				InputTokens:  l.InputTokens,
				OutputTokens: l.OutputTokens,
				LoopDetected: l.IsLoopDetected,
			}
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("failed to encode export record: %w", err)
			}
		}
		if len(page) < pageSize {
			return nil
		}
	}
}
