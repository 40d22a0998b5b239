package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/codereview"
	"github.com/frugalops/foreman/pkg/events"
)

// ReviewVerdict is the reviewer model's parsed output.
type ReviewVerdict struct {
	QualityScore float64
	Findings     []map[string]interface{}
	Summary      string
	Approved     bool
	ModelUsed    string
	InputTokens  int
	OutputTokens int
}

// ReviewService manages code review records. One review per task, enforced
// by the unique task_id index.
type ReviewService struct {
	client *ent.Client
	events *EventService
}

// NewReviewService creates a ReviewService.
func NewReviewService(client *ent.Client, ev *EventService) *ReviewService {
	return &ReviewService{client: client, events: ev}
}

// Create opens a pending review for a completed task.
func (s *ReviewService) Create(ctx context.Context, taskID, reviewTaskID string) (*ent.CodeReview, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	created, err := s.client.CodeReview.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetReviewTaskID(reviewTaskID).
		SetStatus(codereview.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create review for task %s: %w", taskID, err)
	}
	return created, nil
}

// GetByTaskID returns the review of a task.
func (s *ReviewService) GetByTaskID(ctx context.Context, taskID string) (*ent.CodeReview, error) {
	r, err := s.client.CodeReview.Query().
		Where(codereview.TaskIDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review for task %s: %w", taskID, err)
	}
	return r, nil
}

// Exists reports whether a task already has a review.
func (s *ReviewService) Exists(ctx context.Context, taskID string) (bool, error) {
	ok, err := s.client.CodeReview.Query().
		Where(codereview.TaskIDEQ(taskID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check review for task %s: %w", taskID, err)
	}
	return ok, nil
}

// Complete records the reviewer's verdict and emits code_review_completed.
// The quality score is clamped to [0,10] before persisting.
func (s *ReviewService) Complete(ctx context.Context, taskID string, verdict ReviewVerdict) (*ent.CodeReview, error) {
	score := verdict.QualityScore
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	status := codereview.StatusNeedsFixes
	if verdict.Approved {
		status = codereview.StatusApproved
	}

	updated, err := s.client.CodeReview.Update().
		Where(codereview.TaskIDEQ(taskID), codereview.StatusEQ(codereview.StatusPending)).
		SetStatus(status).
		SetQualityScore(score).
		SetFindings(verdict.Findings).
		SetSummary(verdict.Summary).
		SetModelUsed(verdict.ModelUsed).
		SetInputTokens(verdict.InputTokens).
		SetOutputTokens(verdict.OutputTokens).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete review for task %s: %w", taskID, err)
	}
	if updated == 0 {
		return nil, ErrStateConflict
	}

	review, err := s.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	s.events.Record(ctx, events.New(events.EventTypeCodeReviewCompleted, taskID, events.CodeReviewPayload{
		ReviewID:     review.ID,
		TaskID:       taskID,
		Status:       string(review.Status),
		QualityScore: score,
		Findings:     len(verdict.Findings),
	}))
	return review, nil
}
