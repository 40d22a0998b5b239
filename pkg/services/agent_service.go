package services

import (
	"context"
	"fmt"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/agent"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/models"
	"github.com/frugalops/foreman/pkg/router"
)

// AgentService manages agent state. The core invariant it maintains:
// current_task_id is set iff the agent is busy.
type AgentService struct {
	client *ent.Client
	events *EventService
}

// NewAgentService creates an AgentService.
func NewAgentService(client *ent.Client, ev *EventService) *AgentService {
	return &AgentService{client: client, events: ev}
}

// defaultRoster seeds one agent per kind on first boot.
var defaultRoster = []struct {
	id, kind, name, model string
}{
	{"coder-1", "coder", "Local Coder", "qwen2.5-coder"},
	{"qa-1", "qa", "QA Reviewer", "claude-haiku"},
	{"cto-1", "cto", "CTO Escalation", "claude-opus"},
}

// EnsureDefaults seeds the default roster when the agents table is empty.
func (s *AgentService) EnsureDefaults(ctx context.Context) error {
	n, err := s.client.Agent.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count agents: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, a := range defaultRoster {
		err := s.client.Agent.Create().
			SetID(a.id).
			SetKind(agent.Kind(a.kind)).
			SetName(a.name).
			SetModel(a.model).
			SetStatus(agent.StatusIdle).
			Exec(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to seed agent %s: %w", a.id, err)
		}
	}
	return nil
}

// ListAgents returns all agents ordered by id.
func (s *AgentService) ListAgents(ctx context.Context) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().Order(ent.Asc(agent.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// GetAgent fetches one agent.
func (s *AgentService) GetAgent(ctx context.Context, id string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// UpdateAgent applies a config update. Status may only be toggled between
// idle and paused through the API; busy/offline are owned by the system.
func (s *AgentService) UpdateAgent(ctx context.Context, id string, req models.UpdateAgentRequest) (*ent.Agent, error) {
	upd := s.client.Agent.UpdateOneID(id)
	if req.Model != nil {
		upd.SetModel(*req.Model)
	}
	if req.Status != nil {
		switch *req.Status {
		case string(agent.StatusIdle), string(agent.StatusPaused):
			upd.Where(agent.StatusIn(agent.StatusIdle, agent.StatusPaused)).
				SetStatus(agent.Status(*req.Status))
		default:
			return nil, NewValidationError("status", "only idle and paused may be set")
		}
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			if _, getErr := s.client.Agent.Get(ctx, id); getErr != nil {
				return nil, ErrNotFound
			}
			return nil, ErrStateConflict
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	s.publishStatus(ctx, updated)
	return updated, nil
}

// SetBusy transitions an agent idle -> busy and pins the task. CAS on status
// prevents two assigners claiming the same agent.
func (s *AgentService) SetBusy(ctx context.Context, agentID, taskID string) (*ent.Agent, error) {
	updated, err := s.client.Agent.UpdateOneID(agentID).
		Where(agent.StatusEQ(agent.StatusIdle)).
		SetStatus(agent.StatusBusy).
		SetCurrentTaskID(taskID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrStateConflict
		}
		return nil, fmt.Errorf("failed to mark agent %s busy: %w", agentID, err)
	}

	s.publishStatus(ctx, updated)
	return updated, nil
}

// SetIdle releases an agent after a run and bumps the outcome counter.
func (s *AgentService) SetIdle(ctx context.Context, agentID string, succeeded bool) (*ent.Agent, error) {
	upd := s.client.Agent.UpdateOneID(agentID).
		Where(agent.StatusEQ(agent.StatusBusy)).
		SetStatus(agent.StatusIdle).
		ClearCurrentTaskID()
	if succeeded {
		upd.AddTasksCompleted(1)
	} else {
		upd.AddTasksFailed(1)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrStateConflict
		}
		return nil, fmt.Errorf("failed to mark agent %s idle: %w", agentID, err)
	}

	s.publishStatus(ctx, updated)
	return updated, nil
}

// ReleaseFromTask marks an agent idle only while it is still pinned to the
// given task. A lost pin — the sweeper already freed the agent, or the
// assigner re-pinned it to another task — surfaces as ErrStateConflict so a
// late caller cannot free an agent that is busy with someone else's work.
func (s *AgentService) ReleaseFromTask(ctx context.Context, agentID, taskID string, succeeded bool) (*ent.Agent, error) {
	upd := s.client.Agent.UpdateOneID(agentID).
		Where(agent.StatusEQ(agent.StatusBusy), agent.CurrentTaskIDEQ(taskID)).
		SetStatus(agent.StatusIdle).
		ClearCurrentTaskID()
	if succeeded {
		upd.AddTasksCompleted(1)
	} else {
		upd.AddTasksFailed(1)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrStateConflict
		}
		return nil, fmt.Errorf("failed to release agent %s from task %s: %w", agentID, taskID, err)
	}

	s.publishStatus(ctx, updated)
	return updated, nil
}

// ResetAll forces every agent idle and clears task pins. Admin escape hatch.
func (s *AgentService) ResetAll(ctx context.Context) (int, error) {
	n, err := s.client.Agent.Update().
		Where(agent.StatusNEQ(agent.StatusIdle)).
		SetStatus(agent.StatusIdle).
		ClearCurrentTaskID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset agents: %w", err)
	}
	return n, nil
}

// IdleAgent returns an idle agent of the given kind. Implements
// router.Directory.
func (s *AgentService) IdleAgent(ctx context.Context, kind string) (router.Agent, bool, error) {
	a, err := s.client.Agent.Query().
		Where(agent.KindEQ(agent.Kind(kind)), agent.StatusEQ(agent.StatusIdle)).
		Order(ent.Asc(agent.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return router.Agent{}, false, nil
		}
		return router.Agent{}, false, fmt.Errorf("failed to query idle %s: %w", kind, err)
	}
	return router.Agent{ID: a.ID, Kind: string(a.Kind)}, true, nil
}

func (s *AgentService) publishStatus(ctx context.Context, a *ent.Agent) {
	payload := events.AgentStatusPayload{
		AgentID: a.ID,
		Kind:    string(a.Kind),
		Status:  string(a.Status),
	}
	if a.CurrentTaskID != nil {
		payload.CurrentTaskID = *a.CurrentTaskID
	}
	s.events.Record(ctx, events.New(events.EventTypeAgentStatusChanged, payload.CurrentTaskID, payload))
}
