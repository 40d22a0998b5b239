// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"coder", "qa", "cto"}},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "busy", "paused", "offline"}, Default: "idle"},
		{Name: "current_task_id", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "tasks_completed", Type: field.TypeInt, Default: 0},
		{Name: "tasks_failed", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_kind_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[3]},
			},
		},
	}
	// CodeReviewsColumns holds the columns for the "code_reviews" table.
	CodeReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "review_task_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "needs_fixes", "rejected"}, Default: "pending"},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "findings", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CodeReviewsTable holds the schema information for the "code_reviews" table.
	CodeReviewsTable = &schema.Table{
		Name:       "code_reviews",
		Columns:    CodeReviewsColumns,
		PrimaryKey: []*schema.Column{CodeReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "codereview_status",
				Unique:  false,
				Columns: []*schema.Column{CodeReviewsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_events", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_tasks_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_task_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[4]},
			},
		},
	}
	// ExecutionLogsColumns holds the columns for the "execution_logs" table.
	ExecutionLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "step", Type: field.TypeInt},
		{Name: "action", Type: field.TypeString},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "observation", Type: field.TypeString, Size: 2147483647},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "is_loop_detected", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_execution_logs", Type: field.TypeString, Nullable: true},
	}
	// ExecutionLogsTable holds the schema information for the "execution_logs" table.
	ExecutionLogsTable = &schema.Table{
		Name:       "execution_logs",
		Columns:    ExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ExecutionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_logs_tasks_execution_logs",
				Columns:    []*schema.Column{ExecutionLogsColumns[12]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionlog_task_id_step",
				Unique:  true,
				Columns: []*schema.Column{ExecutionLogsColumns[1], ExecutionLogsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"code", "test", "review", "refactor", "debug", "decomposition"}, Default: "code"},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "required_agent", Type: field.TypeEnum, Nullable: true, Enums: []string{"coder", "qa", "cto"}},
		{Name: "max_iterations", Type: field.TypeInt, Default: 3},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "complexity", Type: field.TypeFloat64, Nullable: true},
		{Name: "complexity_source", Type: field.TypeEnum, Nullable: true, Enums: []string{"router", "haiku", "dual", "override"}},
		{Name: "complexity_reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "assigned", "in_progress", "completed", "failed", "aborted", "needs_human"}, Default: "pending"},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "current_iteration", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_category", Type: field.TypeString, Nullable: true},
		{Name: "validation_command", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_code_review", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_code_reviews_code_review",
				Columns:    []*schema.Column{TasksColumns[24]},
				RefColumns: []*schema.Column{CodeReviewsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[11]},
			},
			{
				Name:    "task_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[12]},
			},
			{
				Name:    "task_parent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
			{
				Name:    "task_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[11], TasksColumns[4], TasksColumns[22]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[11], TasksColumns[21]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		CodeReviewsTable,
		EventsTable,
		ExecutionLogsTable,
		TasksTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = TasksTable
	ExecutionLogsTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = CodeReviewsTable
}
