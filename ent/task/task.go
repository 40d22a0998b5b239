// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldRequiredAgent holds the string denoting the required_agent field in the database.
	FieldRequiredAgent = "required_agent"
	// FieldMaxIterations holds the string denoting the max_iterations field in the database.
	FieldMaxIterations = "max_iterations"
	// FieldParentTaskID holds the string denoting the parent_task_id field in the database.
	FieldParentTaskID = "parent_task_id"
	// FieldComplexity holds the string denoting the complexity field in the database.
	FieldComplexity = "complexity"
	// FieldComplexitySource holds the string denoting the complexity_source field in the database.
	FieldComplexitySource = "complexity_source"
	// FieldComplexityReasoning holds the string denoting the complexity_reasoning field in the database.
	FieldComplexityReasoning = "complexity_reasoning"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssignedAgentID holds the string denoting the assigned_agent_id field in the database.
	FieldAssignedAgentID = "assigned_agent_id"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCurrentIteration holds the string denoting the current_iteration field in the database.
	FieldCurrentIteration = "current_iteration"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorCategory holds the string denoting the error_category field in the database.
	FieldErrorCategory = "error_category"
	// FieldValidationCommand holds the string denoting the validation_command field in the database.
	FieldValidationCommand = "validation_command"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExecutionLogs holds the string denoting the execution_logs edge name in mutations.
	EdgeExecutionLogs = "execution_logs"
	// EdgeCodeReview holds the string denoting the code_review edge name in mutations.
	EdgeCodeReview = "code_review"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// ExecutionLogFieldID holds the string denoting the ID field of the ExecutionLog.
	ExecutionLogFieldID = "log_id"
	// CodeReviewFieldID holds the string denoting the ID field of the CodeReview.
	CodeReviewFieldID = "review_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// ExecutionLogsTable is the table that holds the execution_logs relation/edge.
	ExecutionLogsTable = "execution_logs"
	// ExecutionLogsInverseTable is the table name for the ExecutionLog entity.
	// It exists in this package in order to avoid circular dependency with the "executionlog" package.
	ExecutionLogsInverseTable = "execution_logs"
	// ExecutionLogsColumn is the table column denoting the execution_logs relation/edge.
	ExecutionLogsColumn = "task_execution_logs"
	// CodeReviewTable is the table that holds the code_review relation/edge.
	CodeReviewTable = "tasks"
	// CodeReviewInverseTable is the table name for the CodeReview entity.
	// It exists in this package in order to avoid circular dependency with the "codereview" package.
	CodeReviewInverseTable = "code_reviews"
	// CodeReviewColumn is the table column denoting the code_review relation/edge.
	CodeReviewColumn = "task_code_review"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "task_events"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldTaskType,
	FieldPriority,
	FieldRequiredAgent,
	FieldMaxIterations,
	FieldParentTaskID,
	FieldComplexity,
	FieldComplexitySource,
	FieldComplexityReasoning,
	FieldStatus,
	FieldAssignedAgentID,
	FieldAssignedAt,
	FieldCompletedAt,
	FieldCurrentIteration,
	FieldResult,
	FieldErrorMessage,
	FieldErrorCategory,
	FieldValidationCommand,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "tasks"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"task_code_review",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultMaxIterations holds the default value on creation for the "max_iterations" field.
	DefaultMaxIterations int
	// DefaultCurrentIteration holds the default value on creation for the "current_iteration" field.
	DefaultCurrentIteration int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TaskType defines the type for the "task_type" enum field.
type TaskType string

// TaskTypeCode is the default value of the TaskType enum.
const DefaultTaskType = TaskTypeCode

// TaskType values.
const (
	TaskTypeCode          TaskType = "code"
	TaskTypeTest          TaskType = "test"
	TaskTypeReview        TaskType = "review"
	TaskTypeRefactor      TaskType = "refactor"
	TaskTypeDebug         TaskType = "debug"
	TaskTypeDecomposition TaskType = "decomposition"
)

func (tt TaskType) String() string {
	return string(tt)
}

// TaskTypeValidator is a validator for the "task_type" field enum values. It is called by the builders before save.
func TaskTypeValidator(tt TaskType) error {
	switch tt {
	case TaskTypeCode, TaskTypeTest, TaskTypeReview, TaskTypeRefactor, TaskTypeDebug, TaskTypeDecomposition:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for task_type field: %q", tt)
	}
}

// RequiredAgent defines the type for the "required_agent" enum field.
type RequiredAgent string

// RequiredAgent values.
const (
	RequiredAgentCoder RequiredAgent = "coder"
	RequiredAgentQa    RequiredAgent = "qa"
	RequiredAgentCto   RequiredAgent = "cto"
)

func (ra RequiredAgent) String() string {
	return string(ra)
}

// RequiredAgentValidator is a validator for the "required_agent" field enum values. It is called by the builders before save.
func RequiredAgentValidator(ra RequiredAgent) error {
	switch ra {
	case RequiredAgentCoder, RequiredAgentQa, RequiredAgentCto:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for required_agent field: %q", ra)
	}
}

// ComplexitySource defines the type for the "complexity_source" enum field.
type ComplexitySource string

// ComplexitySource values.
const (
	ComplexitySourceRouter   ComplexitySource = "router"
	ComplexitySourceHaiku    ComplexitySource = "haiku"
	ComplexitySourceDual     ComplexitySource = "dual"
	ComplexitySourceOverride ComplexitySource = "override"
)

func (cs ComplexitySource) String() string {
	return string(cs)
}

// ComplexitySourceValidator is a validator for the "complexity_source" field enum values. It is called by the builders before save.
func ComplexitySourceValidator(cs ComplexitySource) error {
	switch cs {
	case ComplexitySourceRouter, ComplexitySourceHaiku, ComplexitySourceDual, ComplexitySourceOverride:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for complexity_source field: %q", cs)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusAborted    Status = "aborted"
	StatusNeedsHuman Status = "needs_human"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusFailed, StatusAborted, StatusNeedsHuman:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByRequiredAgent orders the results by the required_agent field.
func ByRequiredAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredAgent, opts...).ToFunc()
}

// ByMaxIterations orders the results by the max_iterations field.
func ByMaxIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxIterations, opts...).ToFunc()
}

// ByParentTaskID orders the results by the parent_task_id field.
func ByParentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTaskID, opts...).ToFunc()
}

// ByComplexity orders the results by the complexity field.
func ByComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexity, opts...).ToFunc()
}

// ByComplexitySource orders the results by the complexity_source field.
func ByComplexitySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexitySource, opts...).ToFunc()
}

// ByComplexityReasoning orders the results by the complexity_reasoning field.
func ByComplexityReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexityReasoning, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssignedAgentID orders the results by the assigned_agent_id field.
func ByAssignedAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgentID, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCurrentIteration orders the results by the current_iteration field.
func ByCurrentIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentIteration, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorCategory orders the results by the error_category field.
func ByErrorCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCategory, opts...).ToFunc()
}

// ByValidationCommand orders the results by the validation_command field.
func ByValidationCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationCommand, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExecutionLogsCount orders the results by execution_logs count.
func ByExecutionLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionLogsStep(), opts...)
	}
}

// ByExecutionLogs orders the results by execution_logs terms.
func ByExecutionLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCodeReviewField orders the results by code_review field.
func ByCodeReviewField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCodeReviewStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionLogsInverseTable, ExecutionLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionLogsTable, ExecutionLogsColumn),
	)
}
func newCodeReviewStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CodeReviewInverseTable, CodeReviewFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, CodeReviewTable, CodeReviewColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
