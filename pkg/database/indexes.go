package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent cannot
// express. The sweeper scans only live tasks; indexing the two live statuses
// keeps the scan off the terminal bulk of the table.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS tasks_live_heartbeat
		ON tasks (last_heartbeat_at)
		WHERE status IN ('assigned', 'in_progress')`)
	if err != nil {
		return fmt.Errorf("failed to create live-task heartbeat index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS tasks_pending_queue
		ON tasks (priority DESC, created_at ASC)
		WHERE status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create pending-queue index: %w", err)
	}

	return nil
}
