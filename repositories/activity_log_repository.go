package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/destegai/scan-server/models"
)

// ActivityLogRepository handles audit trail persistence. The log is
// write-once, read-many: no update or delete operation exists.
type ActivityLogRepository interface {
	Create(ctx context.Context, actor, activity string) (*models.ActivityLogEntry, error)
	ListAll(ctx context.Context) ([]models.ActivityLogEntry, error)
	ListByActor(ctx context.Context, actor string) ([]models.ActivityLogEntry, error)
}

type sqliteActivityLogRepository struct {
	db *sql.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *sql.DB) ActivityLogRepository {
	return &sqliteActivityLogRepository{db: db}
}

// Create appends a new activity log entry. The timestamp is set here,
// at write time.
func (r *sqliteActivityLogRepository) Create(ctx context.Context, actor, activity string) (*models.ActivityLogEntry, error) {
	query := `
		INSERT INTO activity_log (id, actor, activity, occurred_at)
		VALUES (?, ?, ?, ?)
	`

	entry := &models.ActivityLogEntry{
		ID:         uuid.NewString(),
		Actor:      actor,
		Activity:   activity,
		OccurredAt: time.Now(),
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Actor,
		entry.Activity,
		entry.OccurredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity log entry: %w", err)
	}

	return entry, nil
}

// ListAll retrieves the whole audit trail ordered by occurrence time
func (r *sqliteActivityLogRepository) ListAll(ctx context.Context) ([]models.ActivityLogEntry, error) {
	query := `
		SELECT id, actor, activity, occurred_at
		FROM activity_log
		ORDER BY occurred_at ASC
	`
	return r.list(ctx, query)
}

// ListByActor retrieves the audit trail entries for one actor
func (r *sqliteActivityLogRepository) ListByActor(ctx context.Context, actor string) ([]models.ActivityLogEntry, error) {
	query := `
		SELECT id, actor, activity, occurred_at
		FROM activity_log
		WHERE actor = ?
		ORDER BY occurred_at ASC
	`
	return r.list(ctx, query, actor)
}

// list runs an activity log query and materializes the rows
func (r *sqliteActivityLogRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.ActivityLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity log: %w", err)
	}
	defer rows.Close()

	var entries []models.ActivityLogEntry
	for rows.Next() {
		var entry models.ActivityLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Actor,
			&entry.Activity,
			&entry.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity log row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity log: %w", err)
	}

	return entries, nil
}
