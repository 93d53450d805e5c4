package models

import "time"

// SystemActor is recorded for events not initiated by a signed-in user
const SystemActor = "SYSTEM"

// ActivityLogEntry represents one append-only audit trail record.
// Entries are never updated or deleted; ordering is by OccurredAt.
type ActivityLogEntry struct {
	ID         string    `json:"id" db:"id"`
	Actor      string    `json:"actor" db:"actor"`
	Activity   string    `json:"activity" db:"activity"`
	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
}
