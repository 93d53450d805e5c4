package services

import (
	"context"
	"log"
	"sort"

	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/repositories"
)

// ActivityService is the single entry point for the audit trail. Every
// privileged operation appends through here, from exactly one call site
// per logical event.
type ActivityService interface {
	// Append records an audit entry. Best-effort by contract: a failed
	// write goes to the process diagnostics log and is never surfaced
	// to the caller.
	Append(ctx context.Context, actor, activity string)
	ListAll(ctx context.Context) ([]models.ActivityLogEntry, error)
	ListByActor(ctx context.Context, actor string) ([]models.ActivityLogEntry, error)
}

// activityService implements ActivityService interface
type activityService struct {
	activityRepo repositories.ActivityLogRepository
}

// NewActivityService creates a new activity log service
func NewActivityService(activityRepo repositories.ActivityLogRepository) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
	}
}

// Append writes one audit entry, swallowing the error into diagnostics
func (s *activityService) Append(ctx context.Context, actor, activity string) {
	if actor == "" {
		actor = models.SystemActor
	}

	if _, err := s.activityRepo.Create(ctx, actor, activity); err != nil {
		log.Printf("Failed to append activity log entry for %s: %v", actor, err)
	}
}

// ListAll retrieves the whole audit trail, newest first
func (s *activityService) ListAll(ctx context.Context) ([]models.ActivityLogEntry, error) {
	entries, err := s.activityRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return sortNewestFirst(entries), nil
}

// ListByActor retrieves one actor's audit trail, newest first
func (s *activityService) ListByActor(ctx context.Context, actor string) ([]models.ActivityLogEntry, error) {
	entries, err := s.activityRepo.ListByActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	return sortNewestFirst(entries), nil
}

func sortNewestFirst(entries []models.ActivityLogEntry) []models.ActivityLogEntry {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})
	return entries
}
