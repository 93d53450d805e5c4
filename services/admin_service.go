package services

import (
	"context"
	"fmt"
	"log"

	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/repositories"
)

// recentActivityLimit caps how many entries a user overview row carries
const recentActivityLimit = 5

// UserOverview is one row of the operator dashboard
type UserOverview struct {
	User           models.User               `json:"user"`
	ScanCount      int                       `json:"scan_count"`
	RecentActivity []models.ActivityLogEntry `json:"recent_activity"`
}

// AdminService interface defines the read-only cross-user views backing
// the admin panel. All of it must sit behind the admin gate.
type AdminService interface {
	BuildUserOverview(ctx context.Context) ([]UserOverview, error)
	GetUserScans(ctx context.Context, email string) ([]models.ScanResult, error)
	GetUserActivity(ctx context.Context, email string) ([]models.ActivityLogEntry, error)
	ListAllScans(ctx context.Context) ([]models.ScanResult, error)
}

// adminService implements AdminService interface
type adminService struct {
	userRepo repositories.UserRepository
	scanRepo repositories.ScanRepository
	activity ActivityService
}

// NewAdminService creates a new admin aggregation service
func NewAdminService(userRepo repositories.UserRepository, scanRepo repositories.ScanRepository, activity ActivityService) AdminService {
	return &adminService{
		userRepo: userRepo,
		scanRepo: scanRepo,
		activity: activity,
	}
}

// BuildUserOverview joins the user directory with scan counts and
// recent activity. A failing sub-join emits that user's row with zero
// values and the aggregation continues; this is an observability view,
// not a transactional one.
func (s *adminService) BuildUserOverview(ctx context.Context) ([]UserOverview, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user directory: %w", err)
	}

	overviews := make([]UserOverview, 0, len(users))
	for _, user := range users {
		row := UserOverview{User: user}

		count, err := s.scanRepo.CountByOwner(ctx, user.Email)
		if err != nil {
			log.Printf("User overview: scan count for %s failed: %v", user.Email, err)
		} else {
			row.ScanCount = count
		}

		entries, err := s.activity.ListByActor(ctx, user.Email)
		if err != nil {
			log.Printf("User overview: activity for %s failed: %v", user.Email, err)
		} else {
			if len(entries) > recentActivityLimit {
				entries = entries[:recentActivityLimit]
			}
			row.RecentActivity = entries
		}

		overviews = append(overviews, row)
	}

	return overviews, nil
}

// GetUserScans retrieves any user's saved scan results
func (s *adminService) GetUserScans(ctx context.Context, email string) ([]models.ScanResult, error) {
	return s.scanRepo.ListByOwner(ctx, email)
}

// GetUserActivity retrieves any user's audit trail
func (s *adminService) GetUserActivity(ctx context.Context, email string) ([]models.ActivityLogEntry, error) {
	return s.activity.ListByActor(ctx, email)
}

// ListAllScans retrieves every scan result across all users
func (s *adminService) ListAllScans(ctx context.Context) ([]models.ScanResult, error) {
	return s.scanRepo.ListAll(ctx)
}
