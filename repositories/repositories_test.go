package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/destegai/scan-server/database"
	"github.com/destegai/scan-server/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := fmt.Sprintf("test_%s_%d.db", time.Now().Format("20060102150405"), os.Getpid())

	// Clean up function
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func TestScanRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScanRepository(db)
	ctx := context.Background()

	// Test Create
	result := &models.ScanResult{
		OwnerEmail:     "jane@example.com",
		SubmittedAt:    time.Now(),
		PredictedClass: "js",
		Confidence:     81.33,
		ImageRef:       "scan_results/test.png",
	}

	err := repo.Create(ctx, result)
	if err != nil {
		t.Fatalf("Failed to create scan result: %v", err)
	}

	if result.ID == "" {
		t.Error("Expected scan result ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, result.ID)
	if err != nil {
		t.Fatalf("Failed to get scan result by ID: %v", err)
	}

	if retrieved.PredictedClass != "js" {
		t.Errorf("Expected predicted class js, got %s", retrieved.PredictedClass)
	}

	if retrieved.Confidence != 81.33 {
		t.Errorf("Expected confidence 81.33, got %v", retrieved.Confidence)
	}

	// Test ListByOwner
	results, err := repo.ListByOwner(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Failed to list scan results by owner: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("Expected 1 scan result, got %d", len(results))
	}

	// Test CountByOwner
	count, err := repo.CountByOwner(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Failed to count scan results: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	// Test that an invalid record is rejected before the write
	invalid := &models.ScanResult{
		OwnerEmail:     "jane@example.com",
		SubmittedAt:    time.Now(),
		PredictedClass: "trojan",
		Confidence:     50,
	}
	if err := repo.Create(ctx, invalid); err == nil {
		t.Error("Expected error creating scan result with unknown label")
	}
}

// TestScanRepositoryOwnershipScoping verifies the central access-control
// property: listing one owner's results never returns another owner's.
func TestScanRepositoryOwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScanRepository(db)
	ctx := context.Background()

	owners := []string{"alice@example.com", "bob@example.com"}
	for i, owner := range owners {
		for j := 0; j < 3; j++ {
			result := &models.ScanResult{
				OwnerEmail:     owner,
				SubmittedAt:    time.Now(),
				PredictedClass: models.PayloadLabels[(i+j)%len(models.PayloadLabels)],
				Confidence:     float64(10*i + j),
			}
			if err := repo.Create(ctx, result); err != nil {
				t.Fatalf("Failed to create scan result: %v", err)
			}
		}
	}

	aliceResults, err := repo.ListByOwner(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("Failed to list alice's scan results: %v", err)
	}

	if len(aliceResults) != 3 {
		t.Errorf("Expected 3 scan results for alice, got %d", len(aliceResults))
	}

	for _, result := range aliceResults {
		if result.OwnerEmail != "alice@example.com" {
			t.Errorf("ListByOwner(alice) returned record owned by %s", result.OwnerEmail)
		}
	}

	// Unknown owner gets nothing, not an error
	noneResults, err := repo.ListByOwner(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("Failed to list scan results for unknown owner: %v", err)
	}
	if len(noneResults) != 0 {
		t.Errorf("Expected 0 scan results for unknown owner, got %d", len(noneResults))
	}

	// ListAll sees both owners
	allResults, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("Failed to list all scan results: %v", err)
	}
	if len(allResults) != 6 {
		t.Errorf("Expected 6 scan results in total, got %d", len(allResults))
	}
}

func TestScanRepositoryListByPrediction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewScanRepository(db)
	ctx := context.Background()

	classes := []string{"js", "js", "clean"}
	for _, class := range classes {
		result := &models.ScanResult{
			OwnerEmail:     "jane@example.com",
			SubmittedAt:    time.Now(),
			PredictedClass: class,
			Confidence:     90,
		}
		if err := repo.Create(ctx, result); err != nil {
			t.Fatalf("Failed to create scan result: %v", err)
		}
	}

	jsResults, err := repo.ListByPrediction(ctx, "js")
	if err != nil {
		t.Fatalf("Failed to list scan results by prediction: %v", err)
	}

	if len(jsResults) != 2 {
		t.Errorf("Expected 2 js scan results, got %d", len(jsResults))
	}
}

func TestActivityLogRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityLogRepository(db)
	ctx := context.Background()

	// Test Create
	entry, err := repo.Create(ctx, "jane@example.com", "jane@example.com logged in")
	if err != nil {
		t.Fatalf("Failed to create activity log entry: %v", err)
	}

	if entry.ID == "" {
		t.Error("Expected entry ID to be set after creation")
	}

	if entry.OccurredAt.IsZero() {
		t.Error("Expected entry timestamp to be set at write time")
	}

	// Append is immediately visible in ListAll
	entries, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("Failed to list activity log: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 activity log entry, got %d", len(entries))
	}

	if entries[0].Activity != "jane@example.com logged in" {
		t.Errorf("Unexpected activity text: %s", entries[0].Activity)
	}

	// Test ListByActor filtering
	if _, err := repo.Create(ctx, models.SystemActor, "Schema migrated"); err != nil {
		t.Fatalf("Failed to create system entry: %v", err)
	}

	janeEntries, err := repo.ListByActor(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Failed to list entries by actor: %v", err)
	}

	if len(janeEntries) != 1 {
		t.Errorf("Expected 1 entry for jane, got %d", len(janeEntries))
	}

	for _, e := range janeEntries {
		if e.Actor != "jane@example.com" {
			t.Errorf("ListByActor(jane) returned entry from %s", e.Actor)
		}
	}
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Test Upsert (insert)
	user := &models.User{
		ID:    "oidc|abc123",
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}

	err := repo.Upsert(ctx, user)
	if err != nil {
		t.Fatalf("Failed to upsert user: %v", err)
	}

	if user.Role != models.RoleUser {
		t.Errorf("Expected default role USER, got %s", user.Role)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, "oidc|abc123")
	if err != nil {
		t.Fatalf("Failed to get user by ID: %v", err)
	}

	if retrieved.Email != "jane@example.com" {
		t.Errorf("Expected email jane@example.com, got %s", retrieved.Email)
	}

	// Test Upsert (update) refreshes profile fields but keeps created_at
	user.Name = "Jane D."
	if err := repo.Upsert(ctx, user); err != nil {
		t.Fatalf("Failed to re-upsert user: %v", err)
	}

	updated, err := repo.GetByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Failed to get user by email: %v", err)
	}

	if updated.Name != "Jane D." {
		t.Errorf("Expected updated name 'Jane D.', got %s", updated.Name)
	}

	// Test UpdateName
	if err := repo.UpdateName(ctx, "oidc|abc123", "Jane Updated"); err != nil {
		t.Fatalf("Failed to update name: %v", err)
	}

	// Test UpdateAvatarRef
	if err := repo.UpdateAvatarRef(ctx, "oidc|abc123", "avatars/jane.png"); err != nil {
		t.Fatalf("Failed to update avatar ref: %v", err)
	}

	final, err := repo.GetByID(ctx, "oidc|abc123")
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}

	if final.Name != "Jane Updated" || final.AvatarRef != "avatars/jane.png" {
		t.Errorf("Unexpected user after updates: %+v", final)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	// Updating a missing user fails
	if err := repo.UpdateName(ctx, "missing", "Nobody"); err == nil {
		t.Error("Expected error updating missing user")
	}
}
