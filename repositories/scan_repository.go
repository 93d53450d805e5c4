package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/destegai/scan-server/models"
)

// ScanRepository interface defines scan result database operations.
// Scan results are append-create-only: no update or delete exists.
type ScanRepository interface {
	Create(ctx context.Context, result *models.ScanResult) error
	GetByID(ctx context.Context, id string) (*models.ScanResult, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.ScanResult, error)
	ListByPrediction(ctx context.Context, predictedClass string) ([]models.ScanResult, error)
	ListAll(ctx context.Context) ([]models.ScanResult, error)
	CountByOwner(ctx context.Context, ownerEmail string) (int, error)
}

// scanRepository implements ScanRepository interface
type scanRepository struct {
	db *sql.DB
}

// NewScanRepository creates a new scan result repository
func NewScanRepository(db *sql.DB) ScanRepository {
	return &scanRepository{db: db}
}

// Create inserts a new scan result. The record must be fully formed and
// valid before the call; the id is generated here, on persist.
func (r *scanRepository) Create(ctx context.Context, result *models.ScanResult) error {
	if errs := result.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid scan result: %s", strings.Join(errs, ", "))
	}

	query := `
		INSERT INTO scan_results (id, owner_email, submitted_at, predicted_class, confidence, image_ref)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id,
		result.OwnerEmail,
		result.SubmittedAt,
		result.PredictedClass,
		result.Confidence,
		result.ImageRef,
	)
	if err != nil {
		return fmt.Errorf("failed to create scan result: %w", err)
	}

	result.ID = id
	return nil
}

// GetByID retrieves a scan result by id
func (r *scanRepository) GetByID(ctx context.Context, id string) (*models.ScanResult, error) {
	query := `
		SELECT id, owner_email, submitted_at, predicted_class, confidence, image_ref
		FROM scan_results
		WHERE id = ?
	`

	var result models.ScanResult
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&result.ID,
		&result.OwnerEmail,
		&result.SubmittedAt,
		&result.PredictedClass,
		&result.Confidence,
		&result.ImageRef,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scan result %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan result: %w", err)
	}

	return &result, nil
}

// ListByOwner retrieves all scan results belonging to one owner and no
// others. Callers sort if order matters.
func (r *scanRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.ScanResult, error) {
	query := `
		SELECT id, owner_email, submitted_at, predicted_class, confidence, image_ref
		FROM scan_results
		WHERE owner_email = ?
	`
	return r.list(ctx, query, ownerEmail)
}

// ListByPrediction retrieves all scan results with the given predicted class
func (r *scanRepository) ListByPrediction(ctx context.Context, predictedClass string) ([]models.ScanResult, error) {
	query := `
		SELECT id, owner_email, submitted_at, predicted_class, confidence, image_ref
		FROM scan_results
		WHERE predicted_class = ?
	`
	return r.list(ctx, query, predictedClass)
}

// ListAll retrieves every scan result. Callers must gate this behind an
// admin role check; the repository itself does not enforce it.
func (r *scanRepository) ListAll(ctx context.Context) ([]models.ScanResult, error) {
	query := `
		SELECT id, owner_email, submitted_at, predicted_class, confidence, image_ref
		FROM scan_results
	`
	return r.list(ctx, query)
}

// CountByOwner returns the number of scan results belonging to one owner
func (r *scanRepository) CountByOwner(ctx context.Context, ownerEmail string) (int, error) {
	query := `SELECT COUNT(*) FROM scan_results WHERE owner_email = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, ownerEmail).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scan results: %w", err)
	}

	return count, nil
}

// list runs a scan result query and materializes the rows
func (r *scanRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.ScanResult, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan results: %w", err)
	}
	defer rows.Close()

	var results []models.ScanResult
	for rows.Next() {
		var result models.ScanResult
		err := rows.Scan(
			&result.ID,
			&result.OwnerEmail,
			&result.SubmittedAt,
			&result.PredictedClass,
			&result.Confidence,
			&result.ImageRef,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scan result row: %w", err)
		}
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scan results: %w", err)
	}

	return results, nil
}
