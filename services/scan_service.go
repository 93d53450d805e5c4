package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/destegai/scan-server/classifier"
	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/repositories"
)

// pngMagic is the 8-byte PNG file signature
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// ScanUpload is one user-submitted file
type ScanUpload struct {
	Filename string
	Data     []byte
}

// ScanConfig holds the pipeline limits
type ScanConfig struct {
	MaxUploadBytes int64
}

// ScanService interface defines the scan pipeline: validate, classify,
// and separately persist outcomes the user chose to keep.
type ScanService interface {
	Classify(ctx context.Context, upload *ScanUpload) (*models.ScanOutcome, error)
	Save(ctx context.Context, outcome *models.ScanOutcome, actor, imageRef string) (*models.ScanResult, error)
	GetHistory(ctx context.Context, ownerEmail string) ([]models.ScanResult, error)
}

// scanService implements ScanService interface
type scanService struct {
	classifier classifier.Client
	scanRepo   repositories.ScanRepository
	activity   ActivityService
	config     ScanConfig
}

// NewScanService creates a new scan pipeline service
func NewScanService(client classifier.Client, scanRepo repositories.ScanRepository, activity ActivityService, config ScanConfig) ScanService {
	return &scanService{
		classifier: client,
		scanRepo:   scanRepo,
		activity:   activity,
		config:     config,
	}
}

// Classify validates the upload and runs it through the remote
// classifier. The outcome is returned before any persistence so the
// user can inspect it without a write; Save records it if they choose.
func (s *scanService) Classify(ctx context.Context, upload *ScanUpload) (*models.ScanOutcome, error) {
	if err := s.validateUpload(upload); err != nil {
		return nil, err
	}

	prediction, err := s.classifier.Classify(ctx, upload.Filename, upload.Data)
	if err != nil {
		if errors.Is(err, classifier.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
		}
		// Protocol errors (unknown label, malformed reply) are a defect
		// in the remote service and surface as-is.
		return nil, err
	}

	return &models.ScanOutcome{
		PredictedClass: prediction.PredictedClass,
		Confidence:     prediction.Confidence,
		SubmittedAt:    time.Now(),
	}, nil
}

// Save persists a classified outcome under the acting user and appends
// one audit entry describing the save. The audit write is best-effort:
// its failure never rolls back the record or surfaces to the caller.
func (s *scanService) Save(ctx context.Context, outcome *models.ScanOutcome, actor, imageRef string) (*models.ScanResult, error) {
	if outcome == nil {
		return nil, fmt.Errorf("%w: no outcome to save", ErrInvalidInput)
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: missing acting user", ErrInvalidInput)
	}

	result := &models.ScanResult{
		OwnerEmail:     actor,
		SubmittedAt:    outcome.SubmittedAt,
		PredictedClass: outcome.PredictedClass,
		Confidence:     outcome.Confidence,
		ImageRef:       imageRef,
	}

	if err := s.scanRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	s.activity.Append(ctx, actor, fmt.Sprintf("Saved scan result %s (%s, %.2f%%)",
		result.ID, result.PredictedClass, result.Confidence))

	return result, nil
}

// GetHistory retrieves the acting user's saved scan results, newest first
func (s *scanService) GetHistory(ctx context.Context, ownerEmail string) ([]models.ScanResult, error) {
	results, err := s.scanRepo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get scan history: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].SubmittedAt.After(results[j].SubmittedAt)
	})

	return results, nil
}

// validateUpload runs the local checks. No network call is made when
// any of them fails.
func (s *scanService) validateUpload(upload *ScanUpload) error {
	if upload == nil || len(upload.Data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalidInput)
	}

	if s.config.MaxUploadBytes > 0 && int64(len(upload.Data)) > s.config.MaxUploadBytes {
		return fmt.Errorf("%w: payload exceeds %d bytes", ErrInvalidInput, s.config.MaxUploadBytes)
	}

	if ext := strings.ToLower(filepath.Ext(upload.Filename)); ext != ".png" {
		return fmt.Errorf("%w: unsupported file extension %q", ErrInvalidInput, ext)
	}

	if len(upload.Data) < len(pngMagic) || !bytes.Equal(upload.Data[:len(pngMagic)], pngMagic) {
		return fmt.Errorf("%w: not a PNG image", ErrInvalidInput)
	}

	return nil
}
