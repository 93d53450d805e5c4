package models

import (
	"math"
	"time"
)

// LabelClean is returned by the classifier when no payload is detected
const LabelClean = "clean"

// PayloadLabels is the fixed set of stego-payload classes the model
// can report, besides LabelClean.
var PayloadLabels = []string{"js", "html", "ps", "exe", "url"}

// IsKnownLabel reports whether label is a class the classifier is
// allowed to return. Anything else is a protocol violation, never
// silently mapped to clean.
func IsKnownLabel(label string) bool {
	if label == LabelClean {
		return true
	}
	for _, l := range PayloadLabels {
		if l == label {
			return true
		}
	}
	return false
}

// RoundConfidence normalizes a confidence percentage to two-decimal
// precision, the granularity stored and displayed everywhere.
func RoundConfidence(confidence float64) float64 {
	return math.Round(confidence*100) / 100
}

// ScanOutcome is the result of one classification attempt, before the
// user decides to save it. It carries no identity of its own.
type ScanOutcome struct {
	PredictedClass string    `json:"predicted_class"`
	Confidence     float64   `json:"confidence"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// ScanResult is a persisted scan outcome, bound to the user who
// produced it. Never mutated after creation.
type ScanResult struct {
	ID             string    `json:"id" db:"id"`
	OwnerEmail     string    `json:"owner_email" db:"owner_email"`
	SubmittedAt    time.Time `json:"submitted_at" db:"submitted_at"`
	PredictedClass string    `json:"predicted_class" db:"predicted_class"`
	Confidence     float64   `json:"confidence" db:"confidence"`
	ImageRef       string    `json:"image_ref" db:"image_ref"`
}

// Validate checks the invariants a scan result must hold before it is
// handed to the store.
func (s *ScanResult) Validate() []string {
	var errors []string

	if s.OwnerEmail == "" {
		errors = append(errors, "Owner email is required")
	}

	if !IsKnownLabel(s.PredictedClass) {
		errors = append(errors, "Predicted class must be a known label")
	}

	if s.Confidence < 0 || s.Confidence > 100 {
		errors = append(errors, "Confidence must be between 0 and 100")
	}

	if s.SubmittedAt.IsZero() {
		errors = append(errors, "Submission time is required")
	}

	return errors
}
