package services

import "errors"

// Error taxonomy for the scan pipeline. Every failure is scoped to one
// scan attempt; nothing here is process-fatal.
var (
	// ErrInvalidInput means the uploaded file failed validation. No
	// network call was made and no side effect occurred.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClassifierUnavailable means the remote classify call failed or
	// timed out. No scan record exists; resubmitting is an explicit
	// user action, never automatic.
	ErrClassifierUnavailable = errors.New("classifier unavailable")

	// ErrPersistenceFailure means the outcome was computed but could
	// not be saved. Surfaced so the user knows the result was not
	// recorded; the outcome itself was already returned for display.
	ErrPersistenceFailure = errors.New("failed to persist scan result")
)
