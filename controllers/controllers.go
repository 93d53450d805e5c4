package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/destegai/scan-server/classifier"
	"github.com/destegai/scan-server/services"
	"github.com/destegai/scan-server/storage"
)

// renderJSON writes a JSON response with the provided status code
func renderJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// renderError writes a JSON error response
func renderError(w http.ResponseWriter, statusCode int, message string) {
	renderJSON(w, statusCode, map[string]string{"error": message})
}

// statusForError maps the pipeline error taxonomy onto HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrClassifierUnavailable),
		errors.Is(err, classifier.ErrUnknownLabel),
		errors.Is(err, classifier.ErrBadResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Auth     *AuthController
	Scan     *ScanController
	Activity *ActivityController
	Profile  *ProfileController
	Admin    *AdminController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, blobs storage.BlobStore) *Controllers {
	return &Controllers{
		Auth:     NewAuthController(services),
		Scan:     NewScanController(services, blobs),
		Activity: NewActivityController(services),
		Profile:  NewProfileController(services),
		Admin:    NewAdminController(services),
	}
}
