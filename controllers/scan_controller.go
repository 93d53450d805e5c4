package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/services"
	"github.com/destegai/scan-server/storage"
	"github.com/destegai/scan-server/userctx"
)

// ScanController handles the classify and save endpoints
type ScanController struct {
	services *services.Services
	blobs    storage.BlobStore
}

// NewScanController creates a new scan controller
func NewScanController(services *services.Services, blobs storage.BlobStore) *ScanController {
	return &ScanController{
		services: services,
		blobs:    blobs,
	}
}

// Classify handles POST /api/scans/classify. The outcome is returned
// without any write; the user reviews it and calls Save to keep it.
func (c *ScanController) Classify(w http.ResponseWriter, r *http.Request) {
	upload, err := readUpload(r)
	if err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := c.services.Scan.Classify(r.Context(), upload)
	if err != nil {
		renderError(w, statusForError(err), err.Error())
		return
	}

	renderJSON(w, http.StatusOK, outcome)
}

// Save handles POST /api/scans. The request re-submits the image along
// with the reviewed outcome; the image goes to the blob store first and
// its reference is embedded in the persisted record.
func (c *ScanController) Save(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	upload, err := readUpload(r)
	if err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := readOutcome(r)
	if err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	blobPath := fmt.Sprintf("scan_results/%s%s", uuid.NewString(), filepath.Ext(upload.Filename))
	imageRef, err := c.blobs.Put(r.Context(), blobPath, upload.Data)
	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to store image: "+err.Error())
		return
	}

	result, err := c.services.Scan.Save(r.Context(), outcome, identity.Email, imageRef)
	if err != nil {
		renderError(w, statusForError(err), err.Error())
		return
	}

	renderJSON(w, http.StatusCreated, result)
}

// History handles GET /api/scans
func (c *ScanController) History(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	results, err := c.services.Scan.GetHistory(r.Context(), identity.Email)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, results)
}

// Report handles GET /api/scans/report, the per-user scan history PDF
func (c *ScanController) Report(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	results, err := c.services.Scan.GetHistory(r.Context(), identity.Email)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	doc, err := c.services.Report.ExportScanResults("DeStegAi Scan Report", results)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="scan_report.pdf"`)
	w.Write(doc)
}

// readUpload pulls the multipart file part into a ScanUpload. Size
// enforcement beyond this basic cap happens in the pipeline.
func readUpload(r *http.Request) (*services.ScanUpload, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing file upload: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file upload: %v", err)
	}

	return &services.ScanUpload{
		Filename: header.Filename,
		Data:     data,
	}, nil
}

// readOutcome reconstructs the reviewed outcome from the save request
func readOutcome(r *http.Request) (*models.ScanOutcome, error) {
	confidence, err := strconv.ParseFloat(r.FormValue("confidence"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid confidence: %v", err)
	}

	submittedAt, err := time.Parse(time.RFC3339, r.FormValue("submitted_at"))
	if err != nil {
		return nil, fmt.Errorf("invalid submitted_at: %v", err)
	}

	return &models.ScanOutcome{
		PredictedClass: r.FormValue("predicted_class"),
		Confidence:     models.RoundConfidence(confidence),
		SubmittedAt:    submittedAt,
	}, nil
}
