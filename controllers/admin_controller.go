package controllers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/destegai/scan-server/services"
)

// AdminController serves the operator dashboard views. Every route here
// is mounted behind the admin gate.
type AdminController struct {
	services *services.Services
}

// NewAdminController creates a new admin controller
func NewAdminController(services *services.Services) *AdminController {
	return &AdminController{
		services: services,
	}
}

// Overview handles GET /api/admin/overview
func (c *AdminController) Overview(w http.ResponseWriter, r *http.Request) {
	overviews, err := c.services.Admin.BuildUserOverview(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, overviews)
}

// UserScans handles GET /api/admin/users/{email}/scans
func (c *AdminController) UserScans(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid email parameter")
		return
	}

	results, err := c.services.Admin.GetUserScans(r.Context(), email)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, results)
}

// UserActivity handles GET /api/admin/users/{email}/activity
func (c *AdminController) UserActivity(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid email parameter")
		return
	}

	entries, err := c.services.Admin.GetUserActivity(r.Context(), email)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, entries)
}

// AllScans handles GET /api/admin/scans
func (c *AdminController) AllScans(w http.ResponseWriter, r *http.Request) {
	results, err := c.services.Admin.ListAllScans(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, results)
}

// ScansReport handles GET /api/admin/scans/report, the cross-user PDF
func (c *AdminController) ScansReport(w http.ResponseWriter, r *http.Request) {
	results, err := c.services.Admin.ListAllScans(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	doc, err := c.services.Report.ExportScanResults("DeStegAi Scan Report (all users)", results)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="all_scans.pdf"`)
	w.Write(doc)
}
