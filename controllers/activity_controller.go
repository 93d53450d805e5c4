package controllers

import (
	"net/http"

	"github.com/destegai/scan-server/services"
	"github.com/destegai/scan-server/userctx"
)

// ActivityController serves the acting user's own audit trail
type ActivityController struct {
	services *services.Services
}

// NewActivityController creates a new activity controller
func NewActivityController(services *services.Services) *ActivityController {
	return &ActivityController{
		services: services,
	}
}

// Index handles GET /api/activity
func (c *ActivityController) Index(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	entries, err := c.services.Activity.ListByActor(r.Context(), identity.Email)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, entries)
}

// Download handles GET /api/activity/pdf
func (c *ActivityController) Download(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	entries, err := c.services.Activity.ListByActor(r.Context(), identity.Email)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	doc, err := c.services.Report.ExportActivityLog(identity.Email, entries)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="activity_log.pdf"`)
	w.Write(doc)
}
