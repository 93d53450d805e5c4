package controllers

import (
	"io"
	"net/http"

	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/services"
	"github.com/destegai/scan-server/userctx"
)

// ProfileController handles the acting user's profile
type ProfileController struct {
	services *services.Services
}

// NewProfileController creates a new profile controller
func NewProfileController(services *services.Services) *ProfileController {
	return &ProfileController{
		services: services,
	}
}

// Show handles GET /api/profile
func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	user, err := c.services.Account.GetProfile(r.Context(), identity.UID)
	if err != nil {
		renderError(w, http.StatusNotFound, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, user)
}

// UpdateName handles POST /api/profile/name
func (c *ProfileController) UpdateName(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	form := &models.ProfileForm{Name: r.FormValue("name")}
	if err := c.services.Account.UpdateProfileName(r.Context(), identity, form); err != nil {
		renderError(w, statusForError(err), err.Error())
		return
	}

	renderJSON(w, http.StatusOK, map[string]string{"name": form.Name})
}

// UpdateAvatar handles POST /api/profile/avatar
func (c *ProfileController) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	file, header, err := r.FormFile("avatar")
	if err != nil {
		renderError(w, http.StatusBadRequest, "missing avatar upload: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		renderError(w, http.StatusBadRequest, "failed to read avatar upload: "+err.Error())
		return
	}

	ref, err := c.services.Account.UpdateAvatar(r.Context(), identity, header.Filename, data)
	if err != nil {
		renderError(w, statusForError(err), err.Error())
		return
	}

	renderJSON(w, http.StatusOK, map[string]string{"avatar_ref": ref})
}

// RequestEmailChange handles POST /api/profile/email. The credential
// change itself happens at the identity provider after
// re-authentication; this only records the request in the audit trail.
func (c *ProfileController) RequestEmailChange(w http.ResponseWriter, r *http.Request) {
	identity, _ := userctx.GetIdentity(r.Context())

	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	newEmail := r.FormValue("email")
	if !models.IsValidEmail(newEmail) {
		renderError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	c.services.Account.RecordEmailChange(r.Context(), identity, newEmail)
	renderJSON(w, http.StatusAccepted, map[string]string{"email": newEmail})
}
