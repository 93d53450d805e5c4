package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/destegai/scan-server/authenticator"
	"github.com/destegai/scan-server/middleware"
	"github.com/destegai/scan-server/services"
)

// AuthController handles the OIDC login round-trip and session setup
type AuthController struct {
	services *services.Services
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services) *AuthController {
	return &AuthController{
		services: services,
	}
}

// Login initiates the authentication process
func (c *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Generate random state
		state, err := generateRandomState()
		if err != nil {
			renderError(w, http.StatusInternalServerError, err.Error())
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set("state", state)

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the redirect back from the identity provider. The
// verified identity is upserted into the user directory and the session
// is populated for the auth middleware.
func (c *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		// Verify state
		storedState, ok := sess.Get("state").(string)
		if !ok || storedState == "" {
			renderError(w, http.StatusBadRequest, "state not found in session")
			return
		}
		if r.URL.Query().Get("state") != storedState {
			renderError(w, http.StatusBadRequest, "invalid state parameter")
			return
		}

		// Exchange the code for a token
		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			renderError(w, http.StatusUnauthorized, "failed to exchange authorization code: "+err.Error())
			return
		}

		// Verify the ID token and extract the identity
		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			renderError(w, http.StatusInternalServerError, "failed to verify ID token: "+err.Error())
			return
		}

		user, err := c.services.Account.SignIn(r.Context(), claims.Subject(), claims.Name(), claims.Email())
		if err != nil {
			renderError(w, statusForError(err), "sign-in failed: "+err.Error())
			return
		}

		// The role is read from the directory here, once; the session
		// carries it for the rest of the sign-in.
		sess.Set(middleware.SessionUserID, user.ID)
		sess.Set(middleware.SessionUserEmail, user.Email)
		sess.Set(middleware.SessionUserRole, string(user.Role))
		sess.Delete("state")

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout clears the session and writes the sign-out audit hook
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	if email, ok := sess.Get(middleware.SessionUserEmail).(string); ok {
		c.services.Account.SignOut(r.Context(), email)
	}

	sess.Delete(middleware.SessionUserID)
	sess.Delete(middleware.SessionUserEmail)
	sess.Delete(middleware.SessionUserRole)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
