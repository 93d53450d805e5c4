package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/userctx"
)

// Session keys written by the auth controller at callback time
const (
	SessionUserID    = "user_id"
	SessionUserEmail = "user_email"
	SessionUserRole  = "user_role"
)

// RequireAuth ensures the user is authenticated and places the resolved
// identity in the request context for everything downstream
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		uid, ok := sess.Get(SessionUserID).(string)
		if !ok || uid == "" {
			http.Error(w, `{"error": "authentication required"}`, http.StatusUnauthorized)
			return
		}

		email, _ := sess.Get(SessionUserEmail).(string)
		role, _ := sess.Get(SessionUserRole).(string)

		identity := userctx.Identity{
			UID:   uid,
			Email: email,
			Role:  models.Role(role),
		}

		next.ServeHTTP(w, r.WithContext(userctx.WithIdentity(r.Context(), identity)))
	})
}

// RequireAdmin gates a route group to ADMIN-role users. Must be mounted
// inside RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := userctx.GetIdentity(r.Context())
		if !ok || !identity.IsAdmin() {
			http.Error(w, `{"error": "admin role required"}`, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
