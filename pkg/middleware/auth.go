package middleware

import (
	"net/http"

	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/pkg/utils"

	"go.uber.org/zap"
)

// Session resolves the session cookie into request context. Anonymous
// requests pass through with no session set; page handlers decide what an
// anonymous visitor may see.
func Session(store *session.Store, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, ok := store.Get(cookie.Value)
			if !ok {
				// stale cookie, treat as anonymous
				logger.Debug("Unknown session token", zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetSessionContext(r.Context(), cookie.Value, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin redirects anonymous visitors to the login page.
func RequireLogin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := utils.GetSessionFromContext(r.Context())
			if !ok || !sess.LoggedIn() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole gates a subtree to one role. Logged-in users with the wrong
// role get a 403 instead of a redirect loop.
func RequireRole(role entity.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := utils.GetSessionFromContext(r.Context())
			if !ok || !sess.LoggedIn() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if entity.NormalizeRole(sess.Role) != role {
				logger.Warn("Role check failed",
					zap.String("have", sess.Role),
					zap.String("want", string(role)),
					zap.String("path", r.URL.Path))
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
