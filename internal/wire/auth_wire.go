package wire

import (
	"net/http"

	"rentoverse-web/internal/adaptor"
	"rentoverse-web/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		target := "/login"
		if sess, ok := utils.GetSessionFromContext(req.Context()); ok && sess.LoggedIn() {
			target = adaptor.HomeFor(sess.Role)
		}
		http.Redirect(w, req, target, http.StatusSeeOther)
	})
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.ShowRegister)
	r.Post("/register", authHandler.Register)
	r.Get("/verify", authHandler.ShowVerify)
	r.Post("/verify", authHandler.Verify)
	r.Post("/logout", authHandler.Logout)
}
