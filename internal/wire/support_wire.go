package wire

import (
	"rentoverse-web/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSupport(r chi.Router, supportHandler *adaptor.SupportHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// Support is reachable anonymously; the form prefills when a session
	// exists.
	r.Get("/support", supportHandler.ShowSupport)
	r.Post("/support", supportHandler.Submit)
}
