package wire

import (
	"rentoverse-web/internal/adaptor"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProvider(r chi.Router, providerHandler *adaptor.ProviderHandler, log *zap.Logger) {
	// ==================== PROVIDER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin(log))
		r.Use(middleware.RequireRole(entity.RoleProvider, log))

		r.Get("/provider", providerHandler.Dashboard)
		r.Post("/provider/respond", providerHandler.Respond)
		r.Post("/provider/payout", providerHandler.Payout)
		r.Post("/provider/rooms/delete", providerHandler.DeleteRoom)

		r.Get("/rooms/new", providerHandler.ShowPostRoom)
		r.Post("/rooms/new", providerHandler.PostRoom)
	})
}
