package wire

import (
	"rentoverse-web/internal/adaptor"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRenter(r chi.Router, renterHandler *adaptor.RenterHandler, paymentHandler *adaptor.PaymentHandler, log *zap.Logger) {
	// ==================== RENTER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin(log))
		r.Use(middleware.RequireRole(entity.RoleRenter, log))

		r.Get("/renter", renterHandler.Dashboard)
		r.Post("/renter/request", renterHandler.RequestRoom)
		r.Post("/renter/cancel", renterHandler.Cancel)
		r.Post("/renter/decision", renterHandler.Decision)

		r.Get("/pay", paymentHandler.ShowPay)
		r.Post("/pay", paymentHandler.Pay)
	})
}
