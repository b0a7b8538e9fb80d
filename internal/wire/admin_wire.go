package wire

import (
	"rentoverse-web/internal/adaptor"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, authHandler *adaptor.AuthHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/admin/login", authHandler.ShowAdminLogin)
	r.Post("/admin/login", authHandler.AdminLogin)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin(log))
		r.Use(middleware.RequireRole(entity.RoleAdmin, log))

		r.Get("/admin", adminHandler.Dashboard)
		r.Get("/admin/payments", adminHandler.Payments)
		r.Post("/admin/payments/action", adminHandler.PaymentAction)
		r.Post("/admin/payouts/mark-paid", adminHandler.MarkPayoutPaid)
		r.Post("/admin/users/delete", adminHandler.DeleteUser)
		r.Post("/admin/rooms/delete", adminHandler.DeleteRoom)
		r.Post("/admin/bookings/delete", adminHandler.DeleteBooking)
	})
}
