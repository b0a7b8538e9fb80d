package usecase

import (
	"rentoverse-web/internal/data/backend"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Renter   RenterService
	Payment  PaymentService
	Provider ProviderService
	Admin    AdminService
	Support  SupportService
}

func NewService(be *backend.Backend, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(be, log),
		Renter:   NewRenterService(be, log),
		Payment:  NewPaymentService(be, log),
		Provider: NewProviderService(be, log),
		Admin:    NewAdminService(be, log),
		Support:  NewSupportService(be, log),
	}
}
