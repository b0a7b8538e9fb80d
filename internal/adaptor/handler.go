package adaptor

import (
	"rentoverse-web/internal/countdown"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/usecase"
	"rentoverse-web/internal/web"
	"rentoverse-web/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Renter    *RenterHandler
	Payment   *PaymentHandler
	Provider  *ProviderHandler
	Admin     *AdminHandler
	Support   *SupportHandler
	Countdown *CountdownHandler
}

func NewHandler(
	service *usecase.Service,
	renderer *web.Renderer,
	store *session.Store,
	registry *countdown.Registry,
	config *utils.Config,
	log *zap.Logger,
) *Handler {
	cookies := newCookieWriter(config)
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, renderer, store, cookies, log),
		Renter:    NewRenterHandler(service.Renter, renderer, log),
		Payment:   NewPaymentHandler(service.Payment, renderer, store, log),
		Provider:  NewProviderHandler(service.Provider, renderer, store, log),
		Admin:     NewAdminHandler(service.Admin, renderer, log),
		Support:   NewSupportHandler(service.Support, renderer, log),
		Countdown: NewCountdownHandler(registry, log),
	}
}
