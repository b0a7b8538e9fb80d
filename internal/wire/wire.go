// internal/wire/wire.go
package wire

import (
	"net/http"

	"rentoverse-web/internal/adaptor"
	"rentoverse-web/internal/countdown"
	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/usecase"
	"rentoverse-web/internal/web"
	"rentoverse-web/pkg/middleware"
	"rentoverse-web/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router   *chi.Mux
	Registry *countdown.Registry
}

// Wiring initializes services, handlers and routes.
func Wiring(be *backend.Backend, store *session.Store, renderer *web.Renderer, config *utils.Config, logger *zap.Logger) *App {
	registry := countdown.NewRegistry()
	service := usecase.NewService(be, logger)
	handler := adaptor.NewHandler(service, renderer, store, registry, config, logger)

	router := setupRouter(handler, store, config, logger)

	return &App{
		Router:   router,
		Registry: registry,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	store *session.Store,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Session(store, config.Session.CookieName, logger))

	// Outside CSRF: static assets, the SSE stream, and the JSON bot
	// endpoint the support page calls without a form token.
	r.Handle("/static/*", web.Static())
	r.Get("/events/countdown", handler.Countdown.Events)
	r.Post("/chatbot/ask", handler.Support.Ask)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(csrf.Protect(
			[]byte(config.Session.CSRFKey),
			csrf.Secure(config.Session.Secure),
			csrf.Path("/"),
		))

		wireAuth(r, handler.Auth, logger)
		wireRenter(r, handler.Renter, handler.Payment, logger)
		wireProvider(r, handler.Provider, logger)
		wireAdmin(r, handler.Admin, handler.Auth, logger)
		wireSupport(r, handler.Support, logger)
	})

	return r
}
