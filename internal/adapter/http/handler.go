package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Campaign management is reserved to console admins while push token
// routes accept any verified user. Routes are registered on a chi.Router.
type Handler struct {
	campaigns port.CampaignUseCase
	tokens    port.TokenUseCase
	auth      port.Authorizer
	logger    *slog.Logger
	router    chi.Router
}

// Options tunes the router. A zero RequestTimeout disables the per-request
// deadline.
type Options struct {
	RequestTimeout time.Duration
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignUseCase,
	tokens port.TokenUseCase,
	auth port.Authorizer,
	logger *slog.Logger,
	opts Options,
) *Handler {
	h := &Handler{campaigns: campaigns, tokens: tokens, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, MetricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}

		r.Group(func(r chi.Router) {
			r.Use(h.AdminOnly)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/migrate-legacy", h.handleMigrateLegacy)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Patch("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Post("/campaigns/{id}/send", h.handleSendCampaign)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticated)
			r.Post("/push-tokens", h.handleRegisterToken)
			r.Delete("/push-tokens/{token}", h.handleUnregisterToken)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
