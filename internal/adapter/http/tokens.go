package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

// handleRegisterToken stores a push token for the calling user.
func (h *Handler) handleRegisterToken(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFrom(r.Context())
	var req port.TokenRegistration
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := h.tokens.RegisterToken(r.Context(), actor, req); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, okResponse{OK: true})
}

func (h *Handler) handleUnregisterToken(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFrom(r.Context())
	if err := h.tokens.UnregisterToken(r.Context(), actor, chi.URLParam(r, "token")); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, okResponse{OK: true})
}
