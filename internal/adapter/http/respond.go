package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// statusOf maps an error returned by a use case to an HTTP status.
func statusOf(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, port.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, port.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, port.ErrChannelUnsupported):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		msg = "internal error"
	case http.StatusUnauthorized:
		msg = port.ErrUnauthenticated.Error()
	case http.StatusNotFound:
		msg = port.ErrNotFound.Error()
	case http.StatusConflict:
		msg = port.ErrConflict.Error()
	}
	h.writeJSON(w, status, errorBody{Error: msg})
}

// decodeJSON reads the request body into v. A value of the wrong type for
// a known field is reported against that field.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		h.respondError(w, r, fieldTypeError(typeErr))
		return false
	}
	h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
	return false
}

func fieldTypeError(e *json.UnmarshalTypeError) *domain.ValidationError {
	if e.Type != nil && e.Type.Kind() == reflect.String {
		return &domain.ValidationError{Field: e.Field, Reason: e.Field + " is required"}
	}
	return &domain.ValidationError{Field: e.Field, Reason: e.Field + " has an invalid type"}
}
