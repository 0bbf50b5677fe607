package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"addesigner/internal/copygen"
	"addesigner/internal/domain"
	"addesigner/internal/editor"
	"addesigner/internal/infra"
	"addesigner/internal/middleware"
	"addesigner/internal/render"
	"addesigner/internal/storage"
)

const defaultMaxUploadBytes = 15 << 20

// App carries the dependencies of the HTTP handlers.
type App struct {
	Sessions   *editor.Store
	Composer   *render.Composer
	Capability *copygen.Capability
	Adapter    *copygen.Adapter
	// Exports is optional; when set every export is also written to disk.
	Exports        *storage.FileStore
	Logger         infra.Logger
	MaxUploadBytes int64
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// fail maps domain errors onto HTTP responses.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrUnknownPreset),
		errors.Is(err, domain.ErrUnknownFont),
		errors.Is(err, domain.ErrUnknownCategory):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrInvalidSuggestion):
		a.error(w, http.StatusUnprocessableEntity, "invalid_suggestion", err.Error())
	case errors.Is(err, domain.ErrGeneratorUnavailable):
		a.error(w, http.StatusServiceUnavailable, "generator_unavailable", err.Error())
	default:
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func (a *App) session(w http.ResponseWriter, r *http.Request) (*editor.Session, bool) {
	sess, err := a.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return nil, false
	}
	return sess, true
}

func (a *App) maxUpload() int64 {
	if a.MaxUploadBytes > 0 {
		return a.MaxUploadBytes
	}
	return defaultMaxUploadBytes
}
