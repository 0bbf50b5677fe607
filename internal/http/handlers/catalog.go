package handlers

import (
	"net/http"

	"addesigner/internal/copygen"
	"addesigner/internal/domain"
)

func (a *App) Presets(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"presets": domain.Presets()})
}

func (a *App) Fonts(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"fonts": domain.FontFamilies()})
}

type generatorResponse struct {
	copygen.Status
	// Busy is true while the model is loading, so a client can show
	// "loading model" instead of "generating".
	Busy bool `json:"busy"`
}

func (a *App) Generator(w http.ResponseWriter, r *http.Request) {
	st := a.Capability.Status()
	a.json(w, http.StatusOK, generatorResponse{Status: st, Busy: st.State == copygen.StateLoading})
}
