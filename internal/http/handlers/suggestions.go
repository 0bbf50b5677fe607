package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"addesigner/internal/copygen"
	"addesigner/internal/domain"
	"addesigner/internal/middleware"
)

type suggestRequest struct {
	Product string `json:"product"`
	Tone    string `json:"tone"`
}

type suggestionsResponse struct {
	Headlines    []string          `json:"headlines"`
	Descriptions []string          `json:"descriptions"`
	CTAs         []string          `json:"ctas"`
	Failures     map[string]string `json:"failures,omitempty"`
	// Action is the label for the next run: "generate" before the first run
	// and "regenerate" after it.
	Action string `json:"action"`
}

func viewSuggestions(sg copygen.Suggestions, generated bool) suggestionsResponse {
	resp := suggestionsResponse{
		Headlines:    nonNil(sg.Headlines),
		Descriptions: nonNil(sg.Descriptions),
		CTAs:         nonNil(sg.CTAs),
		Action:       "generate",
	}
	if generated {
		resp.Action = "regenerate"
	}
	if len(sg.Failures) > 0 {
		resp.Failures = make(map[string]string, len(sg.Failures))
		for c, err := range sg.Failures {
			resp.Failures[string(c)] = err.Error()
		}
	}
	return resp
}

// Suggest runs one generation for the design. The run is detached from the
// request context: a client that goes away does not cancel it, and the
// result is still stored on the session.
func (a *App) Suggest(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	var req suggestRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxPatchBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	product := strings.TrimSpace(req.Product)
	if product == "" {
		product = domain.DefaultProduct
	}
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = domain.DefaultTone
	}

	sg, err := a.Adapter.Suggest(context.WithoutCancel(r.Context()), product, tone)
	if err != nil {
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("design_id", sess.ID).
			Msg("suggestion run failed")
		if errors.Is(err, domain.ErrGeneratorUnavailable) {
			a.fail(w, r, err)
			return
		}
		a.error(w, http.StatusBadGateway, "generation_failed", err.Error())
		return
	}
	sess.ReplaceSuggestions(sg)
	a.json(w, http.StatusOK, viewSuggestions(sg, true))
}

func (a *App) Suggestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	sg, generated := sess.Suggestions()
	a.json(w, http.StatusOK, viewSuggestions(sg, generated))
}

type applyRequest struct {
	Category string `json:"category"`
	Index    *int   `json:"index"`
}

type applyResponse struct {
	designResponse
	Applied string `json:"applied"`
}

func (a *App) ApplySuggestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	var req applyRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxPatchBytes)).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Index == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "index is required")
		return
	}
	c, err := domain.ParseCategory(req.Category)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	text, _, err := sess.ApplySuggestionAt(c, *req.Index)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, applyResponse{designResponse: viewDesign(sess), Applied: text})
}
