package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"addesigner/internal/domain/jsoncfg"
	"addesigner/internal/editor"
	"addesigner/internal/render"
)

const maxPatchBytes = 64 << 10

type designResponse struct {
	ID         string             `json:"id"`
	Design     jsoncfg.DesignView `json:"design"`
	Layout     layoutView         `json:"layout"`
	PreviewURL string             `json:"preview_url"`
	ExportURL  string             `json:"export_url"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type rectView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type layoutView struct {
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Margin        float64   `json:"margin"`
	TitleSize     float64   `json:"title_size"`
	SubtitleSize  float64   `json:"subtitle_size"`
	CTASize       float64   `json:"cta_size"`
	TitleLines    []string  `json:"title_lines"`
	SubtitleLines []string  `json:"subtitle_lines"`
	Button        rectView  `json:"button"`
	ButtonRadius  float64   `json:"button_radius"`
	Image         *rectView `json:"image,omitempty"`
}

func viewLayout(s *render.Surface) layoutView {
	l := s.Layout
	v := layoutView{
		Width:         s.Width(),
		Height:        s.Height(),
		Margin:        l.Margin,
		TitleSize:     l.TitleSize,
		SubtitleSize:  l.SubtitleSize,
		CTASize:       l.CTASize,
		TitleLines:    nonNil(l.TitleLines),
		SubtitleLines: nonNil(l.SubtitleLines),
		Button:        rectView{X: l.Button.X, Y: l.Button.Y, W: l.Button.W, H: l.Button.H},
		ButtonRadius:  l.ButtonRadius,
	}
	if !l.Image.Empty() {
		v.Image = &rectView{
			X: float64(l.Image.Min.X),
			Y: float64(l.Image.Min.Y),
			W: float64(l.Image.Dx()),
			H: float64(l.Image.Dy()),
		}
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func viewDesign(sess *editor.Session) designResponse {
	base := "/v1/designs/" + sess.ID
	state, surface := sess.Snapshot()
	return designResponse{
		ID:         sess.ID,
		Design:     jsoncfg.ViewOf(state),
		Layout:     viewLayout(surface),
		PreviewURL: base + "/preview.png",
		ExportURL:  base + "/export",
		UpdatedAt:  sess.UpdatedAt(),
	}
}

// decodePatch reads an optional DesignPatch. An empty body is an empty patch.
func decodePatch(r *http.Request) (jsoncfg.DesignPatch, error) {
	var p jsoncfg.DesignPatch
	dec := json.NewDecoder(io.LimitReader(r.Body, maxPatchBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return p, err
	}
	return p, nil
}

func (a *App) CreateDesign(w http.ResponseWriter, r *http.Request) {
	patch, err := decodePatch(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	sess, err := a.Sessions.Create(patch.Apply)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	log := a.Logger.With().Str("design_id", sess.ID).Logger()
	sess.Subscribe(func(s *render.Surface) {
		log.Debug().
			Int("width", s.Width()).
			Int("height", s.Height()).
			Int("title_lines", len(s.Layout.TitleLines)).
			Int("subtitle_lines", len(s.Layout.SubtitleLines)).
			Msg("design re-rendered")
	})
	log.Info().Msg("design created")
	a.json(w, http.StatusCreated, viewDesign(sess))
}

func (a *App) GetDesign(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, viewDesign(sess))
}

func (a *App) UpdateDesign(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	patch, err := decodePatch(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if !patch.Empty() {
		if _, err := sess.Update(patch.Apply); err != nil {
			a.fail(w, r, err)
			return
		}
	}
	a.json(w, http.StatusOK, viewDesign(sess))
}

func (a *App) DeleteDesign(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	if err := a.Sessions.Delete(sess.ID); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type designSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *App) ListDesigns(w http.ResponseWriter, r *http.Request) {
	sessions := a.Sessions.List()
	out := make([]designSummary, 0, len(sessions))
	for _, sess := range sessions {
		st := sess.State()
		out = append(out, designSummary{
			ID:        sess.ID,
			Title:     st.Title,
			Size:      st.Size.Key,
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt(),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"designs": out})
}
