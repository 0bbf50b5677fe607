package handlers

import (
	"errors"
	"net/http"

	"addesigner/internal/middleware"
	"addesigner/internal/render"
)

type backgroundResponse struct {
	designResponse
	ImageApplied bool   `json:"image_applied"`
	Warning      string `json:"warning,omitempty"`
}

// PutBackground accepts a multipart upload in the "image" field. A file that
// does not decode leaves the design without an image and still answers 200.
func (a *App) PutBackground(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload())
	if err := r.ParseMultipartForm(a.maxUpload()); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", "image exceeds upload limit")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "expected multipart form with an image field")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image field is required")
		return
	}
	defer file.Close()

	img, err := render.DecodeImage(file)
	if err != nil {
		a.Logger.Warn().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("design_id", sess.ID).
			Str("filename", header.Filename).
			Msg("background image rejected")
		sess.ClearBackgroundImage()
		a.json(w, http.StatusOK, backgroundResponse{
			designResponse: viewDesign(sess),
			Warning:        "image could not be decoded; design has no background image",
		})
		return
	}
	sess.SetBackgroundImage(img)
	a.json(w, http.StatusOK, backgroundResponse{designResponse: viewDesign(sess), ImageApplied: true})
}

func (a *App) DeleteBackground(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	sess.ClearBackgroundImage()
	a.json(w, http.StatusOK, viewDesign(sess))
}
