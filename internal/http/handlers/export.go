package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"addesigner/internal/domain"
	"addesigner/internal/middleware"
	"addesigner/internal/render"
	"addesigner/internal/storage"
	"addesigner/pkg/zip"
)

func (a *App) Preview(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	data, err := render.PNGBytes(sess.Surface())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.png(w, data, "")
}

// Export serves the current surface as an attachment named ad-WxH.png.
func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	state, surface := sess.Snapshot()
	data, err := render.PNGBytes(surface)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	filename := render.Filename(state.Size)
	a.store(r, storage.ExportKey(sess.ID, filename), data)
	a.png(w, data, filename)
}

// ExportAll renders the design at every size preset and serves the PNGs as
// one zip archive.
func (a *App) ExportAll(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	state := sess.State()
	presets := domain.Presets()
	assets := make([]zip.Asset, 0, len(presets))
	for _, p := range presets {
		st := state
		st.Size = p
		data, err := render.PNGBytes(a.Composer.Render(st))
		if err != nil {
			a.fail(w, r, err)
			return
		}
		assets = append(assets, zip.Asset{Filename: render.Filename(p), Data: data})
	}
	archive, err := zip.ArchiveAssets(assets)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	filename := "ads-" + sess.ID + ".zip"
	a.store(r, storage.ExportKey(sess.ID, filename), archive)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Length", strconv.Itoa(len(archive)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

var storedExportTypes = map[string]string{
	".png": "image/png",
	".zip": "application/zip",
}

// StoredExport serves an export written earlier by Export or ExportAll. Stored
// files outlive their session, so the design does not have to be live.
func (a *App) StoredExport(w http.ResponseWriter, r *http.Request) {
	id, filename := chi.URLParam(r, "id"), chi.URLParam(r, "filename")
	contentType, ok := storedExportTypes[path.Ext(filename)]
	if _, err := uuid.Parse(id); err != nil || !ok || path.Base(filename) != filename {
		a.error(w, http.StatusNotFound, "not_found", "export not found")
		return
	}
	if a.Exports == nil {
		a.error(w, http.StatusNotFound, "not_found", "exports are not stored")
		return
	}
	data, err := a.Exports.Read(r.Context(), storage.ExportKey(id, filename))
	if errors.Is(err, fs.ErrNotExist) {
		a.error(w, http.StatusNotFound, "not_found", "export not found")
		return
	}
	if err != nil {
		a.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (a *App) png(w http.ResponseWriter, data []byte, attachment string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	if attachment != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// store copies an export to the configured directory. Failures are logged and
// do not fail the download.
func (a *App) store(r *http.Request, key string, data []byte) {
	if a.Exports == nil {
		return
	}
	saved, err := a.Exports.Write(r.Context(), key, data)
	log := a.Logger.With().
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("key", key).
		Logger()
	if err != nil {
		log.Warn().Err(err).Msg("export copy failed")
		return
	}
	log.Info().Str("saved", saved).Msg("export saved")
}
