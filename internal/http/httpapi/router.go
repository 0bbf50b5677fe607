package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"addesigner/internal/http/handlers"
	"addesigner/internal/infra"
	"addesigner/internal/middleware"
)

// Options configures the cross-cutting middleware of the router.
type Options struct {
	Logger             infra.Logger
	CORSAllowedOrigins []string
	// SuggestPerMinute limits suggestion runs per client IP.
	SuggestPerMinute int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/presets", app.Presets)
	r.Get("/v1/fonts", app.Fonts)
	r.Get("/v1/generator", app.Generator)

	r.Route("/v1/designs", func(r chi.Router) {
		r.Get("/", app.ListDesigns)
		r.Post("/", app.CreateDesign)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetDesign)
			r.Patch("/", app.UpdateDesign)
			r.Delete("/", app.DeleteDesign)

			r.Put("/background", app.PutBackground)
			r.Delete("/background", app.DeleteBackground)

			r.Get("/preview.png", app.Preview)
			r.Get("/export", app.Export)
			r.Get("/export.zip", app.ExportAll)
			r.Get("/exports/{filename}", app.StoredExport)

			r.Get("/suggestions", app.Suggestions)
			r.With(middleware.RateLimit(opts.SuggestPerMinute, time.Minute)).Post("/suggestions", app.Suggest)
			r.Post("/suggestions/apply", app.ApplySuggestion)
		})
	})

	return r
}
