package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"addesigner/internal/copygen"
	"addesigner/internal/editor"
	"addesigner/internal/http/handlers"
	httpapi "addesigner/internal/http/httpapi"
	"addesigner/internal/infra"
	"addesigner/internal/render"
	"addesigner/internal/storage"
)

const shutdownGrace = 10 * time.Second

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	loader, err := newLoader(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid text generator configuration")
	}
	capability := copygen.NewCapability(loader, &logger)

	fonts := render.NewFontRegistry(render.FontOptions{Dir: cfg.FontDir, Logger: &logger})
	composer := render.NewComposer(fonts)

	app := &handlers.App{
		Sessions:       editor.NewStore(composer),
		Composer:       composer,
		Capability:     capability,
		Adapter:        copygen.NewAdapter(capability, copygen.DefaultGenerateOptions(), &logger),
		Logger:         logger,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	if cfg.ExportDir != "" {
		exports, err := storage.NewFileStore(cfg.ExportDir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", cfg.ExportDir).Msg("failed to prepare export directory")
		}
		app.Exports = exports
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SuggestPerMinute:   cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("generator", loader.Name()).
			Msg("editor listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func newLoader(cfg *infra.Config) (copygen.Loader, error) {
	return copygen.NewLoader(cfg.GenProvider, copygen.OpenAIOptions{
		APIKey:  cfg.GenAPIKey,
		BaseURL: cfg.GenBaseURL,
		Model:   cfg.GenModel,
	})
}
