package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "GEN_PROVIDER", "GEN_MODEL", "GEN_BASE_URL", "HTTP_WRITE_TIMEOUT_SECONDS", "MAX_UPLOAD_MB", "CORS_ALLOWED_ORIGINS", "EXPORT_DIR"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.GenProvider != GenProviderOpenAI || cfg.GenModel != "distilgpt2" {
		t.Fatalf("generator = %s/%s", cfg.GenProvider, cfg.GenModel)
	}
	if cfg.HTTPWriteTimeout != 0 {
		t.Fatalf("HTTPWriteTimeout = %v, want none", cfg.HTTPWriteTimeout)
	}
	if cfg.HTTPReadTimeout != 15*time.Second {
		t.Fatalf("HTTPReadTimeout = %v", cfg.HTTPReadTimeout)
	}
	if cfg.MaxUploadBytes != 15<<20 {
		t.Fatalf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if cfg.ExportDir != "" {
		t.Fatalf("ExportDir = %q, want empty", cfg.ExportDir)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins = %#v, want any origin in development", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfigProductionKeepsCORSClosed(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("GEN_PROVIDER", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.IsDevelopment() {
		t.Fatal("production config reports development")
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Fatalf("CORSAllowedOrigins = %#v, want none", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfigParsesLists(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://localhost:3000 ,, https://ads.example.com ")
	t.Setenv("GEN_PROVIDER", "STATIC")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"http://localhost:3000", "https://ads.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins = %#v, want %#v", cfg.CORSAllowedOrigins, want)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], want[i])
		}
	}
	if cfg.GenProvider != GenProviderStatic {
		t.Fatalf("GenProvider = %q, want static", cfg.GenProvider)
	}
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("GEN_PROVIDER", "gemini")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestLoadConfigRejectsNonPositiveUpload(t *testing.T) {
	t.Setenv("GEN_PROVIDER", "")
	t.Setenv("MAX_UPLOAD_MB", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for MAX_UPLOAD_MB=0")
	}
}
