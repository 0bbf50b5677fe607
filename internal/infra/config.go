package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	GenProviderOpenAI = "openai"
	GenProviderStatic = "static"
)

// Config represents application configuration loaded from environment variables.
// A zero HTTPWriteTimeout means no write deadline, which is the default since
// generation requests are not time bounded.
type Config struct {
	AppEnv             string
	Port               string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
	CORSAllowedOrigins []string
	MaxUploadBytes     int64
	ExportDir          string
	FontDir            string
	GenProvider        string
	GenBaseURL         string
	GenModel           string
	GenAPIKey          string
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 0)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_MB", 15)) << 20,
		ExportDir:          strings.TrimSpace(os.Getenv("EXPORT_DIR")),
		FontDir:            strings.TrimSpace(os.Getenv("FONT_DIR")),
		GenProvider:        strings.ToLower(getEnv("GEN_PROVIDER", GenProviderOpenAI)),
		GenBaseURL:         getEnv("GEN_BASE_URL", "http://localhost:8000/v1"),
		GenModel:           getEnv("GEN_MODEL", "distilgpt2"),
		GenAPIKey:          os.Getenv("GEN_API_KEY"),
	}

	switch cfg.GenProvider {
	case GenProviderOpenAI, GenProviderStatic:
	default:
		return nil, fmt.Errorf("GEN_PROVIDER must be %q or %q, got %q", GenProviderOpenAI, GenProviderStatic, cfg.GenProvider)
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	// a local editor frontend usually runs on another port
	if len(cfg.CORSAllowedOrigins) == 0 && cfg.IsDevelopment() {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
