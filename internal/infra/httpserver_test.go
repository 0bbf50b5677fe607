package infra

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestHTTPServerUsesConfig(t *testing.T) {
	cfg := &Config{Port: "9123", HTTPReadTimeout: 3 * time.Second, HTTPIdleTimeout: 7 * time.Second}
	s := NewHTTPServer(cfg, http.NotFoundHandler())
	if s.Addr() != ":9123" {
		t.Fatalf("Addr = %q, want :9123", s.Addr())
	}
	if s.server.ReadTimeout != 3*time.Second || s.server.IdleTimeout != 7*time.Second || s.server.WriteTimeout != 0 {
		t.Fatalf("timeouts = %v/%v/%v", s.server.ReadTimeout, s.server.WriteTimeout, s.server.IdleTimeout)
	}
}

func TestHTTPServerStartReturnsNilAfterShutdown(t *testing.T) {
	s := NewHTTPServer(&Config{Port: "0"}, http.NotFoundHandler())
	done := make(chan error, 1)
	go func() { done <- s.Start() }()
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
