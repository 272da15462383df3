package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/token"
)

func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewGeneratorService(service.Defaults{Length: cfg.Length, Numbers: cfg.Numbers, Symbols: cfg.Symbols})
	srv := httptest.NewServer(NewRouter(cfg, logger, svc))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, config.Default())

	tests := []struct {
		method, path, body string
		wantStatus         int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/categories", "", http.StatusOK},
		{http.MethodPost, "/api/v1/generate", `{"category":"pin","length":4}`, http.StatusOK},
		{http.MethodGet, "/api/v1/generate", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("NewRequest() unexpected error: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Do() unexpected error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if resp.Header.Get("X-Request-Id") == "" {
				t.Error("missing X-Request-Id header")
			}
		})
	}
}

func TestAuthRequiredWhenSecretSet(t *testing.T) {
	cfg := config.Default()
	cfg.JWTSecret = "api-secret"
	srv := newTestServer(t, cfg)

	resp, err := http.Post(srv.URL+"/api/v1/generate", "application/json", nil)
	if err != nil {
		t.Fatalf("Post() unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", resp.StatusCode)
	}

	tok, err := token.Issue("tests", cfg.JWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/generate", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do() unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status with token = %d, want 200", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health should stay open, got %d", resp.StatusCode)
	}
}
