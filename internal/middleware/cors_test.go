package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveWithCORS(t *testing.T, cfg CORSConfig, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	handler := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/v1/blog/bulk", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORS_SameOriginPassThrough(t *testing.T) {
	rec := serveWithCORS(t, DefaultCORSConfig(), http.MethodGet, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want unset", got)
	}
}

func TestCORS_WildcardEchoesOrigin(t *testing.T) {
	rec := serveWithCORS(t, DefaultCORSConfig(), http.MethodGet, "https://reader.example.net")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://reader.example.net" {
		t.Errorf("Access-Control-Allow-Origin = %q, want origin echoed", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("Vary = %q, want %q", got, "Origin")
	}
}

func TestCORS_WildcardPreflight(t *testing.T) {
	rec := serveWithCORS(t, DefaultCORSConfig(), http.MethodOptions, "https://reader.example.net")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("Access-Control-Allow-Methods not set on preflight")
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Errorf("Access-Control-Max-Age = %q, want %q", got, "86400")
	}
}

func TestCORS_OriginMatching(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantHeader string
	}{
		{
			name:       "exact match",
			allowed:    []string{"https://app.inkwell.dev"},
			origin:     "https://app.inkwell.dev",
			wantHeader: "https://app.inkwell.dev",
		},
		{
			name:       "exact match is case insensitive",
			allowed:    []string{"https://App.Inkwell.dev"},
			origin:     "https://app.inkwell.dev",
			wantHeader: "https://app.inkwell.dev",
		},
		{
			name:       "unlisted origin gets no headers",
			allowed:    []string{"https://app.inkwell.dev"},
			origin:     "https://evil.example.com",
			wantHeader: "",
		},
		{
			name:       "empty list denies everything",
			allowed:    nil,
			origin:     "https://app.inkwell.dev",
			wantHeader: "",
		},
		{
			name:       "subdomain wildcard matches",
			allowed:    []string{"*.inkwell.dev"},
			origin:     "https://staging.inkwell.dev",
			wantHeader: "https://staging.inkwell.dev",
		},
		{
			name:       "subdomain wildcard rejects suffix lookalike",
			allowed:    []string{"*.inkwell.dev"},
			origin:     "https://notinkwell.dev",
			wantHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCORSConfig()
			cfg.AllowedOrigins = tt.allowed

			rec := serveWithCORS(t, cfg, http.MethodGet, tt.origin)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestCORS_DisallowedPreflightForbidden(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"https://app.inkwell.dev"}

	rec := serveWithCORS(t, cfg, http.MethodOptions, "https://evil.example.com")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestCORS_Credentials(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"https://app.inkwell.dev"}
	cfg.AllowCredentials = true

	rec := serveWithCORS(t, cfg, http.MethodGet, "https://app.inkwell.dev")

	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want %q", got, "true")
	}
}
