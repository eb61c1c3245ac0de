package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// decodeBody unmarshals a recorded JSON response into a string map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestHandler_Hello(t *testing.T) {
	rec := httptest.NewRecorder()
	New().Hello(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Hello from Inkwell!" {
		t.Errorf("message = %q", body["message"])
	}
	if body["version"] != "0.1.0" {
		t.Errorf("version = %q", body["version"])
	}
}

func TestHandler_FallbackRoutes(t *testing.T) {
	h := New()

	tests := []struct {
		name       string
		serve      http.HandlerFunc
		wantStatus int
		wantError  string
	}{
		{"unknown path", h.NotFound, http.StatusNotFound, "resource not found"},
		{"wrong method", h.MethodNotAllowed, http.StatusMethodNotAllowed, "method not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.serve(rec, httptest.NewRequest(http.MethodGet, "/whatever", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if body := decodeBody(t, rec); body["error"] != tt.wantError {
				t.Errorf("error = %q, want %q", body["error"], tt.wantError)
			}
		})
	}
}
