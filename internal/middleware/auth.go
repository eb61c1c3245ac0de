package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/metrics"
)

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger  *slog.Logger
	Signer  *auth.Signer
	Metrics metrics.Recorder
}

// Auth returns a middleware that gates post-mutating routes behind a
// bearer token. A missing Authorization header short-circuits with 401;
// any verification failure short-circuits with 403. On success the
// verified user id becomes the request's acting identity, bound to the
// request context only.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_header"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				recorder.IncAuthFailure("missing_header")
				writeAuthJSON(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			// Second whitespace-delimited token is the credential
			// ("Bearer <token>"); anything else fails verification.
			var credential string
			if parts := strings.Split(header, " "); len(parts) > 1 {
				credential = parts[1]
			}

			userID, err := cfg.Signer.Verify(credential)
			if err != nil {
				// Operator detail stays in the log; the caller only
				// learns the credential was rejected.
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_token"),
					slog.String("error", err.Error()),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				recorder.IncAuthFailure("invalid_token")
				writeAuthJSON(w, http.StatusForbidden, "invalid token")
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthJSON writes an auth failure body in the API error shape.
func writeAuthJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
