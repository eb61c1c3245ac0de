// Package main is the entrypoint for the Inkwell API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/cache"
	"github.com/inkwell/inkwell/internal/config"
	"github.com/inkwell/inkwell/internal/handler"
	"github.com/inkwell/inkwell/internal/metrics"
	"github.com/inkwell/inkwell/internal/middleware"
	"github.com/inkwell/inkwell/internal/repository"
	"github.com/inkwell/inkwell/internal/server"
	"github.com/inkwell/inkwell/internal/service"
)

func main() {
	// Load .env in local development; real environments set vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database: %s (url %s)",
			sanitizeError(err, cfg.DatabaseURL), redactURL(cfg.DatabaseURL))
	}
	defer repo.Close()
	logger.Info("connected to database")

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("redis: %s (url %s)",
			sanitizeError(err, cfg.RedisURL), redactURL(cfg.RedisURL))
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	if cfg.JWTSecret == "" {
		// Deliberately not fatal: signup answers 500 per request until
		// the secret is configured, matching the API contract.
		logger.Warn("JWT_SECRET is not set; token issuance will fail")
	}

	signer := auth.NewSigner(cfg.JWTSecret)
	recorder := metrics.NewNoop()
	userService := service.NewUserService(repo, signer, recorder, cfg.AuthHashPasswords)
	postService := service.NewPostService(repo, cacheClient, recorder)

	deps := routerDeps{
		base:    handler.New(),
		health:  handler.NewHealthHandler(repo, cacheClient),
		users:   handler.NewUserHandler(userService, logger),
		posts:   handler.NewPostHandler(postService, logger),
		signer:  signer,
		metrics: recorder,
		cfg:     cfg,
		logger:  logger,
	}

	srv := server.New(
		newRouter(deps),
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server", "port", cfg.AppPort, "env", cfg.AppEnv)
	return srv.Run()
}

// newLogger builds the process logger from LOG_LEVEL and LOG_FORMAT
// and installs it as the slog default.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.LogFormat != "json" {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

type routerDeps struct {
	base    *handler.Handler
	health  *handler.HealthHandler
	users   *handler.UserHandler
	posts   *handler.PostHandler
	signer  *auth.Signer
	metrics metrics.Recorder
	cfg     *config.Config
	logger  *slog.Logger
}

// newRouter wires middleware and routes onto a chi mux.
func newRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      deps.cfg.IsDevelopment(),
		MaxRequestBodySize: deps.cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(deps.cfg.MaxRequestBodySize))

	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/", deps.base.Hello)

	authCfg := middleware.AuthConfig{
		Logger:  deps.logger,
		Signer:  deps.signer,
		Metrics: deps.metrics,
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Account routes are public.
		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", deps.users.Signup)
			r.Post("/signin", deps.users.Signin)
		})

		// Blog reads are public; mutations require a bearer token.
		r.Route("/blog", func(r chi.Router) {
			r.Get("/bulk", deps.posts.Bulk)
			r.Get("/{id}", deps.posts.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(authCfg))
				r.Post("/", deps.posts.Create)
				r.Put("/", deps.posts.Update)
			})
		})
	})

	r.NotFound(deps.base.NotFound)
	r.MethodNotAllowed(deps.base.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=\S+`)

// redactURL strips credentials from a connection URL before logging.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}
	if parsed.User != nil {
		if name := parsed.User.Username(); name != "" {
			parsed.User = url.User(name)
		} else {
			parsed.User = url.User("redacted")
		}
	}
	return parsed.String()
}

// sanitizeError scrubs connection secrets out of driver error text.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		safe := redactURL(secret)
		if safe == "" {
			safe = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, safe)
	}
	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
