package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	pgRepo "pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/infra/db"
	"pressroom/internal/infra/fetcher"
	"pressroom/internal/observability/logging"

	artUC "pressroom/internal/usecase/article"
	contactUC "pressroom/internal/usecase/contact"
	fbUC "pressroom/internal/usecase/feedback"

	hhttp "pressroom/internal/handler/http"
	harticle "pressroom/internal/handler/http/article"
	hauth "pressroom/internal/handler/http/auth"
	hcontact "pressroom/internal/handler/http/contact"
	hfeedback "pressroom/internal/handler/http/feedback"
	"pressroom/internal/handler/http/requestid"
)

func main() {
	// A missing .env is fine; production injects real environment variables.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	publisherKey := validatePublisherKey(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, publisherKey, version)

	runServer(logger, handler, version)
}

// validatePublisherKey validates the PUBLISHER_KEY environment variable at
// startup so the server never comes up with an empty or guessable key.
func validatePublisherKey(logger *slog.Logger) string {
	key := os.Getenv("PUBLISHER_KEY")
	if err := hauth.ValidateKey(key); err != nil {
		logger.Error("publisher key validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	return key
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services and routes, and returns the root
// handler with the middleware chain applied.
func setupServer(logger *slog.Logger, database *sql.DB, publisherKey, version string) http.Handler {
	imageCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load image check configuration", slog.Any("error", err))
		os.Exit(1)
	}
	images := fetcher.NewImageChecker(imageCfg)
	logger.Info("image reachability checks configured",
		slog.Bool("enabled", imageCfg.Enabled),
		slog.Duration("timeout", imageCfg.Timeout))

	articleRepo := pgRepo.NewArticleRepo(database)
	artSvc := &artUC.Service{Repo: articleRepo, Images: images}
	fbSvc := &fbUC.Service{Articles: articleRepo, Repo: pgRepo.NewFeedbackRepo(database)}
	contactSvc := &contactUC.Service{Repo: pgRepo.NewContactRepo(database)}

	requireKey := hauth.RequireKey(publisherKey)

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, requireKey)
	hfeedback.Register(mux, fbSvc, requireKey)
	hcontact.Register(mux, contactSvc, requireKey)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain, innermost first.
// Order: Request ID → Recovery → Logging → Body Limit → Metrics → routes.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
