package main

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"
	_ "modernc.org/sqlite"

	v1 "github.com/movieflix/movieflix/internal/api/v1"
	"github.com/movieflix/movieflix/internal/auth"
	"github.com/movieflix/movieflix/internal/catalog"
	"github.com/movieflix/movieflix/internal/config"
	"github.com/movieflix/movieflix/internal/metadata"
	"github.com/movieflix/movieflix/internal/migrations"
	"github.com/movieflix/movieflix/internal/stats"
	"github.com/movieflix/movieflix/pkg/omdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Ensure database directory exists
	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Run migrations
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// === Stores ===
	store := catalog.NewStore(db)

	// === Clients ===
	provider := omdb.New(cfg.OMDB.APIKey,
		omdb.WithTimeout(cfg.OMDB.Timeout),
		omdb.WithLogger(logger.With("component", "omdb")),
	)

	// === Services ===
	sync := metadata.NewSynchronizer(store, provider, cfg.Cache.TTL, logger.With("component", "sync"))
	searcher := metadata.NewSearcher(provider, sync, store, cfg.Cache.TTL, logger.With("component", "search"))
	statsSvc := stats.NewService(store)

	tokenSecret := cfg.Auth.TokenSecret
	if tokenSecret == "" {
		// Tokens stop working across restarts without a configured secret.
		tokenSecret = base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
		logger.Warn("auth.token_secret not set, using a random per-process secret")
	}
	authSvc := auth.NewService(cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, tokenSecret, cfg.Auth.TokenTTL)

	// === Background Jobs ===
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Cache.RefreshInterval > 0 {
		go runRefresher(ctx, sync, cfg.Cache.RefreshInterval, logger.With("component", "refresher"))
	}

	// === HTTP Setup ===
	mux := http.NewServeMux()
	api := v1.New(searcher, sync, statsSvc, authSvc, version, logger.With("component", "api"))
	api.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"database", cfg.Database.Path,
		"cache_ttl", cfg.Cache.TTL.String(),
		"refresh_interval", cfg.Cache.RefreshInterval.String(),
		"log_level", cfg.Server.LogLevel,
	)

	srv := &http.Server{Addr: addr, Handler: logRequests(mux, logger)}

	// Start server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig.String())

	// Stop the background refresher
	cancel()

	// Graceful HTTP shutdown with 30s timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func runRefresher(ctx context.Context, sync *metadata.Synchronizer, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("refresher started", "interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			log.Info("refresher stopped")
			return
		case <-ticker.C:
			if _, err := sync.RefreshAll(ctx); err != nil {
				log.Error("refresh failed", "error", err)
			}
		}
	}
}
