package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/fraudwatch/fraudwatch/internal/api"
	"github.com/fraudwatch/fraudwatch/internal/auth"
	"github.com/fraudwatch/fraudwatch/internal/config"
	"github.com/fraudwatch/fraudwatch/internal/notify"
	"github.com/fraudwatch/fraudwatch/internal/store"
	"github.com/fraudwatch/fraudwatch/internal/ws"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("fraudwatch starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"auth_mode", cfg.Server.Auth.Mode,
		"teams", len(cfg.Teams),
		"history_limit", cfg.Server.History.Limit,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Current config behind an atomic pointer so hot reloads take effect on
	// the next run without restarting the server.
	var current atomic.Pointer[config.Config]
	current.Store(cfg)
	go func() {
		err := config.Watch(ctx, *configPath, func(next *config.Config) {
			current.Store(next)
			slog.Info("config reloaded", "teams", len(next.Teams))
		})
		if err != nil {
			slog.Error("config watcher stopped", "err", err)
		}
	}()

	// Run history store with background TTL eviction.
	st := store.New(cfg.Server.History.Limit, cfg.Server.History.TTL)
	go st.Run(ctx)

	notifier := notify.New(cfg.Server.Webhooks)

	// WebSocket hub — broadcasts the latest run to connected clients.
	hub := ws.New(st, cfg.Server.BroadcastInterval)
	go hub.Run(ctx)

	apiHandler := api.New(st, current.Load, notifier)

	// REST API behind optional API key auth; /metrics and /ws/runs stay open
	// for scrapers and dashboards.
	mux := http.NewServeMux()
	mux.Handle("/api/", auth.Middleware(
		cfg.Server.Auth.Mode,
		cfg.Server.Auth.EffectiveHeader(),
		cfg.Server.Auth.Key(),
		apiHandler,
	))
	mux.Handle("/metrics", apiHandler)
	mux.Handle("/ws/runs", hub)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: mux,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("fraudwatch shutting down")
	srv.Shutdown(context.Background()) //nolint:errcheck
}
