package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/config"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/handlers"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/metrics"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/middleware"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/news"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/players"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/providers/espn"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/providers/portal"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/providers/wordpress"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/schedule"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/teams"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/transfer"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/upstream"
)

func main() {
	cfg := config.LoadConfig()
	logger := newLogger(os.Stdout, cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting cfb-hq", "addr", cfg.Server.Addr)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Upstream clients
	newUpstream := func(source string, timeout time.Duration) *upstream.Client {
		return upstream.New(upstream.Options{
			Source:    source,
			UserAgent: cfg.Upstream.UserAgent,
			Timeout:   timeout,
			Observer:  m.Upstream(),
		})
	}
	espnClient := espn.New(cfg.Upstream.ESPNBaseURL, newUpstream("espn", cfg.Upstream.Timeout))
	portalClient := portal.New(cfg.Upstream.TransferPortalURL, newUpstream("transfer_portal", 10*time.Second))
	newsClient := wordpress.New(cfg.Upstream.NewsFeedURL, newUpstream("news", cfg.Upstream.Timeout))

	// Services
	registry := teams.New()
	transferSvc := transfer.NewService(portalClient, registry, transfer.Options{
		TTL:      cfg.Cache.TransferPortalTTL,
		Observer: m.Cache(),
		Logger:   logger.With("component", "transfer"),
	})
	playerSvc := players.NewService(registry, espnClient, transferSvc, players.Options{
		IndexTTL:      cfg.Cache.PlayerIndexTTL,
		ListTTL:       cfg.Cache.PlayerListTTL,
		TeamRosterTTL: cfg.Cache.TeamRosterTTL,
		TeamRosterLRU: cfg.Cache.TeamRosterSize,
		Observer:      m.Cache(),
		Logger:        logger.With("component", "players"),
	})
	scheduleSvc := schedule.NewService(espnClient, schedule.Options{
		TTL:      cfg.Cache.ScheduleTTL,
		Observer: m.Cache(),
		Logger:   logger.With("component", "schedule"),
	})
	newsSvc := news.NewService(newsClient, news.Options{
		TTL:      cfg.Cache.NewsTTL,
		Observer: m.Cache(),
		Logger:   logger.With("component", "news"),
	})

	handler := handlers.NewHandler(handlers.Services{
		Players:  playerSvc,
		Transfer: transferSvc,
		Schedule: scheduleSvc,
		News:     newsSvc,
		Teams:    registry,
	}, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(m))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Routes
	handler.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}

	case sig := <-shutdown:
		logger.Info("received signal, shutting down", "signal", sig.String())

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown failed", "error", err)
			if err := srv.Close(); err != nil {
				logger.Error("could not stop server", "error", err)
			}
		}
	}

	logger.Info("shutdown complete")
}

// newLogger builds the process logger from config
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
