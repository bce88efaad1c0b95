package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"bookmark_enricher/internal/api"
	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/downloader"
	"bookmark_enricher/internal/mediadetect"
	"bookmark_enricher/internal/metrics"
	"bookmark_enricher/internal/queue"
	"bookmark_enricher/internal/retriever"
	"bookmark_enricher/internal/scheduler"
	"bookmark_enricher/internal/service"
	"bookmark_enricher/internal/storage/object"
	"bookmark_enricher/internal/storage/postgres"
	"bookmark_enricher/internal/summarizer"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	bookmarkStore := postgres.NewBookmarkStore(db)
	enrichmentStore := postgres.NewEnrichmentStore(db)
	mediaStore := postgres.NewMediaStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Initialize pipeline clients
	contentRetriever := retriever.New(cfg.Retriever, logger)
	summaryClient := summarizer.New(cfg.Summarizer, logger)
	detector := mediadetect.New()
	downloadClient := downloader.New(cfg.Downloader, logger)
	uploadClient := object.New(cfg.Storage, logger)

	orchestrator := service.NewOrchestrator(service.OrchestratorDeps{
		Bookmarks:   bookmarkStore,
		Enrichments: enrichmentStore,
		Media:       mediaStore,
		TxManager:   txManager,
		Retriever:   contentRetriever,
		Summarizer:  summaryClient,
		Detector:    detector,
		Downloader:  downloadClient,
		Uploader:    uploadClient,
		Publisher:   rabbitMQ,
		Metrics:     collector,
	}, logger, cfg.Enrichment)

	statusService := service.NewStatusService(enrichmentStore, mediaStore, rabbitMQ, logger)

	consumer, err := queue.NewConsumer(cfg.RabbitMQ, orchestrator, logger)
	if err != nil {
		logger.Error("failed to start consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	reaper := scheduler.NewReaper(enrichmentStore, cfg.Reaper.Interval, cfg.Reaper.ProcessingDeadline, logger)

	handler := api.NewHandler(statusService, db, logger)
	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      api.NewRouter(handler, registry),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	go func() {
		if err := reaper.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("reaper error", "error", err)
		}
	}()

	logger.Info("starting bookmark enricher",
		"queue", cfg.RabbitMQ.RequestQueue,
		"prefetch", cfg.RabbitMQ.Prefetch,
		"max_attempts", cfg.Enrichment.Retry.MaxAttempts,
	)

	err = consumer.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.WriteTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
