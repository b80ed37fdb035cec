package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/siasalabs/election-data-service/internal/adapter/http"
	kafkaadapter "github.com/siasalabs/election-data-service/internal/adapter/kafka"
	"github.com/siasalabs/election-data-service/internal/config"
	"github.com/siasalabs/election-data-service/internal/dataset"
	"github.com/siasalabs/election-data-service/internal/exporter"
	"github.com/siasalabs/election-data-service/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Load and validate the dataset. Integrity failures abort startup;
	// no partial dataset is ever served.
	loadStart := time.Now()
	store, err := dataset.Load(os.DirFS(cfg.DataDir), logger)
	if err != nil {
		logger.Error("dataset load failed", "data_dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	metrics.ObserveLoad(time.Since(loadStart),
		len(store.Counties()), len(store.Elections()), len(store.Regions()))

	srv := httpadapter.NewServer(cfg.HTTPAddr, store, store, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Optional one-shot export of the derived dataset (KAFKA_EXPORT_ENABLED).
	var writer *kafkaadapter.Writer
	if cfg.KafkaExportEnabled {
		metrics.ExportEnabled.Set(1)
		writer = kafkaadapter.NewWriter(cfg, logger)
		exp := exporter.New(writer, logger, metrics, cfg.ExportBatchSize)
		go func() {
			if err := exp.Run(ctx, store.Predictions()); err != nil {
				logger.Error("prediction export failed", "error", err)
			}
		}()
	} else {
		logger.Info("kafka export disabled")
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
