// Package exporter pushes the derived dataset to the export sink in batches.
// Unlike a streaming pipeline this is a one-shot publication: the dataset is
// computed once at startup and does not change afterwards.
package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/siasalabs/election-data-service/internal/domain"
	"github.com/siasalabs/election-data-service/internal/observability"
)

// Loader writes a batch of predictions to the destination.
type Loader interface {
	LoadBatch(ctx context.Context, predictions []domain.CountyPrediction) error
}

// Exporter publishes county predictions through a Loader in fixed batches.
type Exporter struct {
	loader    Loader
	logger    *slog.Logger
	metrics   *observability.Metrics
	batchSize int
}

// New creates an Exporter. batchSize must be positive.
func New(loader Loader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Exporter {
	return &Exporter{
		loader:    loader,
		logger:    logger,
		metrics:   metrics,
		batchSize: batchSize,
	}
}

// Run publishes every prediction, in order, batch by batch. It stops at the
// first failed batch so a partial export is visible in the metrics rather
// than silently skipped over.
func (e *Exporter) Run(ctx context.Context, predictions []domain.CountyPrediction) error {
	e.logger.Info("export starting", "predictions", len(predictions), "batch_size", e.batchSize)

	for start := 0; start < len(predictions); start += e.batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+e.batchSize, len(predictions))
		batch := predictions[start:end]
		if err := e.loader.LoadBatch(ctx, batch); err != nil {
			e.metrics.ExportErrors.Inc()
			return fmt.Errorf("export batch at %d: %w", start, err)
		}
		e.metrics.ExportedPredictions.Add(float64(len(batch)))
	}

	e.logger.Info("export complete", "predictions", len(predictions))
	return nil
}
