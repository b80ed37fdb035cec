// Package kafka publishes the computed county predictions to the export
// topic, so downstream analytics consumers ingest the derived dataset the
// same way the rest of the platform moves data.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/siasalabs/election-data-service/internal/config"
	"github.com/siasalabs/election-data-service/internal/domain"
)

// Writer produces prediction records to the export topic.
// It implements exporter.Loader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured export topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaExportTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes multiple predictions in a single
// WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, predictions []domain.CountyPrediction) error {
	if len(predictions) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(predictions))
	for i := range predictions {
		msg, err := serializeToMessage(predictions[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a CountyPrediction into a Kafka message keyed
// by county name, so per-county updates land on a stable partition.
func serializeToMessage(p domain.CountyPrediction) (kafkago.Message, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize prediction: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(p.County),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "region", Value: []byte(p.Region)},
			{Key: "generated_at", Value: []byte(p.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
