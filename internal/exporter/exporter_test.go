package exporter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siasalabs/election-data-service/internal/domain"
	"github.com/siasalabs/election-data-service/internal/observability"
)

// recordingLoader captures batches, optionally failing at a given batch index.
type recordingLoader struct {
	batches [][]domain.CountyPrediction
	failAt  int // -1 never fails
}

func (l *recordingLoader) LoadBatch(_ context.Context, predictions []domain.CountyPrediction) error {
	if l.failAt >= 0 && len(l.batches) == l.failAt {
		return errors.New("broker unavailable")
	}
	batch := make([]domain.CountyPrediction, len(predictions))
	copy(batch, predictions)
	l.batches = append(l.batches, batch)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func predictions(n int) []domain.CountyPrediction {
	out := make([]domain.CountyPrediction, n)
	for i := range out {
		out[i] = domain.CountyPrediction{County: string(rune('A' + i))}
	}
	return out
}

func TestRunBatches(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		batchSize   int
		wantBatches []int
	}{
		{"even split", 8, 4, []int{4, 4}},
		{"remainder batch", 10, 4, []int{4, 4, 2}},
		{"single batch", 3, 16, []int{3}},
		{"batch of one", 2, 1, []int{1, 1}},
		{"empty input", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &recordingLoader{failAt: -1}
			exp := New(loader, testLogger(), observability.NewMetricsForTesting(), tt.batchSize)

			require.NoError(t, exp.Run(context.Background(), predictions(tt.total)))

			var sizes []int
			for _, b := range loader.batches {
				sizes = append(sizes, len(b))
			}
			assert.Equal(t, tt.wantBatches, sizes)
		})
	}
}

func TestRunPreservesOrder(t *testing.T) {
	loader := &recordingLoader{failAt: -1}
	exp := New(loader, testLogger(), observability.NewMetricsForTesting(), 2)

	input := predictions(5)
	require.NoError(t, exp.Run(context.Background(), input))

	var flat []domain.CountyPrediction
	for _, b := range loader.batches {
		flat = append(flat, b...)
	}
	assert.Equal(t, input, flat)
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	loader := &recordingLoader{failAt: 1}
	exp := New(loader, testLogger(), observability.NewMetricsForTesting(), 2)

	err := exp.Run(context.Background(), predictions(6))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export batch at 2")
	assert.Len(t, loader.batches, 1)
}

func TestRunHonorsCancellation(t *testing.T) {
	loader := &recordingLoader{failAt: -1}
	exp := New(loader, testLogger(), observability.NewMetricsForTesting(), 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := exp.Run(ctx, predictions(4))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, loader.batches)
}
