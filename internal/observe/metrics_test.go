package observe

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics returns Metrics bound to a private provider and the reader
// that collects from it.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	met, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return met, reader
}

func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s has data %T, want Sum[int64]", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestRecordCorrection(t *testing.T) {
	met, reader := newTestMetrics(t)
	ctx := context.Background()

	met.RecordCorrection(ctx, "know", "no")
	met.RecordCorrection(ctx, "to", "two")

	if got := sumOf(t, reader, "homonym.corrections"); got != 2 {
		t.Errorf("homonym.corrections = %d, want 2", got)
	}
}

func TestRecordSentencesAndTranscript(t *testing.T) {
	met, reader := newTestMetrics(t)
	ctx := context.Background()

	met.RecordSentences(ctx, 3)
	met.RecordSentences(ctx, 0)
	met.RecordTranscript(ctx, "ok", 20*time.Millisecond)

	if got := sumOf(t, reader, "homonym.sentences"); got != 3 {
		t.Errorf("homonym.sentences = %d, want 3", got)
	}
	if got := sumOf(t, reader, "pipeline.transcripts"); got != 1 {
		t.Errorf("pipeline.transcripts = %d, want 1", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var met *Metrics
	ctx := context.Background()

	// Must not panic.
	met.RecordCorrection(ctx, "know", "no")
	met.RecordSentences(ctx, 1)
	met.RecordTranscript(ctx, "failed", time.Second)
}
