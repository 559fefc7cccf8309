// Package observe holds the OpenTelemetry instruments recorded by the
// corrector and the transcript pipeline.
//
// Tests should build a [Metrics] from their own [metric.MeterProvider] (for
// example an sdk/metric provider with a ManualReader) instead of the global one.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/nguyentantai21042004/homonym-flow"

// Metrics holds every instrument. All fields are safe for concurrent use.
type Metrics struct {
	// Corrections counts applied homonym rewrites. Attributes:
	//   attribute.String("canonical", ...), attribute.String("alternative", ...)
	Corrections metric.Int64Counter

	// Sentences counts sentences evaluated by the corrector.
	Sentences metric.Int64Counter

	// Transcripts counts pipeline runs. Attribute:
	//   attribute.String("status", "ok"|"skipped"|"failed")
	Transcripts metric.Int64Counter

	// Duration tracks end-to-end processing time of one transcript file.
	Duration metric.Float64Histogram
}

var durationBuckets = []float64{
	0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300,
}

// NewMetrics creates all instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Corrections, err = m.Int64Counter("homonym.corrections",
		metric.WithDescription("Homonym rewrites applied, by canonical word and alternative."),
	); err != nil {
		return nil, err
	}
	if met.Sentences, err = m.Int64Counter("homonym.sentences",
		metric.WithDescription("Sentences evaluated against the rule catalog."),
	); err != nil {
		return nil, err
	}
	if met.Transcripts, err = m.Int64Counter("pipeline.transcripts",
		metric.WithDescription("Transcript files handled by the pipeline, by status."),
	); err != nil {
		return nil, err
	}
	if met.Duration, err = m.Float64Histogram("pipeline.duration",
		metric.WithDescription("Processing time of one transcript file."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordCorrection is nil-safe so callers can run without metrics.
func (m *Metrics) RecordCorrection(ctx context.Context, canonical, alternative string) {
	if m == nil {
		return
	}
	m.Corrections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("canonical", canonical),
		attribute.String("alternative", alternative),
	))
}

func (m *Metrics) RecordSentences(ctx context.Context, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Sentences.Add(ctx, int64(n))
}

// RecordTranscript counts one pipeline run and its duration.
func (m *Metrics) RecordTranscript(ctx context.Context, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.Transcripts.Add(ctx, 1, attrs)
	m.Duration.Record(ctx, elapsed.Seconds(), attrs)
}
