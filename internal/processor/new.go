package processor

import (
	"github.com/nguyentantai21042004/homonym-flow/internal/config"
	"github.com/nguyentantai21042004/homonym-flow/internal/corrector"
	"github.com/nguyentantai21042004/homonym-flow/internal/exporter"
	"github.com/nguyentantai21042004/homonym-flow/internal/ledger"
	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
	"github.com/nguyentantai21042004/homonym-flow/internal/observe"
	"github.com/nguyentantai21042004/homonym-flow/pkg/executor"
)

type implProcessor struct {
	cfg       *config.Config
	executor  executor.Executor
	corrector corrector.Corrector
	exporter  exporter.Exporter
	ledger    ledger.Ledger
	metrics   *observe.Metrics
	logger    logger.Logger
}

// Option configures optional Processor dependencies
type Option func(*implProcessor)

// WithLedger replaces the default in-memory ledger
func WithLedger(l ledger.Ledger) Option {
	return func(p *implProcessor) {
		p.ledger = l
	}
}

// WithMetrics records one pipeline run per processed file
func WithMetrics(m *observe.Metrics) Option {
	return func(p *implProcessor) {
		p.metrics = m
	}
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, corr corrector.Corrector, exp exporter.Exporter, log logger.Logger, opts ...Option) Processor {
	p := &implProcessor{
		cfg:       cfg,
		executor:  exec,
		corrector: corr,
		exporter:  exp,
		ledger:    ledger.NewMemory(),
		logger:    log,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}
