package corrector

import (
	"github.com/nguyentantai21042004/homonym-flow/internal/catalog"
	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
	"github.com/nguyentantai21042004/homonym-flow/internal/observe"
)

type implCorrector struct {
	rules   []catalog.Rule
	logger  logger.Logger
	metrics *observe.Metrics
}

// Option configures a Corrector.
type Option func(*implCorrector)

// WithMetrics records every applied rewrite on m.
func WithMetrics(m *observe.Metrics) Option {
	return func(c *implCorrector) {
		c.metrics = m
	}
}

// New creates a Corrector over cat. Rules are evaluated in catalog order.
func New(cat *catalog.Catalog, log logger.Logger, opts ...Option) Corrector {
	if log == nil {
		log = logger.Nop()
	}
	c := &implCorrector{
		rules:  cat.All(),
		logger: log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}
