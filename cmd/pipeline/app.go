package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/homonym-flow/internal/catalog"
	"github.com/nguyentantai21042004/homonym-flow/internal/config"
	"github.com/nguyentantai21042004/homonym-flow/internal/corrector"
	"github.com/nguyentantai21042004/homonym-flow/internal/exporter"
	"github.com/nguyentantai21042004/homonym-flow/internal/ledger"
	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
	"github.com/nguyentantai21042004/homonym-flow/internal/observe"
	"github.com/nguyentantai21042004/homonym-flow/internal/processor"
	"github.com/nguyentantai21042004/homonym-flow/pkg/executor"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 5 * time.Second

// app bundles everything a command needs, plus the teardown for it
type app struct {
	cfg       *config.Config
	log       logger.Logger
	corrector corrector.Corrector
	processor processor.Processor
	closers   []func(context.Context) error
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	met, shutdown, err := observe.InitProvider(ctx, "homonym-flow")
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	a.closers = append(a.closers, shutdown)

	a.corrector, err = newCorrector(ctx, cfg, log, corrector.WithMetrics(met))
	if err != nil {
		a.close()
		return nil, err
	}
	exp := exporter.New(cfg.Paths.Output, cfg.Export.Title, log)
	a.processor = processor.New(cfg, executor.New(), a.corrector, exp, log,
		processor.WithMetrics(met),
		processor.WithLedger(a.openLedger(ctx)),
	)

	return a, nil
}

// newCorrector builds the catalog (built-ins plus configured rules) and a
// Corrector over it
func newCorrector(ctx context.Context, cfg *config.Config, log logger.Logger, opts ...corrector.Option) (corrector.Corrector, error) {
	cat, err := catalog.WithDefaults(cfg.Correction.Rules...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	log.Info(ctx, "Loaded %d homonym rule(s)", cat.Len())
	return corrector.New(cat, log, opts...), nil
}

// openLedger prefers Redis when configured and reachable
func (a *app) openLedger(ctx context.Context) ledger.Ledger {
	lc := a.cfg.Ledger
	if lc.RedisAddr == "" {
		return ledger.NewMemory()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     lc.RedisAddr,
		Password: lc.RedisPassword,
		DB:       lc.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		a.log.Warn(ctx, "Redis ledger unavailable at %s, using memory: %v", lc.RedisAddr, err)
		_ = client.Close()
		return ledger.NewMemory()
	}

	a.log.Info(ctx, "Using Redis ledger %s (key %s)", lc.RedisAddr, lc.Key)
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })
	return ledger.NewRedis(client, lc.Key)
}

// serveMetrics exposes /metrics when an address is configured
func (a *app) serveMetrics(ctx context.Context) {
	if a.cfg.Metrics.Addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", observe.Handler())
	srv := &http.Server{Addr: a.cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error(ctx, "Metrics server error: %v", err)
		}
	}()
	a.closers = append(a.closers, srv.Shutdown)
	a.log.Info(ctx, "Metrics: http://%s/metrics", a.cfg.Metrics.Addr)
}

// close runs teardown in reverse order
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Warn(ctx, "Shutdown: %v", err)
		}
	}
}
