package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/nguyentantai21042004/homonym-flow/internal/catalog"
	"github.com/nguyentantai21042004/homonym-flow/internal/config"
	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
	"github.com/nguyentantai21042004/homonym-flow/internal/readability"
	"github.com/nguyentantai21042004/homonym-flow/internal/watcher"
	"golang.org/x/sync/errgroup"
)

func runWatch(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	logBanner(ctx, log, cfg)

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()
	a.serveMetrics(ctx)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, a.processor.Process, a.processor.Accepts, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
		close(errChan)
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s (%s)", cfg.Paths.Output, strings.Join(cfg.Export.Formats, ", "))
	if cfg.Whisper.Enabled {
		log.Info(ctx, "Whisper: %d threads, model %s", cfg.Whisper.Threads, cfg.Whisper.ModelPath)
	}
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("watcher: %w", err)
		}
	}

	log.Info(ctx, "Shutting down gracefully...")
	// Start returns once in-flight transcripts finish
	<-errChan
	log.Info(ctx, "Pipeline stopped")
	return nil
}

func runFix(ctx context.Context, cfg *config.Config, log logger.Logger, args []string) error {
	fs := flag.NewFlagSet("fix", flag.ContinueOnError)
	normalize := fs.Bool("normalize", cfg.Correction.Normalize, "tidy spacing and capitalization after correcting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return fixText(ctx, cfg, log, in, os.Stdout, *normalize)
}

// fixText corrects everything read from in and writes it to out. It needs
// only the catalog, so no metrics provider or ledger is started.
func fixText(ctx context.Context, cfg *config.Config, log logger.Logger, in io.Reader, out io.Writer, normalize bool) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	corr, err := newCorrector(ctx, cfg, log)
	if err != nil {
		return err
	}

	text := corr.Process(ctx, string(raw))
	if normalize {
		text = readability.Normalize(text)
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func runBatch(ctx context.Context, cfg *config.Config, log logger.Logger, args []string) error {
	if len(args) != 1 {
		return errors.New("batch needs exactly one directory")
	}
	dir := args[0]

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}

	var g errgroup.Group
	g.SetLimit(cfg.Performance.MaxConcurrent)
	var failed, total atomic.Int64

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() || !a.processor.Accepts(path) {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		total.Add(1)
		g.Go(func() error {
			if err := a.processor.Process(ctx, path); err != nil {
				failed.Add(1)
				log.Error(ctx, "Failed to process %s: %v", path, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	log.Info(ctx, "Batch finished: %d file(s), %d failed", total.Load(), failed.Load())
	if failed.Load() > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed.Load(), total.Load())
	}
	return ctx.Err()
}

func runRules(cfg *config.Config) error {
	cat, err := catalog.WithDefaults(cfg.Correction.Rules...)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	for i, r := range cat.All() {
		fmt.Printf("%2d. %-8s <- %s\n", i+1, r.Canonical, strings.Join(r.Alternatives, ", "))
	}

	warnings := cat.Lint()
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
	if len(warnings) == 0 {
		fmt.Println("no lint warnings")
	}
	return nil
}
