package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	accept        Filter
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup
}

// Start begins monitoring the inbox for new transcripts
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	// Running handlers finish before Start returns
	defer w.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if err := w.handle(ctx, event); err != nil {
				w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// handle dispatches one CREATE event, blocking while all slots are busy
func (w *implWatcher) handle(ctx context.Context, event fsnotify.Event) error {
	if !event.Has(fsnotify.Create) {
		return nil
	}
	if w.accept != nil && !w.accept(event.Name) {
		w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
		return nil
	}

	w.logger.Info(ctx, "New transcript detected: %s", event.Name)

	// Small delay to ensure file is fully written
	select {
	case <-time.After(w.settleDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func(filePath string) {
			defer w.wg.Done()
			defer func() { <-w.semaphore }()

			if err := w.handler(ctx, filePath); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
			}
		}(event.Name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
