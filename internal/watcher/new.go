package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
)

const (
	defaultMaxConcurrent = 2
	defaultSettleDelay   = 500 * time.Millisecond
)

// New watches inputDir and hands every created file that accept lets through
// to handler, running at most maxConcurrent handlers at once. A nil accept
// passes everything.
func New(inputDir string, handler EventHandler, accept Filter, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(inputDir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", inputDir, err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	if log == nil {
		log = logger.Nop()
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		accept:        accept,
		logger:        log,
		watcher:       fw,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settleDelay:   defaultSettleDelay,
	}, nil
}
