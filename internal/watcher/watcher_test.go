package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
)

func onlyTranscripts(path string) bool {
	return strings.HasSuffix(path, ".txt")
}

func TestWatcherDispatchesAcceptedFiles(t *testing.T) {
	dir := t.TempDir()
	got := make(chan string, 4)
	handler := func(ctx context.Context, path string) error {
		got <- filepath.Base(path)
		return nil
	}

	w, err := New(dir, handler, onlyTranscripts, logger.Nop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settleDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	for _, name := range []string{"skip.mp4", "call.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("hello"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case name := <-got:
		if name != "call.txt" {
			t.Errorf("handler got %s, want call.txt", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want %v", err, context.Canceled)
	}
	if len(got) != 0 {
		t.Errorf("unexpected extra dispatch: %s", <-got)
	}
}

func TestWatcherWaitsForRunningHandlerOnCancel(t *testing.T) {
	dir := t.TempDir()
	started := make(chan struct{}, 2)
	var finished atomic.Int32
	handler := func(ctx context.Context, path string) error {
		started <- struct{}{}
		time.Sleep(300 * time.Millisecond)
		finished.Add(1)
		return nil
	}

	w, err := New(dir, handler, onlyTranscripts, logger.Nop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settleDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "first.txt"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first handler was not called")
	}

	// The only slot is busy, so this event waits on the semaphore
	if err := os.WriteFile(filepath.Join(dir, "second.txt"), []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want %v", err, context.Canceled)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
	if finished.Load() != 1 {
		t.Errorf("handlers finished = %d when Start returned, want 1", finished.Load())
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, nil, logger.Nop(), 0)
	if err == nil {
		t.Fatal("New() should fail for a missing directory")
	}
}

func TestNewDefaultsConcurrency(t *testing.T) {
	w, err := New(t.TempDir(), nil, nil, logger.Nop(), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if got := cap(w.(*implWatcher).semaphore); got != 2 {
		t.Errorf("semaphore capacity = %d, want 2", got)
	}
}
