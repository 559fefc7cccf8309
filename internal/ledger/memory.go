package ledger

import (
	"context"
	"sync"
)

type memoryLedger struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewMemory returns a process-local Ledger.
func NewMemory() Ledger {
	return &memoryLedger{seen: make(map[string]struct{})}
}

func (l *memoryLedger) Seen(_ context.Context, fingerprint string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.seen[fingerprint]
	return ok, nil
}

func (l *memoryLedger) Mark(_ context.Context, fingerprint string) error {
	l.mu.Lock()
	l.seen[fingerprint] = struct{}{}
	l.mu.Unlock()
	return nil
}
