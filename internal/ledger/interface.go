// Package ledger remembers which transcripts have already been exported so
// duplicate watcher events and re-dropped files are not processed twice.
package ledger

import "context"

// Ledger is a set of transcript fingerprints.
type Ledger interface {
	Seen(ctx context.Context, fingerprint string) (bool, error)
	Mark(ctx context.Context, fingerprint string) error
}
