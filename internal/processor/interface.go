package processor

import "context"

// Processor turns one transcript (or audio) file into corrected exports
type Processor interface {
	Process(ctx context.Context, path string) error
	// Accepts reports whether path is a file Process can handle
	Accepts(path string) bool
}
