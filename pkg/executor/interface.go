package executor

import "context"

// Executor runs external tools (ffmpeg, whisper.cpp) for the pipeline
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
