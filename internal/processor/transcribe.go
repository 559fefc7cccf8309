package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribe runs whisper.cpp on a 16kHz WAV and returns the path of the
// plain-text transcript it writes
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (string, error) {
	// Whisper appends .txt to the prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	p.logger.Info(ctx, "Starting transcription with %d threads: %s", p.cfg.Whisper.Threads, audioPath)

	// -otxt: plain text output, no timestamps
	// -l: force language
	// -bo 5: best of 5 candidates
	args := []string{
		"-m", p.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if p.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", p.cfg.Whisper.Prompt)
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	p.logger.Info(ctx, "Transcription completed: %s", txtPath)
	return txtPath, nil
}
