package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extractAudio converts any supported audio file to 16kHz mono WAV,
// the input format whisper.cpp expects
func (p *implProcessor) extractAudio(ctx context.Context, inputPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	audioPath := filepath.Join(p.cfg.Paths.Temp, base+"_16k.wav")

	p.logger.Info(ctx, "Converting audio for transcription: %s", inputPath)

	// -vn: drop any video stream
	// -ar 16000 -ac 1: 16kHz mono
	// -c:a pcm_s16le: 16-bit PCM
	// -y: overwrite a stale temp file
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	p.logger.Debug(ctx, "Audio converted: %s", audioPath)
	return audioPath, nil
}
