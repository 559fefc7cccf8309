package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/homonym-flow/internal/ledger"
	"github.com/nguyentantai21042004/homonym-flow/internal/readability"
)

const (
	statusOK      = "ok"
	statusSkipped = "skipped"
	statusFailed  = "failed"
)

var audioFormats = []string{".wav", ".mp3", ".m4a", ".ogg", ".flac"}

// Accepts reports whether path is a transcript, or an audio file while
// whisper is enabled
func (p *implProcessor) Accepts(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".txt" {
		return true
	}
	return p.cfg.Whisper.Enabled && isAudio(path)
}

// Process orchestrates the whole transcript pipeline for one file
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	runID := uuid.NewString()
	status := statusFailed
	defer func() {
		p.metrics.RecordTranscript(ctx, status, time.Since(startTime))
	}()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript processing: %s (run %s)", path, runID)
	p.logger.Info(ctx, "========================================")

	// Step 1: Obtain the raw transcript, transcribing audio first
	textPath := path
	if isAudio(path) {
		if !p.cfg.Whisper.Enabled {
			return fmt.Errorf("audio input %s: whisper is disabled", path)
		}
		audioPath, err := p.extractAudio(ctx, path)
		if err != nil {
			return fmt.Errorf("extract audio: %w", err)
		}
		defer p.removeFile(ctx, audioPath)

		txtPath, err := p.transcribe(ctx, audioPath)
		if err != nil {
			return fmt.Errorf("transcribe: %w", err)
		}
		defer p.removeFile(ctx, txtPath)
		textPath = txtPath
	}

	raw, err := readTranscript(textPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		p.logger.Warn(ctx, "Empty transcript, skipping: %s", path)
		status = statusSkipped
		p.archive(ctx, path)
		return nil
	}

	// Step 2: Skip content that was already exported
	fingerprint := ledger.Fingerprint(raw)
	seen, err := p.ledger.Seen(ctx, fingerprint)
	if err != nil {
		p.logger.Warn(ctx, "Ledger lookup failed, processing anyway: %v", err)
	}
	if seen {
		p.logger.Info(ctx, "Transcript already exported, skipping: %s", path)
		status = statusSkipped
		p.archive(ctx, path)
		return nil
	}

	// Step 3: Correct homonyms, then tidy up
	result := p.corrector.Correct(ctx, raw)
	text := result.Text
	if p.cfg.Correction.Normalize {
		text = readability.Normalize(text)
	}
	p.logger.Info(ctx, "Applied %d homonym correction(s)", len(result.Corrections))

	// Step 4: Export in every configured format
	outputs := make([]string, 0, len(p.cfg.Export.Formats))
	for _, format := range p.cfg.Export.Formats {
		out, err := p.exporter.Export(ctx, text, format)
		if err != nil {
			// Remove this run's earlier exports; the ledger stays unmarked
			for _, written := range outputs {
				p.removeFile(ctx, written)
			}
			return fmt.Errorf("export %s: %w", format, err)
		}
		outputs = append(outputs, out)
	}

	if err := p.ledger.Mark(ctx, fingerprint); err != nil {
		p.logger.Warn(ctx, "Failed to record transcript in ledger: %v", err)
	}

	// Step 5: Move the source out of the inbox
	p.archive(ctx, path)
	status = statusOK

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully! (run %s)", runID)
	for _, out := range outputs {
		p.logger.Info(ctx, "Output: %s", out)
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) archive(ctx context.Context, path string) {
	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move source to archived folder: %v", err)
	}
}

func isAudio(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range audioFormats {
		if ext == format {
			return true
		}
	}
	return false
}
