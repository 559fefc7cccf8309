package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves the source file out of the inbox
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}

// removeFile deletes a temp or partial output file, logging a warning on failure
func (p *implProcessor) removeFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to remove %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Removed: %s", filePath)
	}
}
