package exporter

import (
	"context"
	"errors"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrEmptyText         = errors.New("no transcription to export")
)

// Exporter writes a finished transcript to a file in the requested format
// and returns the path it wrote.
type Exporter interface {
	Export(ctx context.Context, text, format string) (string, error)
}
