package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	maxSnippetWords = 4
	maxSnippetLen   = 25
	defaultSnippet  = "transcription"
)

var reNotWordChar = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// Export writes text as txt, md, docx or xlsx. Any other format, pdf
// included, fails with ErrUnsupportedFormat.
func (e *implExporter) Export(ctx context.Context, text, format string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	format = strings.ToLower(strings.TrimSpace(format))
	var write func(title, text, path string, generated time.Time) error
	switch format {
	case "txt":
		write = writeText
	case "md":
		write = writeMarkdown
	case "docx":
		write = writeDocx
	case "xlsx":
		write = writeXlsx
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	now := e.now()
	path := uniquePath(filepath.Join(e.dir, fileName(text, format, now)))
	if err := write(e.title, text, path, now); err != nil {
		return "", fmt.Errorf("write %s: %w", format, err)
	}

	e.logger.Info(ctx, "Exported %s: %s", strings.ToUpper(format), path)
	return path, nil
}

// fileName builds "<first words>_<yyyyMMdd_HHmm>.<ext>" from the transcript.
func fileName(text, ext string, now time.Time) string {
	clean := reNotWordChar.ReplaceAllString(strings.TrimSpace(text), "")
	words := strings.Fields(clean)

	var sb strings.Builder
	for i := 0; i < len(words) && i < maxSnippetWords; i++ {
		if sb.Len()+len(words[i]) > maxSnippetLen {
			break
		}
		if sb.Len() > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(words[i])
	}

	snippet := sb.String()
	if snippet == "" {
		snippet = defaultSnippet
	}
	return snippet + "_" + now.Format("20060102_1504") + "." + ext
}

// uniquePath appends _2, _3, ... before the extension while path exists.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		candidate := base + "_" + strconv.Itoa(n) + ext
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// MimeType returns the content type of an exported file.
func MimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".md":
		return "text/markdown"
	case ".txt":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
