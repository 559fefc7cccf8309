package processor

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// readTranscript maps the file read-only and copies its contents out.
// Empty files cannot be mapped and read as "".
func readTranscript(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}
	if info.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("mmap: %w", err)
	}
	defer m.Unmap()

	return string(m), nil
}
