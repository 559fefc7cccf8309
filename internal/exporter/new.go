package exporter

import (
	"time"

	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
)

type implExporter struct {
	dir    string
	title  string
	logger logger.Logger
	now    func() time.Time
}

// New creates an Exporter writing into dir. title heads every document.
func New(dir, title string, log logger.Logger) Exporter {
	return &implExporter{
		dir:    dir,
		title:  title,
		logger: log,
		now:    time.Now,
	}
}
