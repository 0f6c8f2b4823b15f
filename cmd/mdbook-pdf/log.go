package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a prefixed logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "mdbook-pdf",
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	now    func() time.Time
	start  time.Time
}

func newProgress(l *log.Logger, now func() time.Time) *progress {
	return &progress{logger: l, now: now, start: now()}
}

// done logs msg along with the elapsed time, e.g. "Wrote book.pdf (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.now().Sub(p.start).Round(time.Millisecond))
}
