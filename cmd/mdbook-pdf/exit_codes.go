package main

import (
	"errors"
	"os"

	mdbookpdf "github.com/alnah/mdbook-pdf"
	"github.com/alnah/mdbook-pdf/internal/book"
)

// Exit codes for the mdbook-pdf renderer.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // PDF written (or dry run printed)
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags or configuration
	ExitIO         = 3 // Unreadable render context or files
	ExitConversion = 4 // Pandoc failed or could not be started
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, mdbookpdf.ErrExternalTool) {
		return ExitConversion
	}

	if errors.Is(err, book.ErrPayload) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrConfigFile) ||
		errors.Is(err, mdbookpdf.ErrConfig) {
		return ExitUsage
	}

	return ExitGeneral
}
