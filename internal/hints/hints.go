// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/mdbook-pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// texEngines are the PDF engines that need a TeX distribution.
var texEngines = map[string]bool{
	"pdflatex": true,
	"lualatex": true,
	"xelatex":  true,
	"latexmk":  true,
	"tectonic": true,
	"context":  true,
}

// ForMissingTitle returns hints for an output name that cannot be derived.
func ForMissingTitle() string {
	return format("set title under [book] or output-name under [output.pdf] in book.toml")
}

// ForPandocNotFound returns hints when the pandoc binary cannot be started.
func ForPandocNotFound() string {
	return format("install pandoc (https://pandoc.org/installing.html) or pass --pandoc /path/to/pandoc")
}

// ForEngineFailure returns hints for a pandoc run that exited with an error.
// TeX engines get an extra suggestion inside containers, where a TeX
// distribution is the usual missing piece.
func ForEngineFailure(engine string) string {
	hints := []string{"check that " + engine + " is installed and on PATH"}

	if texEngines[engine] && IsInContainer() {
		hints = append(hints, "add a TeX distribution (e.g. texlive) to the image")
	}

	hints = append(hints, "select another engine with [output.pdf.pandoc] engine")
	return formatHints(hints)
}

// ForConfigFile returns hints for an unreadable --config file.
func ForConfigFile() string {
	return format("--config expects a book.toml file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
