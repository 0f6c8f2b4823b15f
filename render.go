package mdbookpdf

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/mdbook-pdf/internal/book"
)

// RenderContext is the payload mdBook writes to a renderer's stdin.
type RenderContext = book.RenderContext

// ReadContext decodes a RenderContext from r, typically os.Stdin.
func ReadContext(r io.Reader) (*RenderContext, error) {
	return book.ReadContext(r)
}

// Logger receives warnings and progress. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

// Plan is everything needed to produce the PDF for one render context.
type Plan struct {
	Config ResolvedConfig
	Spec   InvocationSpec
	Dir    string // working directory for pandoc, mdBook's destination
}

// Prepare resolves configuration and builds the invocation for rc.
// Warnings are logged; only a *ConfigError aborts.
func Prepare(rc *book.RenderContext, logger Logger) (*Plan, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	raw, err := DecodeRawConfig(rc.Config)
	if err != nil {
		var malformed *MalformedConfigWarning
		if !errors.As(err, &malformed) {
			return nil, err
		}
		logger.Warn(malformed.Error(), "recognized", strings.Join(RecognizedKeys(), ", "))
		raw = nil
	}

	resolved, err := Resolve(raw, rc.Title())
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved configuration",
		"output", resolved.OutputName,
		"engine", resolved.Engine,
		"font", resolved.Format.MainFont)

	opts := AggregateOptions{Ignores: resolved.Ignores}
	if resolved.TitleHeading {
		opts.BookTitle = rc.Title()
	}
	content := Aggregate(rc.Book.Sections, opts)
	logger.Debug("aggregated book content", "bytes", len(content))

	spec := Build(resolved, content, rc.Root)
	for _, w := range spec.Warnings() {
		// The default font is always present; only a font the user
		// chose deserves a warning when the engine drops it.
		if errors.Is(w, ErrUnsupportedOption) && !raw.fontIsExplicit() {
			logger.Debug(w.Error())
			continue
		}
		logger.Warn(w.Error())
	}

	return &Plan{Config: resolved, Spec: spec, Dir: rc.Destination}, nil
}

// Render prepares rc and runs pandoc. A nil pandoc uses NewPandoc.
func Render(ctx context.Context, rc *book.RenderContext, pandoc *Pandoc, logger Logger) error {
	plan, err := Prepare(rc, logger)
	if err != nil {
		return err
	}
	if pandoc == nil {
		pandoc = NewPandoc()
	}
	return pandoc.Execute(ctx, plan.Spec, plan.Dir)
}
