package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"
)

// cliFlags holds the renderer's command-line flags.
type cliFlags struct {
	config  string
	pandoc  string
	dryRun  bool
	quiet   bool
	verbose bool
	version bool
}

// logLevel returns the level selected by --quiet and --verbose.
func (f *cliFlags) logLevel() log.Level {
	switch {
	case f.quiet:
		return log.ErrorLevel
	case f.verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// parseFlags parses args (including the program name) and returns the flags.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("mdbook-pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "read configuration from this book.toml instead of the render context")
	fs.StringVar(&f.pandoc, "pandoc", "", "pandoc binary name or path (default: pandoc)")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "print the pandoc command line instead of running it")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolved configuration and timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mdbook-pdf [flags] < render-context.json\n\n")
		fs.PrintDefaults()
	}

	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if f.quiet && f.verbose {
		return nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	return f, nil
}
