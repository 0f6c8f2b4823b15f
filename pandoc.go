package mdbookpdf

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/alnah/mdbook-pdf/internal/fileutil"
	"github.com/alnah/mdbook-pdf/internal/process"
)

// DefaultPandocBinary is looked up on PATH when no binary is configured.
const DefaultPandocBinary = "pandoc"

// Command is a single external process invocation.
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner implements CommandRunner using os/exec. Canceling ctx kills
// the command's whole process group.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) // #nosec G204 -- binary and args come from the book configuration
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	process.Isolate(cmd)
	return cmd.Run()
}

// Pandoc executes InvocationSpecs with the pandoc CLI.
// Pandoc's own output and diagnostics are passed through untouched.
type Pandoc struct {
	Binary string
	Runner CommandRunner
	Stdout io.Writer
	Stderr io.Writer
}

// NewPandoc creates a Pandoc with a real command runner writing to the
// process's standard streams.
func NewPandoc() *Pandoc {
	return &Pandoc{
		Binary: DefaultPandocBinary,
		Runner: &ExecRunner{},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (p *Pandoc) binary() string {
	if p.Binary == "" {
		return DefaultPandocBinary
	}
	return p.Binary
}

// Command returns the process description for spec, run from dir.
func (p *Pandoc) Command(spec InvocationSpec, dir string) Command {
	return Command{
		Name:   p.binary(),
		Args:   spec.Args(),
		Dir:    dir,
		Stdin:  strings.NewReader(spec.Input()),
		Stdout: p.Stdout,
		Stderr: p.Stderr,
	}
}

// CommandLine renders the invocation as a shell-quoted string for display.
func (p *Pandoc) CommandLine(spec InvocationSpec) string {
	parts := append([]string{p.binary()}, spec.Args()...)
	for i, part := range parts {
		parts[i] = shellQuote(part)
	}
	return strings.Join(parts, " ")
}

// Execute runs pandoc for spec in dir. On failure any partially written
// output file is removed and an *ExternalToolError is returned.
func (p *Pandoc) Execute(ctx context.Context, spec InvocationSpec, dir string) error {
	runErr := p.Runner.Run(ctx, p.Command(spec, dir))
	if runErr == nil {
		return nil
	}

	toolErr := &ExternalToolError{
		Tool:     p.binary(),
		Engine:   spec.Engine(),
		ExitCode: -1,
		Err:      runErr,
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		toolErr.ExitCode = exitErr.ExitCode()
	}

	output := spec.OutputPath()
	if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}
	return multierr.Append(toolErr, fileutil.RemoveIfExists(output))
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`*?[]{}()<>|&;#~") {
		return s
	}
	return strconv.Quote(s)
}
