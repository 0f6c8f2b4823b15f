package main

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	flag "github.com/spf13/pflag"

	mdbookpdf "github.com/alnah/mdbook-pdf"
	"github.com/alnah/mdbook-pdf/internal/book"
	"github.com/alnah/mdbook-pdf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage      = errors.New("invalid usage")
	ErrConfigFile = errors.New("failed to read config file")
)

// run executes one render: read the context, resolve, and run pandoc.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdbook-pdf %s\n", Version)
		return nil
	}

	logger := newLogger(env.Stderr, flags.logLevel())
	prog := newProgress(logger, env.Now)

	rc, err := book.ReadContext(env.Stdin)
	if err != nil {
		return fmt.Errorf("reading render context: %w", err)
	}

	if flags.config != "" {
		tree, err := book.LoadTree(flags.config)
		if err != nil {
			return fmt.Errorf("%w: %w%s", ErrConfigFile, err, hints.ForConfigFile())
		}
		logger.Debug("configuration replaced", "file", flags.config)
		rc.Config = tree
	}

	plan, err := mdbookpdf.Prepare(rc, logger)
	if err != nil {
		if errors.Is(err, mdbookpdf.ErrConfig) {
			return fmt.Errorf("%w%s", err, hints.ForMissingTitle())
		}
		return err
	}

	pandoc := &mdbookpdf.Pandoc{
		Binary: flags.pandoc,
		Runner: env.Runner,
		Stdout: env.Stdout,
		Stderr: env.Stderr,
	}

	if flags.dryRun {
		fmt.Fprintln(env.Stdout, pandoc.CommandLine(plan.Spec))
		return nil
	}

	output := filepath.Join(plan.Dir, plan.Config.OutputName)
	logger.Debug("running pandoc", "args", plan.Spec.Args())

	if err := pandoc.Execute(ctx, plan.Spec, plan.Dir); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForPandocNotFound())
		}
		return fmt.Errorf("%w%s", err, hints.ForEngineFailure(plan.Config.Engine.String()))
	}

	prog.done("Wrote " + output)
	return nil
}
