package main

// Notes:
// - runMain is exercised end to end with an injected Environment: stdin carries
//   a render context and a fake CommandRunner stands in for pandoc.
// - Real pandoc runs are not tested here.

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdbookpdf "github.com/alnah/mdbook-pdf"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

type fakeRunner struct {
	err   error
	calls []mdbookpdf.Command
	stdin []string
}

func (f *fakeRunner) Run(_ context.Context, cmd mdbookpdf.Command) error {
	f.calls = append(f.calls, cmd)
	data, _ := io.ReadAll(cmd.Stdin)
	f.stdin = append(f.stdin, string(data))
	return f.err
}

const payloadTemplate = `{
  "version": "0.4.40",
  "root": "/books/guide",
  "book": {"sections": [
    {"PartTitle": "Basics"},
    {"Chapter": {"name": "Intro", "content": "Intro text\n", "number": [1], "sub_items": [], "path": "intro.md", "source_path": "intro.md", "parent_names": []}}
  ]},
  "config": %CONFIG%,
  "destination": "%DEST%"
}`

func payload(config, dest string) string {
	s := strings.Replace(payloadTemplate, "%CONFIG%", config, 1)
	return strings.Replace(s, "%DEST%", filepath.ToSlash(dest), 1)
}

func testEnv(stdin string, runner *fakeRunner) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	calls := 0
	env := &Environment{
		Now: func() time.Time {
			calls++
			return start.Add(time.Duration(calls) * time.Second)
		},
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Runner: runner,
	}
	return env, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestRunMain - End-to-end renderer behavior
// ---------------------------------------------------------------------------

func TestRunMain_Success(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	runner := &fakeRunner{}
	config := `{"book": {"title": "The Guide"}, "output": {"pdf": {"pandoc": {"engine": "xelatex", "main-font": "Noto Serif"}}}}`
	env, _, stderr := testEnv(payload(config, dest), runner)

	code := runMain([]string{"mdbook-pdf"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d; stderr: %s", code, ExitSuccess, stderr)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("pandoc calls = %d, want 1", len(runner.calls))
	}
	call := runner.calls[0]
	if call.Name != "pandoc" {
		t.Errorf("Name = %q, want pandoc", call.Name)
	}
	if call.Dir != filepath.ToSlash(dest) {
		t.Errorf("Dir = %q, want %q", call.Dir, dest)
	}
	args := strings.Join(call.Args, " ")
	for _, want := range []string{"--pdf-engine=xelatex", "--output=The Guide.pdf", "mainfont=Noto Serif", "--toc-depth=2"} {
		if !strings.Contains(args, want) {
			t.Errorf("args %q missing %q", args, want)
		}
	}
	if runner.stdin[0] != "# Basics\n\nIntro text\n" {
		t.Errorf("stdin = %q", runner.stdin[0])
	}
	if !strings.Contains(stderr.String(), "Wrote") {
		t.Errorf("expected completion log, got %q", stderr.String())
	}
}

func TestRunMain_DryRun(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	env, stdout, _ := testEnv(payload(`{"book": {"title": "Guide"}}`, "/out"), runner)

	code := runMain([]string{"mdbook-pdf", "--dry-run", "--pandoc", "/usr/local/bin/pandoc"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if len(runner.calls) != 0 {
		t.Errorf("pandoc ran %d times during dry run", len(runner.calls))
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "/usr/local/bin/pandoc --from=markdown+") {
		t.Errorf("stdout = %q, want command line", out)
	}
	if !strings.Contains(out, "--output=Guide.pdf") || !strings.Contains(out, "fontfamily=lmodern") {
		t.Errorf("stdout = %q, want defaults", out)
	}
}

func TestRunMain_MissingTitle(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	env, _, stderr := testEnv(payload(`{"book": {}}`, "/out"), runner)

	code := runMain([]string{"mdbook-pdf"}, env)
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if len(runner.calls) != 0 {
		t.Error("pandoc ran despite config error")
	}
	if !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("expected hint, got %q", stderr.String())
	}
}

func TestRunMain_MalformedConfigFallsBack(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	config := `{"book": {"title": "Guide"}, "output": {"pdf": {"pandoc": "xelatex"}}}`
	env, _, stderr := testEnv(payload(config, "/out"), runner)

	code := runMain([]string{"mdbook-pdf"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d; stderr: %s", code, ExitSuccess, stderr)
	}
	if !strings.Contains(stderr.String(), "malformed configuration") {
		t.Errorf("expected warning, got %q", stderr.String())
	}
	if !strings.Contains(strings.Join(runner.calls[0].Args, " "), "--pdf-engine=pdflatex") {
		t.Errorf("expected default engine, got %v", runner.calls[0].Args)
	}
}

func TestRunMain_BadPayload(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv("not json", &fakeRunner{})
	if code := runMain([]string{"mdbook-pdf"}, env); code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
}

func TestRunMain_PandocFails(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{err: errors.New("exit status 43")}
	env, _, stderr := testEnv(payload(`{"book": {"title": "Guide"}}`, t.TempDir()), runner)

	code := runMain([]string{"mdbook-pdf"}, env)
	if code != ExitConversion {
		t.Errorf("exit code = %d, want %d", code, ExitConversion)
	}
	if !strings.Contains(stderr.String(), "pdflatex is installed") {
		t.Errorf("expected engine hint, got %q", stderr.String())
	}
}

func TestRunMain_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "book.toml")
	content := `[book]
title = "From File"

[output.pdf.pandoc]
engine = "lualatex"
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	runner := &fakeRunner{}
	env, stdout, _ := testEnv(payload(`{"book": {"title": "From Payload"}}`, "/out"), runner)

	code := runMain([]string{"mdbook-pdf", "-n", "--config", configPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	out := stdout.String()
	if !strings.Contains(out, `"--output=From File.pdf"`) {
		t.Errorf("stdout = %q, want output name from file", out)
	}
	if !strings.Contains(out, "--pdf-engine=lualatex") {
		t.Errorf("stdout = %q, want engine from file", out)
	}
}

func TestRunMain_ConfigFileErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(payload(`{"book": {"title": "G"}}`, "/out"), &fakeRunner{})
		code := runMain([]string{"mdbook-pdf", "--config", filepath.Join(t.TempDir(), "none.toml")}, env)
		if code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "book.toml")
		if err := os.WriteFile(path, []byte("[book\ntitle = "), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		env, _, _ := testEnv(payload(`{"book": {"title": "G"}}`, "/out"), &fakeRunner{})
		code := runMain([]string{"mdbook-pdf", "--config", path}, env)
		if code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})
}

func TestRunMain_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
	}{
		{name: "version", args: []string{"mdbook-pdf", "--version"}, wantCode: ExitSuccess, wantStdout: "mdbook-pdf dev"},
		{name: "help", args: []string{"mdbook-pdf", "--help"}, wantCode: ExitSuccess},
		{name: "unknown flag", args: []string{"mdbook-pdf", "--bogus"}, wantCode: ExitUsage},
		{name: "positional argument", args: []string{"mdbook-pdf", "book"}, wantCode: ExitUsage},
		{name: "quiet and verbose", args: []string{"mdbook-pdf", "-q", "-v"}, wantCode: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv("", &fakeRunner{})
			code := runMain(tt.args, env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
		})
	}
}
