package hints

// Notes:
// - ForEngineFailure tests cannot use t.Parallel() because they modify the
//   package-level IsInContainer variable.

import (
	"strings"
	"testing"
)

func TestForEngineFailure_TeXInContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	hint := ForEngineFailure("xelatex")

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "xelatex is installed") {
		t.Error("expected engine name in hint")
	}
	if !strings.Contains(hint, "texlive") {
		t.Error("expected TeX distribution suggestion in container")
	}
}

func TestForEngineFailure_NonTeXInContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	hint := ForEngineFailure("weasyprint")

	if strings.Contains(hint, "texlive") {
		t.Error("unexpected TeX suggestion for HTML engine")
	}
	if !strings.Contains(hint, "[output.pdf.pandoc] engine") {
		t.Error("expected engine selection suggestion")
	}
}

func TestForEngineFailure_OutsideContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	hint := ForEngineFailure("pdflatex")

	if strings.Contains(hint, "texlive") {
		t.Error("unexpected container suggestion outside container")
	}
	if got := strings.Count(hint, "hint:"); got != 1 {
		t.Errorf("expected hints joined on one line, got %d prefixes", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{name: "missing title", hint: ForMissingTitle(), want: "output-name"},
		{name: "pandoc not found", hint: ForPandocNotFound(), want: "--pandoc"},
		{name: "config file", hint: ForConfigFile(), want: "book.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("missing hint prefix: %q", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q does not mention %q", tt.hint, tt.want)
			}
		})
	}
}
