package mdbookpdf

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// InputFormat is the pandoc reader used for the aggregated book.
	InputFormat = "markdown"

	// TOCDepth is the heading depth of the generated table of contents.
	TOCDepth = 2

	// sourceDir is where mdBook keeps chapter files, relative to the book root.
	sourceDir = "src"
)

// markdownExtensions are enabled on the markdown reader, in this order.
// Changing this list changes how every book renders.
var markdownExtensions = []string{
	"auto_identifiers",
	"backtick_code_blocks",
	"fenced_code_blocks",
	"pipe_tables",
	"multiline_tables",
	"startnum",
	"fancy_lists",
	"implicit_figures",
	"yaml_metadata_block",
}

// MarkdownExtensions returns the reader extensions enabled for every build.
func MarkdownExtensions() []string {
	return slices.Clone(markdownExtensions)
}

// InvocationSpec describes one pandoc run. It is a value: accessors return
// copies, and nothing mutates it after Build.
type InvocationSpec struct {
	input            string
	inputFormat      string
	inputExtensions  []string
	outputPath       string
	outputFormat     string
	outputExtensions []string
	engine           EngineKind
	variables        map[string]string
	resourcePaths    []string
	documentClass    string
	tocDepth         int
	warnings         []error
}

// Build assembles the pandoc invocation for resolved and content.
// bookRoot anchors the resource path so relative image links resolve.
// Options the engine cannot honor are skipped and reported by Warnings.
func Build(resolved ResolvedConfig, content, bookRoot string) InvocationSpec {
	spec := InvocationSpec{
		input:           strings.Clone(content),
		inputFormat:     InputFormat,
		inputExtensions: MarkdownExtensions(),
		outputPath:      resolved.OutputName,
		outputFormat:    resolved.Engine.OutputFormat(),
		engine:          resolved.Engine,
		variables:       make(map[string]string),
		resourcePaths:   []string{filepath.Join(bookRoot, sourceDir)},
		documentClass:   resolved.DocumentClass,
		tocDepth:        TOCDepth,
	}

	if key, ok := resolved.Engine.FontVariable(); ok {
		spec.variables[key] = resolved.Format.MainFont
	} else {
		spec.warnings = append(spec.warnings, &UnsupportedOptionWarning{
			Option: "main-font",
			Engine: resolved.Engine,
		})
	}

	return spec
}

// Input returns the aggregated Markdown piped to pandoc on stdin.
func (s InvocationSpec) Input() string { return s.input }

// InputFormat returns the pandoc reader name.
func (s InvocationSpec) InputFormat() string { return s.inputFormat }

// InputExtensions returns a copy of the reader extensions.
func (s InvocationSpec) InputExtensions() []string { return slices.Clone(s.inputExtensions) }

// OutputPath returns the PDF file name, relative to the working directory.
func (s InvocationSpec) OutputPath() string { return s.outputPath }

// OutputFormat returns the pandoc writer the engine consumes.
func (s InvocationSpec) OutputFormat() string { return s.outputFormat }

// OutputExtensions returns a copy of the writer extensions.
func (s InvocationSpec) OutputExtensions() []string { return slices.Clone(s.outputExtensions) }

// Engine returns the PDF engine passed as --pdf-engine.
func (s InvocationSpec) Engine() EngineKind { return s.engine }

// ResourcePaths returns a copy of the directories pandoc searches for images.
func (s InvocationSpec) ResourcePaths() []string { return slices.Clone(s.resourcePaths) }

// DocumentClass returns the LaTeX document class, or "" for the engine default.
func (s InvocationSpec) DocumentClass() string { return s.documentClass }

// TOCDepth returns the table of contents depth.
func (s InvocationSpec) TOCDepth() int { return s.tocDepth }

// Warnings returns a copy of the options Build could not honor.
func (s InvocationSpec) Warnings() []error { return slices.Clone(s.warnings) }

// Variables returns a copy of the template variables.
func (s InvocationSpec) Variables() map[string]string {
	return maps.Clone(s.variables)
}

// Variable returns the template variable key, if set.
func (s InvocationSpec) Variable(key string) (string, bool) {
	v, ok := s.variables[key]
	return v, ok
}

// Args renders the pandoc command-line arguments. Input is read from stdin.
// Variables are emitted in key order so the command line is reproducible.
func (s InvocationSpec) Args() []string {
	args := []string{
		"--from=" + formatWithExtensions(s.inputFormat, s.inputExtensions),
		"--to=" + formatWithExtensions(s.outputFormat, s.outputExtensions),
		"--output=" + s.outputPath,
		"--pdf-engine=" + s.engine.String(),
		"--resource-path=" + strings.Join(s.resourcePaths, string(filepath.ListSeparator)),
		"--toc",
		fmt.Sprintf("--toc-depth=%d", s.tocDepth),
	}

	if s.documentClass != "" {
		args = append(args, "--variable", "documentclass="+s.documentClass)
	}
	for _, key := range slices.Sorted(maps.Keys(s.variables)) {
		args = append(args, "--variable", key+"="+s.variables[key])
	}

	return args
}

// formatWithExtensions renders pandoc's "format+ext1+ext2" syntax.
func formatWithExtensions(format string, extensions []string) string {
	if len(extensions) == 0 {
		return format
	}
	return format + "+" + strings.Join(extensions, "+")
}
