package mdbookpdf

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/mdbook-pdf/internal/book"
	"github.com/alnah/mdbook-pdf/internal/fileutil"
	"github.com/alnah/mdbook-pdf/internal/yamlutil"
)

// ConfigNamespace is the book.toml table this renderer reads.
const ConfigNamespace = "output.pdf"

// Built-in defaults.
const (
	DefaultEngine   = EnginePDFLaTeX
	DefaultMainFont = "lmodern"
	pdfExtension    = ".pdf"
)

// RawConfig is the [output.pdf] table as supplied by the user.
// Nil fields are unset and fall back to defaults. Keys not listed here,
// such as mdBook's own "command" and "optional", are ignored.
type RawConfig struct {
	OutputName   *string    `yaml:"output-name"`
	TitleHeading *bool      `yaml:"title-heading"`
	Ignores      []string   `yaml:"ignores"`
	Pandoc       *RawPandoc `yaml:"pandoc"`
}

// RawPandoc is the [output.pdf.pandoc] table.
type RawPandoc struct {
	Engine        *string `yaml:"engine"`
	MainFont      *string `yaml:"main-font"`
	DocumentClass *string `yaml:"document-class"`
}

// FormatOptions holds engine-independent formatting choices.
type FormatOptions struct {
	MainFont string
}

// ResolvedConfig is the configuration after defaults are applied.
// Build it with Resolve only.
type ResolvedConfig struct {
	OutputName    string
	Engine        EngineKind
	Format        FormatOptions
	DocumentClass string // empty = let the template decide
	TitleHeading  bool
	Ignores       []string
}

// RecognizedKeys lists the keys understood under [output.pdf].
func RecognizedKeys() []string {
	return []string{
		"output-name",
		"title-heading",
		"ignores",
		"pandoc.engine",
		"pandoc.main-font",
		"pandoc.document-class",
	}
}

// DecodeRawConfig reads the [output.pdf] table from tree.
// It returns nil, nil when the table is absent. A table that does not
// match the expected shape yields nil and a *MalformedConfigWarning so the
// caller can report it and continue with defaults.
func DecodeRawConfig(tree book.Tree) (*RawConfig, error) {
	sub, ok := tree.Get(ConfigNamespace)
	if !ok {
		return nil, nil
	}

	if err := checkScalarTypes(sub); err != nil {
		return nil, &MalformedConfigWarning{Namespace: ConfigNamespace, Err: err}
	}

	var raw RawConfig
	if err := yamlutil.Decode(sub, &raw); err != nil {
		return nil, &MalformedConfigWarning{Namespace: ConfigNamespace, Err: err}
	}
	if err := raw.validate(); err != nil {
		return nil, &MalformedConfigWarning{Namespace: ConfigNamespace, Err: err}
	}
	return &raw, nil
}

var (
	errEmptyValue = errors.New("value cannot be empty")
	errNotString  = errors.New("value must be a string")
)

// stringKeys must hold strings in the raw tree. The YAML decoder would
// otherwise coerce numbers and booleans into them.
var stringKeys = []string{
	"output-name",
	"pandoc.engine",
	"pandoc.main-font",
	"pandoc.document-class",
}

// checkScalarTypes rejects non-string values for string keys and
// non-string ignores entries. Shape errors elsewhere are left to the decoder.
func checkScalarTypes(sub any) error {
	table, ok := sub.(map[string]any)
	if !ok {
		return nil
	}
	tree := book.Tree(table)
	for _, key := range stringKeys {
		v, ok := tree.Get(key)
		if !ok {
			continue
		}
		if _, isString := v.(string); !isString {
			return fmt.Errorf("%s: %w, got %T", key, errNotString, v)
		}
	}
	if list, ok := table["ignores"].([]any); ok {
		for i, v := range list {
			if _, isString := v.(string); !isString {
				return fmt.Errorf("ignores[%d]: %w, got %T", i, errNotString, v)
			}
		}
	}
	return nil
}

func (r *RawConfig) validate() error {
	if r.OutputName != nil && strings.TrimSpace(*r.OutputName) == "" {
		return fmt.Errorf("output-name: %w", errEmptyValue)
	}
	if r.Pandoc == nil {
		return nil
	}
	if r.Pandoc.Engine != nil {
		if _, err := ParseEngine(*r.Pandoc.Engine); err != nil {
			return fmt.Errorf("pandoc.engine: %w", err)
		}
	}
	if r.Pandoc.MainFont != nil && strings.TrimSpace(*r.Pandoc.MainFont) == "" {
		return fmt.Errorf("pandoc.main-font: %w", errEmptyValue)
	}
	return nil
}

// Resolve merges raw over the built-in defaults, field by field.
// A nil raw resolves to defaults. The output name falls back to bookTitle
// and always ends in ".pdf"; with neither available Resolve fails with a
// *ConfigError.
func Resolve(raw *RawConfig, bookTitle string) (ResolvedConfig, error) {
	if raw == nil {
		raw = &RawConfig{}
	}

	name := strings.TrimSpace(bookTitle)
	if raw.OutputName != nil {
		name = strings.TrimSpace(*raw.OutputName)
	}
	if name == "" {
		return ResolvedConfig{}, &ConfigError{
			Field:  "output-name",
			Reason: "not set and the book has no title to derive it from",
		}
	}

	resolved := ResolvedConfig{
		OutputName: fileutil.WithExtension(name, pdfExtension),
		Engine:     DefaultEngine,
		Format:     FormatOptions{MainFont: DefaultMainFont},
	}

	if raw.TitleHeading != nil {
		resolved.TitleHeading = *raw.TitleHeading
	}
	if raw.Ignores != nil {
		resolved.Ignores = slices.Clone(raw.Ignores)
	}

	if p := raw.Pandoc; p != nil {
		if p.Engine != nil {
			engine, err := ParseEngine(*p.Engine)
			if err != nil {
				return ResolvedConfig{}, &ConfigError{Field: "pandoc.engine", Reason: err.Error(), Err: err}
			}
			resolved.Engine = engine
		}
		if p.MainFont != nil {
			resolved.Format.MainFont = *p.MainFont
		}
		if p.DocumentClass != nil {
			resolved.DocumentClass = *p.DocumentClass
		}
	}

	return resolved, nil
}

// fontIsExplicit reports whether raw sets the main font.
func (r *RawConfig) fontIsExplicit() bool {
	return r != nil && r.Pandoc != nil && r.Pandoc.MainFont != nil
}
