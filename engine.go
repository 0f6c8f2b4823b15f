package mdbookpdf

import (
	"fmt"
	"strings"
)

// EngineKind is a PDF engine pandoc can drive.
type EngineKind int

// Supported engines. Append new engines at the end and extend every
// switch in this file.
const (
	EnginePDFLaTeX EngineKind = iota
	EngineLuaLaTeX
	EngineXeLaTeX
	EngineLatexmk
	EngineTectonic
	EngineConTeXt
	EngineTypst
	EngineWkhtmltopdf
	EngineWeasyPrint
	EnginePagedJS
	EnginePrince
	EnginePDFRoff

	engineCount
)

// engineNames are the identifiers accepted by pandoc's --pdf-engine.
var engineNames = [engineCount]string{
	EnginePDFLaTeX:    "pdflatex",
	EngineLuaLaTeX:    "lualatex",
	EngineXeLaTeX:     "xelatex",
	EngineLatexmk:     "latexmk",
	EngineTectonic:    "tectonic",
	EngineConTeXt:     "context",
	EngineTypst:       "typst",
	EngineWkhtmltopdf: "wkhtmltopdf",
	EngineWeasyPrint:  "weasyprint",
	EnginePagedJS:     "pagedjs-cli",
	EnginePrince:      "prince",
	EnginePDFRoff:     "pdfroff",
}

// Engines returns every supported engine in declaration order.
func Engines() []EngineKind {
	engines := make([]EngineKind, 0, engineCount)
	for e := EngineKind(0); e < engineCount; e++ {
		engines = append(engines, e)
	}
	return engines
}

// ParseEngine maps a configuration identifier to an engine.
// Matching ignores case and surrounding whitespace.
func ParseEngine(s string) (EngineKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for e, n := range engineNames {
		if n == name {
			return EngineKind(e), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownEngine, s, strings.Join(engineNames[:], ", "))
}

func (e EngineKind) String() string {
	if e < 0 || e >= engineCount {
		return fmt.Sprintf("EngineKind(%d)", int(e))
	}
	return engineNames[e]
}

// FontVariable returns the template variable that selects the body font
// for this engine. Engines styled by CSS or roff macros have none.
func (e EngineKind) FontVariable() (string, bool) {
	switch e {
	case EnginePDFLaTeX, EngineLatexmk:
		return "fontfamily", true
	case EngineLuaLaTeX, EngineXeLaTeX, EngineTectonic, EngineConTeXt, EngineTypst:
		return "mainfont", true
	case EngineWkhtmltopdf, EngineWeasyPrint, EnginePagedJS, EnginePrince, EnginePDFRoff:
		return "", false
	}
	return "", false
}

// OutputFormat returns the intermediate markup pandoc writes for this engine.
func (e EngineKind) OutputFormat() string {
	switch e {
	case EnginePDFLaTeX, EngineLuaLaTeX, EngineXeLaTeX, EngineLatexmk, EngineTectonic:
		return "latex"
	case EngineConTeXt:
		return "context"
	case EngineTypst:
		return "typst"
	case EngineWkhtmltopdf, EngineWeasyPrint, EnginePagedJS, EnginePrince:
		return "html5"
	case EnginePDFRoff:
		return "ms"
	}
	return "latex"
}
