// Package mdbookpdf is an mdBook renderer backend that produces a single PDF
// through pandoc.
//
// # Quick Start
//
// mdBook pipes a render context to the backend on stdin. Read it, then
// render:
//
//	rc, err := mdbookpdf.ReadContext(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := mdbookpdf.Render(ctx, rc, mdbookpdf.NewPandoc(), logger); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Rendering follows these stages:
//
//  1. Decode the [output.pdf] table (DecodeRawConfig)
//  2. Merge it over built-in defaults (Resolve)
//  3. Flatten the chapter tree into one Markdown document (Aggregate)
//  4. Describe the pandoc run (Build), mapping the font option to the
//     variable the engine understands (EngineKind.FontVariable)
//  5. Run pandoc in the destination directory (Pandoc.Execute)
//
// Prepare runs stages 1 to 4 without executing anything, which is what the
// CLI's --dry-run uses.
//
// # Configuration
//
// Recognized keys in book.toml:
//
//	[output.pdf]
//	output-name = "guide"        # default: book title; ".pdf" is appended
//	title-heading = true         # prepend "# <book title>"
//	ignores = ["Changelog"]      # chapter names or paths to leave out
//
//	[output.pdf.pandoc]
//	engine = "xelatex"           # default: pdflatex
//	main-font = "Noto Serif"     # default: lmodern
//	document-class = "book"      # optional
//
// A table that does not match this shape is reported and ignored: the book
// is rendered with defaults.
//
// # Errors
//
// Sentinel errors identify failure classes and work with errors.Is:
//
//   - ErrConfig: the output name cannot be derived (no title, no output-name)
//   - ErrExternalTool: pandoc failed or could not be started
//   - ErrMalformedConfig, ErrUnsupportedOption: warnings, logged only
package mdbookpdf
