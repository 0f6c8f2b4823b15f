package mdbookpdf

import (
	"slices"
	"strings"

	"github.com/alnah/mdbook-pdf/internal/book"
)

// AggregateOptions controls how the book tree is flattened.
type AggregateOptions struct {
	// BookTitle, when set, is emitted as a heading before all content.
	BookTitle string

	// Ignores lists chapter names or paths to leave out, sub-chapters included.
	Ignores []string
}

// Aggregate flattens items into a single Markdown document.
//
// Chapters appear in depth-first order, with their text copied verbatim and
// no separator added between them. Draft chapters (no path) contribute no
// text, but their sub-chapters are still visited. Part titles become
// level-1 headings.
func Aggregate(items []book.Item, opts AggregateOptions) string {
	var b strings.Builder

	if opts.BookTitle != "" {
		writeHeading(&b, opts.BookTitle)
	}

	book.Walk(items, func(item book.Item) bool {
		switch item.Kind {
		case book.PartTitleItem:
			writeHeading(&b, item.PartTitle)
		case book.ChapterItem:
			ch := item.Chapter
			if ch == nil || isIgnored(ch, opts.Ignores) {
				return false
			}
			if !ch.IsDraft() {
				b.WriteString(ch.Content)
			}
		case book.SeparatorItem:
		}
		return true
	})

	return b.String()
}

// writeHeading starts a new line if needed, then writes "# title" and a blank line.
func writeHeading(b *strings.Builder, title string) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
}

func isIgnored(ch *book.Chapter, ignores []string) bool {
	if len(ignores) == 0 {
		return false
	}
	if slices.Contains(ignores, ch.Name) {
		return true
	}
	return ch.Path != nil && slices.Contains(ignores, *ch.Path)
}
