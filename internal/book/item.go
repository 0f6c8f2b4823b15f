package book

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ItemKind distinguishes the entries of a book's summary.
type ItemKind int

const (
	ChapterItem ItemKind = iota
	SeparatorItem
	PartTitleItem
)

// Item is a single entry of the book tree.
// Exactly one of Chapter or PartTitle is meaningful, depending on Kind.
type Item struct {
	Kind      ItemKind
	Chapter   *Chapter
	PartTitle string
}

// Chapter is a content unit. Draft chapters have a nil Path.
type Chapter struct {
	Name        string   `json:"name"`
	Content     string   `json:"content"`
	Number      []int    `json:"number"`
	SubItems    []Item   `json:"sub_items"`
	Path        *string  `json:"path"`
	SourcePath  *string  `json:"source_path"`
	ParentNames []string `json:"parent_names"`
}

// IsDraft reports whether the chapter has no backing source file.
func (c *Chapter) IsDraft() bool {
	return c.Path == nil || *c.Path == ""
}

// UnmarshalJSON decodes the externally tagged representation used by mdBook:
// "Separator", {"PartTitle": "..."} or {"Chapter": {...}}.
func (it *Item) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		if tag != "Separator" {
			return fmt.Errorf("%w: unknown book item %q", ErrPayload, tag)
		}
		*it = Item{Kind: SeparatorItem}
		return nil
	}

	var tagged struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}

	switch {
	case tagged.Chapter != nil:
		*it = Item{Kind: ChapterItem, Chapter: tagged.Chapter}
	case tagged.PartTitle != nil:
		*it = Item{Kind: PartTitleItem, PartTitle: *tagged.PartTitle}
	default:
		return fmt.Errorf("%w: book item has no recognized variant", ErrPayload)
	}
	return nil
}

// Walk visits items depth-first, preserving sibling order.
// Sub-items of a chapter are visited only when visit returns true for it.
func Walk(items []Item, visit func(Item) bool) {
	for _, item := range items {
		descend := visit(item)
		if descend && item.Kind == ChapterItem && item.Chapter != nil {
			Walk(item.Chapter.SubItems, visit)
		}
	}
}
