package book

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Tree is a book configuration as a generic nested map, keyed the way
// book.toml is (e.g. "output" -> "pdf" -> "output-name").
type Tree map[string]any

// Get looks up a dotted key such as "output.pdf".
// It returns false when any segment is missing or not a table.
func (t Tree) Get(key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	var cur any = map[string]any(t)
	for _, part := range strings.Split(key, ".") {
		table, ok := asTable(cur)
		if !ok {
			return nil, false
		}
		cur, ok = table[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at key, or "" if it is absent or not a string.
func (t Tree) String(key string) string {
	v, ok := t.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// LoadTree reads a book.toml file into a Tree.
func LoadTree(path string) (Tree, error) {
	var tree map[string]any
	if _, err := toml.DecodeFile(path, &tree); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if tree == nil {
		tree = map[string]any{}
	}
	return Tree(tree), nil
}

func asTable(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Tree:
		return m, true
	default:
		return nil, false
	}
}
