// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// maxExtensionLength bounds what counts as a file extension in WithExtension.
const maxExtensionLength = 5

// WithExtension returns name with its extension replaced by ext (".pdf").
// A trailing ".something" only counts as an extension when it is short,
// alphanumeric and contains a letter, so titles such as "Go 1.22" or
// "Notes v2. Draft" keep their dots and simply gain ext.
//
// Examples:
//   - "My Book"      -> "My Book.pdf"
//   - "guide.tex"    -> "guide.pdf"
//   - "guide.pdf"    -> "guide.pdf"
//   - "Version 1.22" -> "Version 1.22.pdf"
func WithExtension(name, ext string) string {
	if cur := filepath.Ext(name); isExtension(cur) {
		name = strings.TrimSuffix(name, cur)
	}
	return name + ext
}

func isExtension(ext string) bool {
	if len(ext) < 2 || len(ext)-1 > maxExtensionLength {
		return false
	}
	hasLetter := false
	for _, r := range ext[1:] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return hasLetter
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// RemoveIfExists deletes path, treating a missing file as success.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
