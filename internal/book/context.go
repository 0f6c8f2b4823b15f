// Package book reads the render context that mdBook pipes to a renderer
// backend and exposes the book tree and configuration tree it carries.
package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrPayload is returned when the render context cannot be decoded.
var ErrPayload = errors.New("invalid render context payload")

// MaxPayloadSize limits how much of stdin is read (default 256MB).
var MaxPayloadSize int64 = 256 << 20

// RenderContext is the payload handed to a renderer on stdin.
type RenderContext struct {
	Version     string `json:"version"`
	Root        string `json:"root"`
	Book        Book   `json:"book"`
	Config      Tree   `json:"config"`
	Destination string `json:"destination"`
}

// Book holds the ordered top-level items of the summary.
type Book struct {
	Sections []Item `json:"sections"`
}

// ReadContext decodes a render context from r.
func ReadContext(r io.Reader) (*RenderContext, error) {
	dec := json.NewDecoder(io.LimitReader(r, MaxPayloadSize))

	var ctx RenderContext
	if err := dec.Decode(&ctx); err != nil {
		if errors.Is(err, ErrPayload) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPayload, err)
	}
	if ctx.Config == nil {
		ctx.Config = Tree{}
	}
	return &ctx, nil
}

// Title returns the configured book title, or "" when unset.
func (c *RenderContext) Title() string {
	return c.Config.String("book.title")
}
