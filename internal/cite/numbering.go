// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite numbers, formats and validates bibliographic citations.
//
// Numbering is scoped to a Context: create one per independent render (a
// page or a document) and discard it afterwards. A Context is not safe for
// concurrent use and must never be shared between renders.
package cite

import (
	"github.com/google/uuid"

	"github.com/pdiddy/screenref/pkg/types"
)

// Registry resolves reference ids. *catalog.Catalog implements it.
type Registry interface {
	Reference(refID string) (types.Reference, bool)
}

// Context assigns display numbers to reference ids in order of first
// appearance within one render.
type Context struct {
	id      string
	numbers map[string]int
	order   []string
}

// NewContext returns an empty numbering context.
func NewContext() *Context {
	return &Context{
		id:      uuid.NewString(),
		numbers: make(map[string]int),
	}
}

// ID identifies the context in logs.
func (c *Context) ID() string {
	return c.id
}

// NumberFor returns the display number of refID, assigning the next number
// if the id has not been seen in this context. Numbers start at 1.
func (c *Context) NumberFor(refID string) int {
	if n, ok := c.numbers[refID]; ok {
		return n
	}
	c.order = append(c.order, refID)
	n := len(c.order)
	c.numbers[refID] = n
	return n
}

// Lookup returns the number already assigned to refID without assigning one.
func (c *Context) Lookup(refID string) (int, bool) {
	n, ok := c.numbers[refID]
	return n, ok
}

// Numbers assigns numbers to each citation in order and returns them.
func (c *Context) Numbers(citations []types.Citation) []int {
	out := make([]int, len(citations))
	for i, cit := range citations {
		out[i] = c.NumberFor(cit.RefID)
	}
	return out
}

// Seen returns the numbered reference ids; the id at index i has number i+1.
func (c *Context) Seen() []string {
	return append([]string(nil), c.order...)
}

// Len returns how many distinct ids have been numbered.
func (c *Context) Len() int {
	return len(c.order)
}
