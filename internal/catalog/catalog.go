// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the entity collections and the reference registry.
// A Catalog is built once, validated for duplicate identifiers, and is
// read-only afterwards; it may be shared across concurrent renders.
package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/screenref/pkg/types"
)

// ErrDuplicateID reports a content authoring defect: two records of the same
// kind share an identifier.
var ErrDuplicateID = errors.New("duplicate identifier")

// DuplicateIDError names the offending record. Kind is empty for references.
type DuplicateIDError struct {
	Kind types.EntityKind
	ID   string
}

func (e *DuplicateIDError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("duplicate reference id %q", e.ID)
	}
	return fmt.Sprintf("duplicate %s id %q", e.Kind, e.ID)
}

// Unwrap lets errors.Is match ErrDuplicateID.
func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

// Catalog is the Entity Store and Reference Registry.
type Catalog struct {
	entities    map[types.EntityKind][]types.Entity
	byRef       map[types.EntityRef]int
	refs        []types.Reference
	refByID     map[string]int
	fingerprint string
}

type options struct {
	log *logrus.Logger
}

// Option configures catalog construction.
type Option func(*options)

// WithLogger sets the logger used while loading. The default discards output.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = logrus.New()
		o.log.SetOutput(io.Discard)
	}
	return o
}

// New builds a Catalog from already-parsed records. Entities keep their
// relative order within each kind. A duplicate entity id within a kind, or a
// duplicate reference id, returns a *DuplicateIDError.
func New(entities []types.Entity, refs []types.Reference) (*Catalog, error) {
	c := &Catalog{
		entities: make(map[types.EntityKind][]types.Entity),
		byRef:    make(map[types.EntityRef]int, len(entities)),
		refByID:  make(map[string]int, len(refs)),
	}

	for _, e := range entities {
		if !e.Kind.IsValid() {
			return nil, fmt.Errorf("entity %q: unknown kind %q", e.ID, e.Kind)
		}
		if e.ID == "" {
			return nil, fmt.Errorf("%s entity with empty id", e.Kind)
		}
		ref := e.Ref()
		if _, dup := c.byRef[ref]; dup {
			return nil, &DuplicateIDError{Kind: e.Kind, ID: e.ID}
		}
		c.byRef[ref] = len(c.entities[e.Kind])
		c.entities[e.Kind] = append(c.entities[e.Kind], cloneEntity(e))
	}

	for _, r := range refs {
		if r.RefID == "" {
			return nil, fmt.Errorf("reference with empty id (title %q)", r.Title)
		}
		if _, dup := c.refByID[r.RefID]; dup {
			return nil, &DuplicateIDError{ID: r.RefID}
		}
		c.refByID[r.RefID] = len(c.refs)
		c.refs = append(c.refs, r)
	}

	c.fingerprint = fingerprint(c)
	return c, nil
}

func cloneEntity(e types.Entity) types.Entity {
	if e.Links != nil {
		links := make(map[types.RelationKind][]string, len(e.Links))
		for rel, targets := range e.Links {
			links[rel] = append([]string(nil), targets...)
		}
		e.Links = links
	}
	e.Citations = append([]types.Citation(nil), e.Citations...)
	return e
}

// Entity returns the entity of the given kind and id. The bool is false when
// no such entity exists.
func (c *Catalog) Entity(kind types.EntityKind, id string) (types.Entity, bool) {
	i, ok := c.byRef[types.EntityRef{Kind: kind, ID: id}]
	if !ok {
		return types.Entity{}, false
	}
	return c.entities[kind][i], true
}

// List returns the entities of a kind in source order. The returned slice
// must not be modified.
func (c *Catalog) List(kind types.EntityKind) []types.Entity {
	return c.entities[kind]
}

// Len returns the total number of entities across all kinds.
func (c *Catalog) Len() int {
	return len(c.byRef)
}

// Reference returns the reference with the given id. The bool is false when
// the id is not registered.
func (c *Catalog) Reference(refID string) (types.Reference, bool) {
	i, ok := c.refByID[refID]
	if !ok {
		return types.Reference{}, false
	}
	return c.refs[i], true
}

// References returns every reference in source order. The returned slice
// must not be modified.
func (c *Catalog) References() []types.Reference {
	return c.refs
}

// Fingerprint identifies the content set. Two catalogs built from identical
// content share a fingerprint.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}
