// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xref derives bidirectional cross-references between catalog
// entities. Content authors declare one side of a relation; the index adds
// the canonical inverse so both endpoints see each other.
package xref

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/screenref/internal/catalog"
	"github.com/pdiddy/screenref/pkg/types"
)

// Reason explains why a declared link was left out of the index.
type Reason string

const (
	ReasonMissingTarget   Reason = "missing-target"
	ReasonUnknownRelation Reason = "unknown-relation"
	ReasonSourceKind      Reason = "source-kind"
)

// UnresolvedLink is a declared link that could not be indexed.
type UnresolvedLink struct {
	Source          types.EntityRef    `json:"source" yaml:"source"`
	Relation        types.RelationKind `json:"relation" yaml:"relation"`
	MissingTargetID string             `json:"missing_target_id" yaml:"missing_target_id"`
	Reason          Reason             `json:"reason" yaml:"reason"`
}

// Edge is one indexed (entity, relation, neighbor) tuple. Derived is true
// when the tuple exists only because the neighbor declared the inverse.
type Edge struct {
	From     types.EntityRef
	Relation types.RelationKind
	To       types.EntityRef
	Derived  bool
}

// neighborSet keeps neighbors in first-insertion order without duplicates.
type neighborSet struct {
	order   []types.EntityRef
	derived map[types.EntityRef]bool
}

func (s *neighborSet) add(ref types.EntityRef, derived bool) {
	if was, ok := s.derived[ref]; ok {
		// A declared edge outranks a derived one.
		if was && !derived {
			s.derived[ref] = false
		}
		return
	}
	s.derived[ref] = derived
	s.order = append(s.order, ref)
}

// Index is the immutable cross-reference index over one Catalog. It is safe
// for concurrent reads.
type Index struct {
	cat        *catalog.Catalog
	adj        map[types.EntityRef]map[types.RelationKind]*neighborSet
	unresolved []UnresolvedLink
}

type options struct {
	log *logrus.Logger
}

// Option configures index construction.
type Option func(*options)

// WithLogger sets the logger used during builds. The default discards output.
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

// Build derives the index from every declared link in cat. Entities are
// visited kind by kind in source order, links in relation order then target
// order. Each resolvable link is recorded under its relation and, from the
// target's side, under the inverse relation. Links that cannot be resolved
// are collected in Unresolved instead.
func Build(cat *catalog.Catalog, opts ...Option) *Index {
	o := buildOptions(opts)
	idx := &Index{
		cat: cat,
		adj: make(map[types.EntityRef]map[types.RelationKind]*neighborSet),
	}

	reported := make(map[UnresolvedLink]bool)
	report := func(u UnresolvedLink) {
		if reported[u] {
			return
		}
		reported[u] = true
		idx.unresolved = append(idx.unresolved, u)
	}

	for _, kind := range types.AllKinds {
		for _, e := range cat.List(kind) {
			src := e.Ref()
			for _, rel := range e.Relations() {
				def, known := relations[rel]
				for _, targetID := range e.Links[rel] {
					u := UnresolvedLink{Source: src, Relation: rel, MissingTargetID: targetID}
					switch {
					case !known:
						u.Reason = ReasonUnknownRelation
						report(u)
						continue
					case def.source != kind:
						u.Reason = ReasonSourceKind
						report(u)
						continue
					}
					if _, ok := cat.Entity(def.target, targetID); !ok {
						u.Reason = ReasonMissingTarget
						report(u)
						continue
					}
					dst := types.EntityRef{Kind: def.target, ID: targetID}
					idx.add(src, rel, dst, false)
					idx.add(dst, def.inverse, src, true)
				}
			}
		}
	}

	entry := o.log.WithFields(logrus.Fields{
		"entities":   cat.Len(),
		"unresolved": len(idx.unresolved),
	})
	if len(idx.unresolved) > 0 {
		entry.Warn("cross-reference index built with unresolved links")
	} else {
		entry.Debug("cross-reference index built")
	}
	return idx
}

func (idx *Index) add(from types.EntityRef, rel types.RelationKind, to types.EntityRef, derived bool) {
	byRel, ok := idx.adj[from]
	if !ok {
		byRel = make(map[types.RelationKind]*neighborSet)
		idx.adj[from] = byRel
	}
	set, ok := byRel[rel]
	if !ok {
		set = &neighborSet{derived: make(map[types.EntityRef]bool)}
		byRel[rel] = set
	}
	set.add(to, derived)
}

// Neighbors returns the entities linked to ref under rel, whichever side
// declared the link, without duplicates and in first-insertion order. An
// unknown entity or relation yields an empty result.
func (idx *Index) Neighbors(ref types.EntityRef, rel types.RelationKind) []types.Entity {
	set := idx.adj[ref][rel]
	if set == nil {
		return nil
	}
	out := make([]types.Entity, 0, len(set.order))
	for _, n := range set.order {
		if e, ok := idx.cat.Entity(n.Kind, n.ID); ok {
			out = append(out, e)
		}
	}
	return out
}

// Related returns every non-empty neighbor set of ref keyed by relation.
func (idx *Index) Related(ref types.EntityRef) map[types.RelationKind][]types.Entity {
	out := make(map[types.RelationKind][]types.Entity)
	for rel := range idx.adj[ref] {
		if ns := idx.Neighbors(ref, rel); len(ns) > 0 {
			out[rel] = ns
		}
	}
	return out
}

// Edges returns every indexed tuple in canonical order: entities by kind and
// source order, relations in enumeration order, neighbors in index order.
func (idx *Index) Edges() []Edge {
	var out []Edge
	for _, kind := range types.AllKinds {
		for _, e := range idx.cat.List(kind) {
			from := e.Ref()
			byRel := idx.adj[from]
			for _, rel := range types.AllRelations {
				set := byRel[rel]
				if set == nil {
					continue
				}
				for _, to := range set.order {
					out = append(out, Edge{From: from, Relation: rel, To: to, Derived: set.derived[to]})
				}
			}
		}
	}
	return out
}

// Unresolved returns the declared links excluded from the index, each once,
// in declaration order.
func (idx *Index) Unresolved() []UnresolvedLink {
	return append([]UnresolvedLink(nil), idx.unresolved...)
}

// Catalog returns the catalog the index was built from.
func (idx *Index) Catalog() *catalog.Catalog {
	return idx.cat
}
