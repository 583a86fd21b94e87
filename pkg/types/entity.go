// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared records for the screening reference catalog:
// entities and their declared links, bibliographic references, usage-site
// citations, and evidence-grading codes.
//
// Records are loaded once from static content and never mutated afterwards.
package types

import "sort"

// EntityKind names one of the fixed entity collections.
type EntityKind string

const (
	KindDisease    EntityKind = "disease"
	KindMedication EntityKind = "medication"
	KindProtocol   EntityKind = "protocol"
	KindCalculator EntityKind = "calculator"
	KindScreening  EntityKind = "screening"
)

// AllKinds lists every entity kind in canonical iteration order.
var AllKinds = []EntityKind{
	KindDisease,
	KindMedication,
	KindProtocol,
	KindCalculator,
	KindScreening,
}

// IsValid reports whether k is one of the known entity kinds.
func (k EntityKind) IsValid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// RelationKind names a directional link type between two entities. Each
// relation has exactly one canonical inverse; see internal/xref.
type RelationKind string

const (
	RelTreatedBy     RelationKind = "treatedBy"
	RelTreats        RelationKind = "treats"
	RelHasProtocol   RelationKind = "hasProtocol"
	RelProtocolFor   RelationKind = "protocolFor"
	RelHasCalculator RelationKind = "hasCalculator"
	RelCalculatorFor RelationKind = "calculatorFor"
	RelHasScreening  RelationKind = "hasScreening"
	RelScreeningFor  RelationKind = "screeningFor"
	RelRelatedTo     RelationKind = "relatedTo"
)

// AllRelations lists every relation kind in canonical iteration order.
var AllRelations = []RelationKind{
	RelTreatedBy,
	RelTreats,
	RelHasProtocol,
	RelProtocolFor,
	RelHasCalculator,
	RelCalculatorFor,
	RelHasScreening,
	RelScreeningFor,
	RelRelatedTo,
}

// EntityRef identifies an entity. IDs are unique only within a kind.
type EntityRef struct {
	Kind EntityKind `json:"kind" yaml:"kind"`
	ID   string     `json:"id" yaml:"id"`
}

// String renders the ref as kind/id.
func (r EntityRef) String() string {
	return string(r.Kind) + "/" + r.ID
}

// Entity is one domain record with its authored forward links.
type Entity struct {
	// ID is unique within Kind.
	ID string `json:"id" yaml:"id"`

	// Kind is set by the loader from the collection the record came from.
	Kind EntityKind `json:"kind" yaml:"kind,omitempty"`

	// Title is the display name.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Body is the authored page text. It may carry inline [refId] or
	// [refId1; refId2] citation markers.
	Body string `json:"body,omitempty" yaml:"body,omitempty"`

	// Links holds the declared targets per relation, in authored order.
	// Only one side of a relation needs to be authored.
	Links map[RelationKind][]string `json:"links,omitempty" yaml:"links,omitempty"`

	// Citations annotate the entity's content.
	Citations []Citation `json:"citations,omitempty" yaml:"citations,omitempty"`
}

// Ref returns the entity's identifying reference.
func (e Entity) Ref() EntityRef {
	return EntityRef{Kind: e.Kind, ID: e.ID}
}

// Relations returns the relations e declares links for: known relations in
// canonical order, then any unrecognized relation names sorted.
func (e Entity) Relations() []RelationKind {
	rels := make([]RelationKind, 0, len(e.Links))
	for _, r := range AllRelations {
		if _, ok := e.Links[r]; ok {
			rels = append(rels, r)
		}
	}
	var unknown []RelationKind
	for r := range e.Links {
		if !r.IsKnown() {
			unknown = append(unknown, r)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return append(rels, unknown...)
}

// IsKnown reports whether r is part of the closed relation enumeration.
func (r RelationKind) IsKnown() bool {
	for _, known := range AllRelations {
		if r == known {
			return true
		}
	}
	return false
}
