// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate gathers the recoverable content defects of a catalog into
// one build-time report: dangling links, citations of unregistered
// references, inline citation keys with no reference, and evidence codes no
// vocabulary grades.
package validate

import (
	"github.com/pdiddy/screenref/internal/catalog"
	"github.com/pdiddy/screenref/internal/cite"
	"github.com/pdiddy/screenref/internal/evidence"
	"github.com/pdiddy/screenref/internal/xref"
	"github.com/pdiddy/screenref/pkg/types"
)

// CitationIssue locates a problem citation.
type CitationIssue struct {
	Entity types.EntityRef `json:"entity" yaml:"entity"`
	RefID  string          `json:"ref_id" yaml:"ref_id"`
	Code   string          `json:"code,omitempty" yaml:"code,omitempty"`
}

// Report lists every defect found.
type Report struct {
	Unresolved           []xref.UnresolvedLink `json:"unresolved_links" yaml:"unresolved_links"`
	MissingReferences    []CitationIssue       `json:"missing_references" yaml:"missing_references"`
	UnknownKeys          []CitationIssue       `json:"unknown_keys" yaml:"unknown_keys"`
	UnclassifiedEvidence []CitationIssue       `json:"unclassified_evidence" yaml:"unclassified_evidence"`
	UnusedReferences     []string              `json:"unused_references" yaml:"unused_references"`
}

// Failed reports whether the content has defects that block a release.
// Unused references are informational only.
func (r Report) Failed() bool {
	return len(r.Unresolved) > 0 || len(r.MissingReferences) > 0 ||
		len(r.UnknownKeys) > 0 || len(r.UnclassifiedEvidence) > 0
}

// Check inspects cat and its index. Entities are visited kind by kind in
// source order; each finding appears once per citation site. Unknown inline
// keys are reported once per entity body, sorted.
func Check(cat *catalog.Catalog, idx *xref.Index) Report {
	r := Report{Unresolved: idx.Unresolved()}

	used := make(map[string]bool)
	for _, kind := range types.AllKinds {
		for _, e := range cat.List(kind) {
			for _, c := range e.Citations {
				used[c.RefID] = true
				if _, ok := cat.Reference(c.RefID); !ok {
					r.MissingReferences = append(r.MissingReferences, CitationIssue{Entity: e.Ref(), RefID: c.RefID})
				}
				if c.EvidenceLevel != nil && evidence.Classify(*c.EvidenceLevel) == evidence.Unclassified {
					r.UnclassifiedEvidence = append(r.UnclassifiedEvidence, CitationIssue{
						Entity: e.Ref(), RefID: c.RefID, Code: c.EvidenceLevel.Code,
					})
				}
			}
			for _, key := range cite.ScanKeys(e.Body) {
				used[key] = true
			}
			for _, key := range cite.ValidateKeys(e.Body, cat) {
				r.UnknownKeys = append(r.UnknownKeys, CitationIssue{Entity: e.Ref(), RefID: key})
			}
		}
	}

	for _, ref := range cat.References() {
		if !used[ref.RefID] {
			r.UnusedReferences = append(r.UnusedReferences, ref.RefID)
		}
	}
	return r
}
