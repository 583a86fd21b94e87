// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Reference is a bibliographic source record.
type Reference struct {
	// RefID is the stable identifier citations point at.
	RefID string `json:"ref_id" yaml:"ref_id"`

	// Authors lists authors as "Surname Initials" (e.g. "Silva J"), in source order.
	Authors []string `json:"authors" yaml:"authors"`

	Title   string `json:"title" yaml:"title"`
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Year is the publication year; zero when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Pages  string `json:"pages,omitempty" yaml:"pages,omitempty"`
	DOI    string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// LegalNumber identifies legislation or regulatory acts (e.g. "Portaria 1.234/2019").
	LegalNumber string `json:"legal_number,omitempty" yaml:"legal_number,omitempty"`
}

// Citation is a usage-site pointer to a Reference. Many citations may point
// at the same reference.
type Citation struct {
	RefID string `json:"ref_id" yaml:"ref_id"`
	Page  string `json:"page,omitempty" yaml:"page,omitempty"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`

	// EvidenceLevel grades the cited claim. Nil when ungraded.
	EvidenceLevel *EvidenceLevelCode `json:"evidence_level,omitempty" yaml:"evidence_level,omitempty"`

	Limitations         []string `json:"limitations,omitempty" yaml:"limitations,omitempty"`
	ConflictsOfInterest string   `json:"conflicts_of_interest,omitempty" yaml:"conflicts_of_interest,omitempty"`
}
