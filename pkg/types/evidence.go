// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EvidenceScheme tags the grading vocabulary an evidence code belongs to.
type EvidenceScheme string

const (
	// SchemeNumeral is the numeral-letter hierarchy (Ia, Ib, IIa, IIb, III, IV).
	SchemeNumeral EvidenceScheme = "numeral"

	// SchemeLetter is the letter-grade hierarchy (A, B, C, D, GPP).
	SchemeLetter EvidenceScheme = "letter"

	// SchemeUnknown marks a code whose vocabulary could not be determined.
	SchemeUnknown EvidenceScheme = ""
)

// EvidenceLevelCode is a grading code tagged with its vocabulary. Content may
// leave Scheme empty; the evidence classifier then infers it from the code.
type EvidenceLevelCode struct {
	Scheme EvidenceScheme `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Code   string         `json:"code" yaml:"code"`
}

// UnmarshalYAML accepts either a bare code ("Ib") or a mapping with scheme
// and code.
func (c *EvidenceLevelCode) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err == nil {
		*c = EvidenceLevelCode{Code: raw}
		return nil
	}
	type plain EvidenceLevelCode
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*c = EvidenceLevelCode(p)
	return nil
}
