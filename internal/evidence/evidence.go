// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evidence maps evidence-grading codes to badge descriptors.
//
// Two vocabularies are supported, each tagged by types.EvidenceScheme:
// the numeral-letter hierarchy of levels of evidence (Ia, Ib, IIa, IIb, III,
// IV) and the letter-grade hierarchy of recommendation strength (A, B, C, D,
// GPP). A code that carries no scheme is assigned one by its shape.
package evidence

import (
	"regexp"
	"strings"

	"github.com/pdiddy/screenref/pkg/types"
)

// Strength is the severity bucket a badge is drawn in.
type Strength string

const (
	StrengthHigh     Strength = "high"
	StrengthModerate Strength = "moderate"
	StrengthLow      Strength = "low"
	StrengthVeryLow  Strength = "very-low"
	StrengthPractice Strength = "practice"
	StrengthUnknown  Strength = "unclassified"
)

// ColorClass returns the display class for s.
func (s Strength) ColorClass() string {
	return "evidence-" + string(s)
}

// Badge describes how an evidence code is displayed.
type Badge struct {
	Text       string   `json:"text" yaml:"text"`
	Label      string   `json:"label" yaml:"label"`
	ColorClass string   `json:"color_class" yaml:"color_class"`
	Strength   Strength `json:"strength" yaml:"strength"`
}

// Unclassified is returned for codes no vocabulary recognizes.
var Unclassified = Badge{
	Text:       "?",
	Label:      "Unclassified evidence level",
	ColorClass: StrengthUnknown.ColorClass(),
	Strength:   StrengthUnknown,
}

type grade struct {
	label    string
	strength Strength
}

// vocabulary is one closed grading code space.
type vocabulary struct {
	scheme types.EvidenceScheme
	// normalize returns the canonical spelling of raw if it has this
	// vocabulary's shape. Shape alone does not imply the code is graded.
	normalize func(raw string) (string, bool)
	badge     func(code string) string
	order     []string
	grades    map[string]grade
}

var (
	// numeralRe matches roman levels I-IV with an optional a/b sublevel.
	numeralRe = regexp.MustCompile(`^(IV|I{1,3})([AB])?$`)

	// arabicRe matches the arabic spelling of the same levels (1a, 2b, 3, 4).
	arabicRe = regexp.MustCompile(`^([1-4])([AB])?$`)
)

var romans = map[string]string{"1": "I", "2": "II", "3": "III", "4": "IV"}

func normalizeNumeral(raw string) (string, bool) {
	s := strings.ToUpper(raw)
	if m := arabicRe.FindStringSubmatch(s); m != nil {
		s = romans[m[1]] + m[2]
	}
	m := numeralRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1] + strings.ToLower(m[2]), true
}

func normalizeLetter(raw string) (string, bool) {
	s := strings.ToUpper(raw)
	if s == "GPP" {
		return s, true
	}
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return s, true
	}
	return "", false
}

var vocabularies = []vocabulary{
	{
		scheme:    types.SchemeNumeral,
		normalize: normalizeNumeral,
		badge:     func(code string) string { return "Level " + code },
		order:     []string{"Ia", "Ib", "IIa", "IIb", "III", "IV"},
		grades: map[string]grade{
			"Ia":  {"Evidence from meta-analysis of randomized controlled trials", StrengthHigh},
			"Ib":  {"Evidence from at least one randomized controlled trial", StrengthHigh},
			"IIa": {"Evidence from at least one controlled study without randomization", StrengthModerate},
			"IIb": {"Evidence from at least one other type of quasi-experimental study", StrengthModerate},
			"III": {"Evidence from non-experimental descriptive studies", StrengthLow},
			"IV":  {"Evidence from expert committee reports or clinical experience of respected authorities", StrengthVeryLow},
		},
	},
	{
		scheme:    types.SchemeLetter,
		normalize: normalizeLetter,
		badge: func(code string) string {
			if code == "GPP" {
				return code
			}
			return "Grade " + code
		},
		order: []string{"A", "B", "C", "D", "GPP"},
		grades: map[string]grade{
			"A":   {"Strong recommendation based on consistent high-quality studies", StrengthHigh},
			"B":   {"Recommendation based on well-conducted studies or extrapolation from grade A evidence", StrengthModerate},
			"C":   {"Recommendation based on lower-quality studies or extrapolation from grade B evidence", StrengthLow},
			"D":   {"Recommendation based on expert opinion or inconsistent studies", StrengthVeryLow},
			"GPP": {"Good practice point based on the clinical experience of the guideline group", StrengthPractice},
		},
	},
}

func lookup(scheme types.EvidenceScheme) (vocabulary, bool) {
	for _, v := range vocabularies {
		if v.scheme == scheme {
			return v, true
		}
	}
	return vocabulary{}, false
}

// Parse tags a raw code with its vocabulary, normalizing case and spacing.
// Codes matching no vocabulary's shape keep their trimmed text and
// SchemeUnknown.
func Parse(raw string) types.EvidenceLevelCode {
	s := strings.Join(strings.Fields(raw), "")
	for _, v := range vocabularies {
		if code, ok := v.normalize(s); ok {
			return types.EvidenceLevelCode{Scheme: v.scheme, Code: code}
		}
	}
	return types.EvidenceLevelCode{Scheme: types.SchemeUnknown, Code: s}
}

// Classify returns the badge for code. An untagged code is parsed first; a
// tagged code is checked against its own vocabulary only. Anything not
// graded in that vocabulary yields Unclassified.
func Classify(code types.EvidenceLevelCode) Badge {
	if code.Scheme == types.SchemeUnknown {
		code = Parse(code.Code)
		if code.Scheme == types.SchemeUnknown {
			return Unclassified
		}
	}

	v, ok := lookup(code.Scheme)
	if !ok {
		return Unclassified
	}
	canonical, ok := v.normalize(strings.Join(strings.Fields(code.Code), ""))
	if !ok {
		return Unclassified
	}
	g, ok := v.grades[canonical]
	if !ok {
		return Unclassified
	}
	return Badge{
		Text:       v.badge(canonical),
		Label:      g.label,
		ColorClass: g.strength.ColorClass(),
		Strength:   g.strength,
	}
}

// ClassifyString parses and classifies a raw code.
func ClassifyString(raw string) Badge {
	return Classify(Parse(raw))
}

// Codes lists every graded code of a vocabulary in rank order.
func Codes(scheme types.EvidenceScheme) []string {
	v, ok := lookup(scheme)
	if !ok {
		return nil
	}
	return append([]string(nil), v.order...)
}

// Schemes lists the supported vocabularies.
func Schemes() []types.EvidenceScheme {
	out := make([]types.EvidenceScheme, len(vocabularies))
	for i, v := range vocabularies {
		out[i] = v.scheme
	}
	return out
}
