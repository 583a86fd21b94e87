// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/screenref/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want types.EvidenceLevelCode
	}{
		{"Ia", types.EvidenceLevelCode{Scheme: types.SchemeNumeral, Code: "Ia"}},
		{" iib ", types.EvidenceLevelCode{Scheme: types.SchemeNumeral, Code: "IIb"}},
		{"III", types.EvidenceLevelCode{Scheme: types.SchemeNumeral, Code: "III"}},
		{"IV", types.EvidenceLevelCode{Scheme: types.SchemeNumeral, Code: "IV"}},
		{"1a", types.EvidenceLevelCode{Scheme: types.SchemeNumeral, Code: "Ia"}},
		{"2B", types.EvidenceLevelCode{Scheme: types.SchemeNumeral, Code: "IIb"}},
		{"4", types.EvidenceLevelCode{Scheme: types.SchemeNumeral, Code: "IV"}},
		{"A", types.EvidenceLevelCode{Scheme: types.SchemeLetter, Code: "A"}},
		{"d", types.EvidenceLevelCode{Scheme: types.SchemeLetter, Code: "D"}},
		{"gpp", types.EvidenceLevelCode{Scheme: types.SchemeLetter, Code: "GPP"}},
		{"Level 5", types.EvidenceLevelCode{Scheme: types.SchemeUnknown, Code: "Level5"}},
		{"", types.EvidenceLevelCode{Scheme: types.SchemeUnknown, Code: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestClassifyEveryCode(t *testing.T) {
	for _, scheme := range Schemes() {
		codes := Codes(scheme)
		assert.NotEmpty(t, codes, "scheme %q", scheme)
		for _, code := range codes {
			tagged := Classify(types.EvidenceLevelCode{Scheme: scheme, Code: code})
			assert.NotEqual(t, Unclassified, tagged, "%s/%s", scheme, code)
			assert.NotEmpty(t, tagged.Text, "%s/%s", scheme, code)
			assert.NotEmpty(t, tagged.Label, "%s/%s", scheme, code)
			assert.NotEmpty(t, tagged.ColorClass, "%s/%s", scheme, code)

			// Untagged codes disambiguate to the same badge.
			assert.Equal(t, tagged, ClassifyString(code), "%s/%s untagged", scheme, code)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code types.EvidenceLevelCode
		want Badge
	}{
		{
			name: "numeral high",
			code: types.EvidenceLevelCode{Code: "Ib"},
			want: Badge{
				Text:       "Level Ib",
				Label:      "Evidence from at least one randomized controlled trial",
				ColorClass: "evidence-high",
				Strength:   StrengthHigh,
			},
		},
		{
			name: "letter grade",
			code: types.EvidenceLevelCode{Scheme: types.SchemeLetter, Code: "c"},
			want: Badge{
				Text:       "Grade C",
				Label:      "Recommendation based on lower-quality studies or extrapolation from grade B evidence",
				ColorClass: "evidence-low",
				Strength:   StrengthLow,
			},
		},
		{
			name: "good practice point",
			code: types.EvidenceLevelCode{Code: "GPP"},
			want: Badge{
				Text:       "GPP",
				Label:      "Good practice point based on the clinical experience of the guideline group",
				ColorClass: "evidence-practice",
				Strength:   StrengthPractice,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.code))
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	tests := []types.EvidenceLevelCode{
		{Code: ""},
		{Code: "Level 5"},
		{Code: "E"},
		{Code: "IIIa"},
		{Code: "I"},
		{Scheme: types.SchemeNumeral, Code: "A"},
		{Scheme: types.SchemeLetter, Code: "Ia"},
		{Scheme: "grade", Code: "high"},
	}
	for _, code := range tests {
		assert.Equal(t, Unclassified, Classify(code), "%+v", code)
	}
	assert.Equal(t, "evidence-unclassified", Unclassified.ColorClass)
}

func TestCodesUnknownScheme(t *testing.T) {
	assert.Nil(t, Codes("grade"))

	codes := Codes(types.SchemeLetter)
	codes[0] = "changed"
	assert.Equal(t, "A", Codes(types.SchemeLetter)[0])
}
