// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/screenref/pkg/types"
)

// registry is an in-memory Registry for tests.
type registry map[string]types.Reference

func (r registry) Reference(id string) (types.Reference, bool) {
	ref, ok := r[id]
	return ref, ok
}

func testRegistry() registry {
	reg := registry{}
	for _, ref := range []types.Reference{
		{RefID: "silva2020", Authors: []string{"Silva J"}, Title: "Rastreamento", Year: 2020},
		{RefID: "silva-costa2020", Authors: []string{"Silva J", "Costa M"}, Year: 2020},
		{RefID: "abc2019", Authors: []string{"A", "B", "C"}, Year: 2019},
		{RefID: "anon2018", Year: 2018},
		{RefID: "undated1", Authors: []string{"Souza, P."}},
	} {
		reg[ref.RefID] = ref
	}
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"} {
		reg[id] = types.Reference{RefID: id}
	}
	return reg
}

func cites(ids ...string) []types.Citation {
	out := make([]types.Citation, len(ids))
	for i, id := range ids {
		out[i] = types.Citation{RefID: id}
	}
	return out
}

func TestNumberForFirstAppearance(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, 1, ctx.NumberFor("zzz-very-long-identifier-2024"))
	assert.Equal(t, 2, ctx.NumberFor("a1"))
	assert.Equal(t, 1, ctx.NumberFor("zzz-very-long-identifier-2024"))
	assert.Equal(t, 3, ctx.NumberFor("m5"))
	assert.Equal(t, 2, ctx.NumberFor("a1"))

	assert.Equal(t, []string{"zzz-very-long-identifier-2024", "a1", "m5"}, ctx.Seen())
	assert.Equal(t, 3, ctx.Len())

	n, ok := ctx.Lookup("m5")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = ctx.Lookup("never")
	assert.False(t, ok)
	assert.Equal(t, 3, ctx.Len(), "Lookup must not assign")
}

func TestContextsAreIndependent(t *testing.T) {
	page1 := NewContext()
	page2 := NewContext()
	page1.NumberFor("a1")
	page1.NumberFor("b2")

	assert.Equal(t, 1, page2.NumberFor("b2"))
	assert.Equal(t, 2, page1.NumberFor("b2"))
	assert.NotEqual(t, page1.ID(), page2.ID())
}

func TestNumbers(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, []int{1, 2, 1, 3}, ctx.Numbers(cites("x1", "y1", "x1", "z1")))
}

func TestFormatNumbers(t *testing.T) {
	tests := []struct {
		nums []int
		want string
	}{
		{[]int{1, 2, 3}, "[1-3]"},
		{[]int{1, 3}, "[1,3]"},
		{[]int{5}, "[5]"},
		{nil, ""},
		{[]int{1, 2}, "[1,2]"},
		{[]int{7, 3, 1, 2}, "[1-3,7]"},
		{[]int{4, 5, 6, 7, 9, 10, 12}, "[4-7,9,10,12]"},
		{[]int{2, 2, 3, 1}, "[1-3]"},
		{[]int{1, 2, 3, 5, 6, 7}, "[1-3,5-7]"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumbers(tt.nums))
		})
	}
}

func TestFormatNumeric(t *testing.T) {
	reg := testRegistry()
	ctx := NewContext()

	assert.Equal(t, "[1-3]", Format(ctx, reg, cites("r1", "r2", "r3"), StyleNumeric))
	assert.Equal(t, "[1,4]", Format(ctx, reg, cites("r4", "r1"), StyleNumeric))
	assert.Equal(t, "[2,5]", Format(ctx, reg, cites("r5", "r2", "r5"), StyleNumeric))

	// Unknown references are omitted and consume no number.
	assert.Equal(t, "[6]", Format(ctx, reg, cites("ghost1", "r6"), StyleNumeric))
	assert.Equal(t, "", Format(ctx, reg, cites("ghost1"), StyleNumeric))
	_, ok := ctx.Lookup("ghost1")
	assert.False(t, ok)

	assert.Equal(t, "", Format(ctx, reg, nil, StyleNumeric))
}

func TestFormatAuthorYear(t *testing.T) {
	reg := testRegistry()
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"single author", []string{"silva2020"}, "(SILVA, 2020)"},
		{"two authors keyed by first", []string{"silva-costa2020"}, "(SILVA, 2020)"},
		{"three authors", []string{"abc2019"}, "(A, 2019)"},
		{"no authors", []string{"anon2018"}, "(ANON., 2018)"},
		{"no year, comma author", []string{"undated1"}, "(SOUZA, n.d.)"},
		{"only first citation used", []string{"abc2019", "silva2020"}, "(A, 2019)"},
		{"unknown reference", []string{"ghost1", "silva2020"}, ""},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext()
			assert.Equal(t, tt.want, Format(ctx, reg, cites(tt.ids...), StyleAuthorYear))
			assert.Zero(t, ctx.Len(), "author-year does not number")
		})
	}
}

func TestFormatUnknownStyle(t *testing.T) {
	assert.Equal(t, "", Format(NewContext(), testRegistry(), cites("r1"), "harvard"))
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("author-year")
	require.NoError(t, err)
	assert.Equal(t, StyleAuthorYear, s)

	_, err = ParseStyle("apa")
	assert.Error(t, err)
}

func TestAuthorLabel(t *testing.T) {
	assert.Equal(t, NoAuthor, AuthorLabel(nil))
	assert.Equal(t, "Silva", AuthorLabel([]string{"Silva J"}))
	assert.Equal(t, "Silva and Costa", AuthorLabel([]string{"Silva J", "Costa M"}))
	assert.Equal(t, "A et al.", AuthorLabel([]string{"A", "B", "C"}))
}

func TestSurname(t *testing.T) {
	assert.Equal(t, "Silva", Surname("Silva J"))
	assert.Equal(t, "Souza", Surname(" Souza, P. "))
	assert.Equal(t, "WHO", Surname("WHO"))
	assert.Equal(t, "", Surname("  "))
}

func TestDetail(t *testing.T) {
	c := types.Citation{
		RefID:               "r1",
		Page:                "S20",
		Note:                "adults 35-70",
		EvidenceLevel:       &types.EvidenceLevelCode{Code: "B"},
		Limitations:         []string{"observational", "single centre"},
		ConflictsOfInterest: "none declared",
	}
	assert.Equal(t,
		"p. S20; Grade B; adults 35-70; limitations: observational, single centre; conflicts of interest: none declared",
		Detail(c))
	assert.Equal(t, "", Detail(types.Citation{RefID: "r1"}))
	assert.Equal(t, "?", Detail(types.Citation{EvidenceLevel: &types.EvidenceLevelCode{Code: "Z9"}}))
}

func TestBibliography(t *testing.T) {
	reg := testRegistry()
	ctx := NewContext()
	ctx.NumberFor("silva2020")
	ctx.NumberFor("ghost1")

	bib := ctx.Bibliography(reg)
	require.Len(t, bib, 2)
	assert.Equal(t, 1, bib[0].Number)
	assert.Equal(t, "Rastreamento", bib[0].Reference.Title)
	assert.False(t, bib[0].Missing)
	assert.Equal(t, NumberedReference{Number: 2, RefID: "ghost1", Missing: true}, bib[1])
}

func TestFormatReference(t *testing.T) {
	tests := []struct {
		name string
		ref  types.Reference
		want string
	}{
		{
			name: "journal article",
			ref: types.Reference{
				Authors: []string{"Silva J", "Costa M"},
				Title:   "Rastreamento do diabetes.",
				Journal: "Rev Saude Publica",
				Year:    2020, Volume: "54", Pages: "12-8",
				DOI: "10.1000/rsp.2020",
			},
			want: "Silva J, Costa M. Rastreamento do diabetes. Rev Saude Publica. 2020;54:12-8. doi:10.1000/rsp.2020",
		},
		{
			name: "legislation",
			ref: types.Reference{
				Authors:     []string{"Brasil"},
				LegalNumber: "Portaria 1.234/2019",
				Title:       "Aprova o protocolo clínico",
				Year:        2019,
			},
			want: "Brasil. Portaria 1.234/2019. Aprova o protocolo clínico. 2019.",
		},
		{
			name: "many authors truncated",
			ref: types.Reference{
				Authors: []string{"A", "B", "C", "D", "E", "F", "G"},
				Title:   "T",
			},
			want: "A, B, C, D, E, F, et al. T.",
		},
		{
			name: "empty",
			ref:  types.Reference{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatReference(tt.ref))
		})
	}
}

func TestGenerateBibTeX(t *testing.T) {
	out := GenerateBibTeX([]types.Reference{
		{RefID: "silva2020", Authors: []string{"Silva J", "Costa M"}, Title: "Rastreamento",
			Journal: "Rev Saude Publica", Year: 2020, Pages: "12-8", DOI: "10.1000/x"},
		{RefID: "portaria2019", Title: "Protocolo", LegalNumber: "Portaria 1.234/2019"},
	})

	assert.Contains(t, out, "@article{silva2020,\n")
	assert.Contains(t, out, "  author = {Silva J and Costa M},\n")
	assert.Contains(t, out, "  pages = {12--8},\n")
	assert.Contains(t, out, "  doi = {10.1000/x},\n")
	assert.Contains(t, out, "@misc{portaria2019,\n")
	assert.Contains(t, out, "  note = {Portaria 1.234/2019},\n")
	assert.NotContains(t, out, "year = {0}")
	assert.Equal(t, 2, strings.Count(out, "}\n\n"))
}

func TestScanKeys(t *testing.T) {
	text := "Screen adults [ada2024]. See [uspstf2021; ada2024] and [the guide](http://x) or [1]."
	assert.Equal(t, []string{"ada2024", "uspstf2021", "ada2024"}, ScanKeys(text))
	assert.Empty(t, ScanKeys("no markers here"))
}

func TestValidateKeys(t *testing.T) {
	reg := testRegistry()
	text := "[silva2020] [zz9; ghost1] [ghost1] [r1]"
	assert.Equal(t, []string{"ghost1", "zz9"}, ValidateKeys(text, reg))
	assert.Empty(t, ValidateKeys("[silva2020]", reg))
}

func TestRenderInline(t *testing.T) {
	reg := testRegistry()
	ctx := NewContext()
	text := "Annual HbA1c [r2]. Fasting glucose [r1; r2; r3]. Pending [ghost1]. Link [site](x)."
	assert.Equal(t,
		"Annual HbA1c [1]. Fasting glucose [1-3]. Pending [ghost1]. Link [site](x).",
		RenderInline(ctx, reg, text, StyleNumeric))

	assert.Equal(t, "Per (SILVA, 2020).",
		RenderInline(NewContext(), reg, "Per [silva2020].", StyleAuthorYear))
}
