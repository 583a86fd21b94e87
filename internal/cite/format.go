// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/screenref/internal/evidence"
	"github.com/pdiddy/screenref/pkg/types"
)

// Style selects the inline citation rendering.
type Style string

const (
	StyleNumeric    Style = "numeric"
	StyleAuthorYear Style = "author-year"
)

const (
	// NoAuthor stands in for a reference without authors.
	NoAuthor = "Anon."

	// NoDate stands in for a reference without a year.
	NoDate = "n.d."

	// minRun is the shortest run of consecutive numbers collapsed to a range.
	minRun = 3
)

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleNumeric, StyleAuthorYear:
		return Style(s), nil
	}
	return "", fmt.Errorf("unknown citation style %q (want %q or %q)", s, StyleNumeric, StyleAuthorYear)
}

// Format renders citations inline. Numeric style numbers every resolvable
// citation through ctx and renders the sorted numbers as "[1-3,7]".
// Citations whose reference is not registered are omitted. Author-year style
// renders only the first citation as "(SURNAME, YEAR)", or "" when its
// reference is not registered. An empty list renders as "".
func Format(ctx *Context, reg Registry, citations []types.Citation, style Style) string {
	if len(citations) == 0 {
		return ""
	}

	switch style {
	case StyleNumeric:
		var nums []int
		for _, c := range citations {
			if _, ok := reg.Reference(c.RefID); !ok {
				continue
			}
			nums = append(nums, ctx.NumberFor(c.RefID))
		}
		return FormatNumbers(nums)

	case StyleAuthorYear:
		ref, ok := reg.Reference(citations[0].RefID)
		if !ok {
			return ""
		}
		surname := NoAuthor
		if len(ref.Authors) > 0 {
			surname = Surname(ref.Authors[0])
		}
		year := NoDate
		if ref.Year > 0 {
			year = strconv.Itoa(ref.Year)
		}
		return fmt.Sprintf("(%s, %s)", strings.ToUpper(surname), year)
	}
	return ""
}

// FormatNumbers renders citation numbers in ascending order inside brackets,
// collapsing runs of three or more consecutive numbers to "first-last".
// Duplicates are dropped. No numbers render as "".
func FormatNumbers(nums []int) string {
	if len(nums) == 0 {
		return ""
	}
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)

	uniq := sorted[:1]
	for _, n := range sorted[1:] {
		if n != uniq[len(uniq)-1] {
			uniq = append(uniq, n)
		}
	}

	var parts []string
	for i := 0; i < len(uniq); {
		j := i
		for j+1 < len(uniq) && uniq[j+1] == uniq[j]+1 {
			j++
		}
		if j-i+1 >= minRun {
			parts = append(parts, fmt.Sprintf("%d-%d", uniq[i], uniq[j]))
		} else {
			for k := i; k <= j; k++ {
				parts = append(parts, strconv.Itoa(uniq[k]))
			}
		}
		i = j + 1
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Surname extracts the family name from an author string written as
// "Silva J" or "Silva, J.".
func Surname(author string) string {
	author = strings.TrimSpace(author)
	if i := strings.IndexByte(author, ','); i >= 0 {
		return strings.TrimSpace(author[:i])
	}
	if f := strings.Fields(author); len(f) > 0 {
		return f[0]
	}
	return ""
}

// AuthorLabel renders an author list for running text: "Silva",
// "Silva and Costa", or "Silva et al.". No authors renders as NoAuthor.
func AuthorLabel(authors []string) string {
	switch len(authors) {
	case 0:
		return NoAuthor
	case 1:
		return Surname(authors[0])
	case 2:
		return Surname(authors[0]) + " and " + Surname(authors[1])
	default:
		return Surname(authors[0]) + " et al."
	}
}

// Detail renders the usage-site annotations of a citation: page, evidence
// badge, note, limitations and conflicts of interest, joined by "; ".
func Detail(c types.Citation) string {
	var parts []string
	if c.Page != "" {
		parts = append(parts, "p. "+c.Page)
	}
	if c.EvidenceLevel != nil {
		parts = append(parts, evidence.Classify(*c.EvidenceLevel).Text)
	}
	if c.Note != "" {
		parts = append(parts, c.Note)
	}
	if len(c.Limitations) > 0 {
		parts = append(parts, "limitations: "+strings.Join(c.Limitations, ", "))
	}
	if c.ConflictsOfInterest != "" {
		parts = append(parts, "conflicts of interest: "+c.ConflictsOfInterest)
	}
	return strings.Join(parts, "; ")
}
