// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/screenref/pkg/types"
)

// maxListedAuthors is the author count above which a reference list entry
// is truncated with "et al.".
const maxListedAuthors = 6

// NumberedReference is one entry of a render's reference list.
type NumberedReference struct {
	Number    int             `json:"number" yaml:"number"`
	RefID     string          `json:"ref_id" yaml:"ref_id"`
	Reference types.Reference `json:"reference" yaml:"reference"`

	// Missing is set when RefID is not registered.
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Bibliography returns the references numbered so far in number order.
func (c *Context) Bibliography(reg Registry) []NumberedReference {
	out := make([]NumberedReference, len(c.order))
	for i, id := range c.order {
		ref, ok := reg.Reference(id)
		out[i] = NumberedReference{Number: i + 1, RefID: id, Reference: ref, Missing: !ok}
	}
	return out
}

// FormatReference renders a reference list entry in Vancouver style, e.g.
// "Silva J, Costa M. Title. Journal. 2020;12:100-5. doi:10.1000/x".
func FormatReference(ref types.Reference) string {
	var sentences []string
	if a := listAuthors(ref.Authors); a != "" {
		sentences = append(sentences, a)
	}
	if ref.LegalNumber != "" {
		sentences = append(sentences, ref.LegalNumber)
	}
	if ref.Title != "" {
		sentences = append(sentences, ref.Title)
	}

	var pub strings.Builder
	if ref.Year > 0 {
		pub.WriteString(strconv.Itoa(ref.Year))
	}
	if ref.Volume != "" {
		pub.WriteString(";" + ref.Volume)
	}
	if ref.Pages != "" {
		pub.WriteString(":" + ref.Pages)
	}
	if ref.Journal != "" {
		sentences = append(sentences, ref.Journal)
	}
	if pub.Len() > 0 {
		sentences = append(sentences, pub.String())
	}

	for i, s := range sentences {
		sentences[i] = strings.TrimRight(strings.TrimSpace(s), ".")
	}
	out := strings.Join(sentences, ". ")
	if out != "" {
		out += "."
	}
	if ref.DOI != "" {
		out = strings.TrimSpace(out + " doi:" + ref.DOI)
	}
	return out
}

func listAuthors(authors []string) string {
	if len(authors) > maxListedAuthors {
		return strings.Join(authors[:maxListedAuthors], ", ") + ", et al"
	}
	return strings.Join(authors, ", ")
}

// GenerateBibTeX produces BibTeX entries keyed by reference id. References
// with a journal become @article; everything else, legislation included,
// becomes @misc.
func GenerateBibTeX(refs []types.Reference) string {
	var b strings.Builder
	for _, r := range refs {
		entryType := "misc"
		if r.Journal != "" {
			entryType = "article"
		}
		fmt.Fprintf(&b, "@%s{%s,\n", entryType, r.RefID)
		fmt.Fprintf(&b, "  title = {%s},\n", r.Title)
		if len(r.Authors) > 0 {
			fmt.Fprintf(&b, "  author = {%s},\n", strings.Join(r.Authors, " and "))
		}
		if r.Year > 0 {
			fmt.Fprintf(&b, "  year = {%d},\n", r.Year)
		}
		if r.Journal != "" {
			fmt.Fprintf(&b, "  journal = {%s},\n", r.Journal)
		}
		if r.Volume != "" {
			fmt.Fprintf(&b, "  volume = {%s},\n", r.Volume)
		}
		if r.Pages != "" {
			fmt.Fprintf(&b, "  pages = {%s},\n", strings.ReplaceAll(r.Pages, "-", "--"))
		}
		if r.DOI != "" {
			fmt.Fprintf(&b, "  doi = {%s},\n", r.DOI)
		}
		if r.LegalNumber != "" {
			fmt.Fprintf(&b, "  note = {%s},\n", r.LegalNumber)
		}
		fmt.Fprintf(&b, "}\n\n")
	}
	return b.String()
}
