// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/screenref/pkg/types"
)

// markerPattern matches inline citation markers: [key] or [key1; key2].
var markerPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// ScanKeys returns the citation keys of every inline marker in text, in
// order of appearance. Repeated keys are repeated.
func ScanKeys(text string) []string {
	var keys []string
	for _, m := range markerPattern.FindAllStringSubmatch(text, -1) {
		if parts, ok := markerKeys(m[1]); ok {
			keys = append(keys, parts...)
		}
	}
	return keys
}

// ValidateKeys returns the keys used in text that reg does not know, sorted
// and without duplicates.
func ValidateKeys(text string, reg Registry) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, key := range ScanKeys(text) {
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := reg.Reference(key); !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// RenderInline replaces every citation marker in text with its formatted
// citation, numbering through ctx. Markers that resolve to nothing are left
// as written so authoring errors stay visible.
func RenderInline(ctx *Context, reg Registry, text string, style Style) string {
	return markerPattern.ReplaceAllStringFunc(text, func(marker string) string {
		keys, ok := markerKeys(marker[1 : len(marker)-1])
		if !ok {
			return marker
		}
		citations := make([]types.Citation, len(keys))
		for i, k := range keys {
			citations[i] = types.Citation{RefID: k}
		}
		if out := Format(ctx, reg, citations, style); out != "" {
			return out
		}
		return marker
	})
}

// markerKeys splits the inside of a marker on semicolons. It reports false
// when any part is not a citation key, e.g. for Markdown link text.
func markerKeys(inner string) ([]string, bool) {
	var keys []string
	for _, p := range strings.Split(inner, ";") {
		key := strings.TrimSpace(p)
		if key == "" {
			continue
		}
		if !isCitationKey(key) {
			return nil, false
		}
		keys = append(keys, key)
	}
	return keys, len(keys) > 0
}

// isCitationKey reports whether s looks like a reference id: letters, digits,
// hyphens and underscores, with at least one letter and one digit.
func isCitationKey(s string) bool {
	hasLetter := false
	hasDigit := false
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '-', c == '_':
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}
