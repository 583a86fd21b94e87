// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"strconv"

	"github.com/zeebo/blake3"

	"github.com/pdiddy/screenref/pkg/types"
)

// fingerprint hashes the catalog content in canonical order. Every field is
// length-prefixed so adjacent values cannot run together.
func fingerprint(c *Catalog) string {
	h := blake3.New()

	for _, kind := range types.AllKinds {
		for _, e := range c.entities[kind] {
			writeField(h, "entity")
			writeField(h, string(kind))
			writeField(h, string(e.Kind))
			writeField(h, e.ID)
			writeField(h, e.Title)
			writeField(h, e.Body)
			for _, rel := range e.Relations() {
				writeField(h, string(rel))
				writeList(h, e.Links[rel])
			}
			writeCount(h, len(e.Citations))
			for _, cit := range e.Citations {
				writeField(h, "cite")
				writeField(h, cit.RefID)
				writeField(h, cit.Page)
				writeField(h, cit.Note)
				if cit.EvidenceLevel != nil {
					writeField(h, "graded")
					writeField(h, string(cit.EvidenceLevel.Scheme))
					writeField(h, cit.EvidenceLevel.Code)
				} else {
					writeField(h, "ungraded")
				}
				writeList(h, cit.Limitations)
				writeField(h, cit.ConflictsOfInterest)
			}
		}
	}

	for _, r := range c.refs {
		writeField(h, "ref")
		writeField(h, r.RefID)
		writeList(h, r.Authors)
		writeField(h, r.Title)
		writeField(h, r.Journal)
		writeField(h, strconv.Itoa(r.Year))
		writeField(h, r.Volume)
		writeField(h, r.Pages)
		writeField(h, r.DOI)
		writeField(h, r.LegalNumber)
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, s string) {
	writeCount(h, len(s))
	h.Write([]byte(s))
}

// writeList prefixes the values with their count so an empty list and a
// missing one hash alike, but ["a", "b"] and ["a"] followed by "b" do not.
func writeList(h hash.Hash, values []string) {
	writeCount(h, len(values))
	for _, v := range values {
		writeField(h, v)
	}
}

func writeCount(h hash.Hash, n int) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(n))
	h.Write(b[:])
}
