// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestEntityRelationsOrder(t *testing.T) {
	e := Entity{Links: map[RelationKind][]string{
		"zeta":          {"x"},
		RelHasScreening: {"s"},
		"alpha":         {"y"},
		RelTreatedBy:    {"m"},
	}}
	assert.Equal(t, []RelationKind{RelTreatedBy, RelHasScreening, "alpha", "zeta"}, e.Relations())
	assert.Empty(t, Entity{}.Relations())
}

func TestKindAndRelationValidity(t *testing.T) {
	for _, k := range AllKinds {
		assert.True(t, k.IsValid(), k)
	}
	assert.False(t, EntityKind("vaccine").IsValid())

	for _, r := range AllRelations {
		assert.True(t, r.IsKnown(), r)
	}
	assert.False(t, RelationKind("causes").IsKnown())
}

func TestEntityRef(t *testing.T) {
	e := Entity{ID: "dm2", Kind: KindDisease}
	assert.Equal(t, EntityRef{Kind: KindDisease, ID: "dm2"}, e.Ref())
	assert.Equal(t, "disease/dm2", e.Ref().String())
}

func TestEvidenceLevelCodeYAML(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want EvidenceLevelCode
	}{
		{"bare code", "evidence_level: IIa\n", EvidenceLevelCode{Code: "IIa"}},
		{"tagged", "evidence_level:\n  scheme: letter\n  code: GPP\n", EvidenceLevelCode{Scheme: SchemeLetter, Code: "GPP"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Citation
			require.NoError(t, yaml.Unmarshal([]byte("ref_id: r1\n"+tt.yaml), &c))
			require.NotNil(t, c.EvidenceLevel)
			assert.Equal(t, tt.want, *c.EvidenceLevel)
		})
	}
}
