// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xref

import "github.com/pdiddy/screenref/pkg/types"

// relationDef fixes the endpoints of a relation and its canonical inverse.
type relationDef struct {
	source  types.EntityKind
	target  types.EntityKind
	inverse types.RelationKind
}

var relations = map[types.RelationKind]relationDef{
	types.RelTreatedBy:     {types.KindDisease, types.KindMedication, types.RelTreats},
	types.RelTreats:        {types.KindMedication, types.KindDisease, types.RelTreatedBy},
	types.RelHasProtocol:   {types.KindDisease, types.KindProtocol, types.RelProtocolFor},
	types.RelProtocolFor:   {types.KindProtocol, types.KindDisease, types.RelHasProtocol},
	types.RelHasCalculator: {types.KindDisease, types.KindCalculator, types.RelCalculatorFor},
	types.RelCalculatorFor: {types.KindCalculator, types.KindDisease, types.RelHasCalculator},
	types.RelHasScreening:  {types.KindDisease, types.KindScreening, types.RelScreeningFor},
	types.RelScreeningFor:  {types.KindScreening, types.KindDisease, types.RelHasScreening},
	types.RelRelatedTo:     {types.KindDisease, types.KindDisease, types.RelRelatedTo},
}

// Inverse returns the canonical inverse of r. The bool is false for a
// relation outside the enumeration.
func Inverse(r types.RelationKind) (types.RelationKind, bool) {
	def, ok := relations[r]
	return def.inverse, ok
}

// Endpoints returns the entity kinds a relation links from and to.
func Endpoints(r types.RelationKind) (source, target types.EntityKind, ok bool) {
	def, ok := relations[r]
	return def.source, def.target, ok
}

// RelationsFrom lists the relations whose source is kind, in canonical order.
func RelationsFrom(kind types.EntityKind) []types.RelationKind {
	var out []types.RelationKind
	for _, r := range types.AllRelations {
		if relations[r].source == kind {
			out = append(out, r)
		}
	}
	return out
}
