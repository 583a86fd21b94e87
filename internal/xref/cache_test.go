// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/screenref/internal/catalog"
	"github.com/pdiddy/screenref/pkg/types"
)

func TestCacheMemoizesByContent(t *testing.T) {
	cache, err := NewCache(2)
	require.NoError(t, err)

	a := mustCatalog(t, disease("dm2", nil))
	first := cache.Get(a)
	assert.Same(t, first, cache.Get(a))

	// Identical content loaded separately reuses the index.
	a2 := mustCatalog(t, disease("dm2", nil))
	assert.Same(t, first, cache.Get(a2))
	assert.Equal(t, 1, cache.Len())

	// Changed content rebuilds.
	b := mustCatalog(t, disease("dm2", nil), disease("hta", nil))
	second := cache.Get(b)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, cache.Len())
}

func TestCacheEviction(t *testing.T) {
	cache, err := NewCache(1)
	require.NoError(t, err)

	a := mustCatalog(t, disease("dm2", nil))
	b := mustCatalog(t, types.Entity{ID: "m", Kind: types.KindMedication})

	first := cache.Get(a)
	cache.Get(b)
	assert.Equal(t, 1, cache.Len())
	assert.NotSame(t, first, cache.Get(a))
}

func TestNewCacheDefaultSize(t *testing.T) {
	cache, err := NewCache(0)
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheRebuildsWhenCitationDetailsChange(t *testing.T) {
	cache, err := NewCache(2)
	require.NoError(t, err)

	withCitation := func(c types.Citation) *catalog.Catalog {
		return mustCatalog(t,
			disease("dm2", links{types.RelTreatedBy: {"metformin"}}),
			types.Entity{ID: "metformin", Kind: types.KindMedication, Citations: []types.Citation{c}},
		)
	}
	v1 := withCitation(types.Citation{RefID: "r1", ConflictsOfInterest: "none declared"})
	v2 := withCitation(types.Citation{
		RefID:               "r1",
		ConflictsOfInterest: "funded by manufacturer",
		Limitations:         []string{"single centre"},
	})

	cache.Get(v1)
	got := cache.Get(v2).Neighbors(ref(types.KindDisease, "dm2"), types.RelTreatedBy)
	require.Len(t, got, 1)
	require.Len(t, got[0].Citations, 1)
	assert.Equal(t, "funded by manufacturer", got[0].Citations[0].ConflictsOfInterest)
	assert.Equal(t, []string{"single centre"}, got[0].Citations[0].Limitations)
	assert.Equal(t, 2, cache.Len())
}
