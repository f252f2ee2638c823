// internal/catalog/filter_test.go
package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFilterStateKeyOrderIndependent(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()

	a := FilterState{
		CategoryIDs:    []uuid.UUID{catA, catB},
		Origins:        []string{"Rajasthan", "Gujarat"},
		Certifications: []string{"FSSAI", "APEDA"},
	}
	b := FilterState{
		CategoryIDs:    []uuid.UUID{catB, catA},
		Origins:        []string{"Gujarat", "Rajasthan"},
		Certifications: []string{"APEDA", "FSSAI"},
	}

	assert.Equal(t, a.Key(), b.Key())
}

func TestFilterStateKeyIgnoresPresentation(t *testing.T) {
	base := FilterState{
		Search:  "onion",
		Origins: []string{"Rajasthan"},
	}

	sorted := base
	sorted.SortBy = SortNameDesc
	listed := base
	listed.ViewMode = ViewModeList

	assert.Equal(t, base.Key(), sorted.Key())
	assert.Equal(t, base.Key(), listed.Key())
}

func TestFilterStateKeyNormalizesSearch(t *testing.T) {
	a := FilterState{Search: "  Cumin Seeds "}
	b := FilterState{Search: "cumin seeds"}

	assert.Equal(t, a.Key(), b.Key())
}

func TestFilterStateKeyDistinguishesSelections(t *testing.T) {
	scope := uuid.New()

	base := FilterState{}
	withSearch := FilterState{Search: "onion"}
	withOrigin := FilterState{Origins: []string{"Rajasthan"}}
	withCert := FilterState{Certifications: []string{"FSSAI"}}
	withScope := FilterState{CategoryScope: &scope}
	withLimit := FilterState{Limit: 4}

	keys := []string{
		base.Key(), withSearch.Key(), withOrigin.Key(),
		withCert.Key(), withScope.Key(), withLimit.Key(),
	}

	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key: %s", k)
		seen[k] = true
	}
}

func TestFilterStateClear(t *testing.T) {
	scope := uuid.New()
	f := FilterState{
		Search:         "onion",
		CategoryIDs:    []uuid.UUID{uuid.New()},
		Origins:        []string{"Rajasthan"},
		Certifications: []string{"FSSAI"},
		SortBy:         SortNameDesc,
		ViewMode:       ViewModeList,
		CategoryScope:  &scope,
		Limit:          4,
	}

	f.Clear()

	assert.Empty(t, f.Search)
	assert.Empty(t, f.CategoryIDs)
	assert.Empty(t, f.Origins)
	assert.Empty(t, f.Certifications)
	assert.Nil(t, f.PriceMin)
	assert.Nil(t, f.PriceMax)
	assert.Equal(t, SortNewest, f.SortBy)
	assert.Equal(t, ViewModeGrid, f.ViewMode)

	// The embedding page's scope and cap survive a clear
	assert.Equal(t, &scope, f.CategoryScope)
	assert.Equal(t, 4, f.Limit)
}
