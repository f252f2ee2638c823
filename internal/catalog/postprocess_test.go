// internal/catalog/postprocess_test.go
package catalog

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

func testProduct(name string, certs []string, created time.Time) models.Product {
	return models.Product{
		BaseModel:      models.BaseModel{CreatedAt: created},
		Name:           name,
		Certifications: pq.StringArray(certs),
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestPostProcessCertificationOr(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		testProduct("P1", []string{"FSSAI"}, now),
		testProduct("P2", []string{"APEDA"}, now),
		testProduct("P3", []string{"FSSAI", "APEDA"}, now),
		testProduct("P4", nil, now),
	}

	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{"empty selection keeps everything", nil, []string{"P1", "P2", "P3", "P4"}},
		{"single label", []string{"FSSAI"}, []string{"P1", "P3"}},
		{"two labels union", []string{"FSSAI", "APEDA"}, []string{"P1", "P2", "P3"}},
		{"unknown label drops everything", []string{"Organic"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PostProcess(FilterState{Certifications: tt.selected}, products)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestPostProcessSortByName(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		testProduct("Banana Powder", nil, now),
		testProduct("apple Chips", nil, now),
		testProduct("Cherry Tomatoes", nil, now),
	}

	asc := PostProcess(FilterState{SortBy: SortNameAsc}, products)
	assert.Equal(t, []string{"apple Chips", "Banana Powder", "Cherry Tomatoes"}, names(asc))

	desc := PostProcess(FilterState{SortBy: SortNameDesc}, products)
	assert.Equal(t, []string{"Cherry Tomatoes", "Banana Powder", "apple Chips"}, names(desc))
}

func TestPostProcessSortByAge(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		testProduct("Mid", nil, base.Add(24*time.Hour)),
		testProduct("New", nil, base.Add(48*time.Hour)),
		testProduct("Old", nil, base),
		testProduct("Unknown", nil, time.Time{}),
	}

	newest := PostProcess(FilterState{SortBy: SortNewest}, products)
	assert.Equal(t, []string{"New", "Mid", "Old", "Unknown"}, names(newest))

	oldest := PostProcess(FilterState{SortBy: SortOldest}, products)
	assert.Equal(t, []string{"Unknown", "Old", "Mid", "New"}, names(oldest))
}

func TestPostProcessStableOnEqualKeys(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	// Identical timestamps: fetch order must survive the sort
	products := []models.Product{
		testProduct("First", nil, now),
		testProduct("Second", nil, now),
		testProduct("Third", nil, now),
	}

	got := PostProcess(FilterState{SortBy: SortNewest}, products)
	assert.Equal(t, []string{"First", "Second", "Third"}, names(got))
}

func TestPostProcessDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		testProduct("B", []string{"FSSAI"}, now),
		testProduct("A", nil, now),
	}

	out := PostProcess(FilterState{
		SortBy:         SortNameAsc,
		Certifications: []string{"FSSAI"},
	}, products)

	require.Equal(t, []string{"B"}, names(out))
	assert.Equal(t, []string{"B", "A"}, names(products))
}

func TestPostProcessDeterministic(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		testProduct("Gamma", []string{"FSSAI"}, now.Add(-time.Hour)),
		testProduct("alpha", []string{"APEDA"}, now),
		testProduct("Beta", []string{"FSSAI", "APEDA"}, now.Add(-2*time.Hour)),
	}
	f := FilterState{SortBy: SortNameAsc, Certifications: []string{"FSSAI"}}

	first := PostProcess(f, products)
	second := PostProcess(f, products)

	assert.Equal(t, names(first), names(second))
}
