// internal/catalog/postprocess.go
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

// PostProcess applies the certification filter and the requested ordering to
// an already-fetched row set. Pure: the input slice is never mutated, and
// repeated calls with the same inputs yield the same output.
//
// Certification matching is OR across the selected labels: a product stays
// when the selection is empty or when it carries at least one selected
// label. Sorting is stable, so rows that compare equal keep their fetch
// order (sort_rank, created_at DESC from the query builder).
func PostProcess(f FilterState, products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesCertifications(p, f.Certifications) {
			out = append(out, p)
		}
	}

	switch f.SortBy {
	case SortNameAsc, SortNameDesc:
		// collate.Collator keeps an internal buffer, so a fresh one per
		// call rather than a shared package-level instance.
		c := collate.New(language.English, collate.Loose)
		asc := f.SortBy == SortNameAsc
		sort.SliceStable(out, func(i, j int) bool {
			cmp := c.CompareString(out[i].Name, out[j].Name)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	case SortNewest:
		// Zero timestamps compare before every real date, so malformed
		// rows sink to the end here and surface first under oldest.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}

	return out
}

func matchesCertifications(p models.Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, have := range p.Certifications {
			if have == want {
				return true
			}
		}
	}
	return false
}
