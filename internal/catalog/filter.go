// internal/catalog/filter.go
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type SortKey string

const (
	SortNameAsc  SortKey = "name_asc"
	SortNameDesc SortKey = "name_desc"
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
)

type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// FilterState is one snapshot of the storefront's catalog selections.
// Search, the three selection sets, the category scope and the cap drive the
// query; SortBy and ViewMode only affect post-processing and presentation.
//
// PriceMin/PriceMax are accepted from the UI but intentionally not wired
// into any predicate; see DESIGN.md.
type FilterState struct {
	Search         string     `json:"search"`
	CategoryIDs    []uuid.UUID `json:"category_ids"`
	Origins        []string   `json:"origins"`
	Certifications []string   `json:"certifications"`
	PriceMin       *float64   `json:"price_min,omitempty"`
	PriceMax       *float64   `json:"price_max,omitempty"`
	SortBy         SortKey    `json:"sort_by"`
	ViewMode       ViewMode   `json:"view_mode"`
	CategoryScope  *uuid.UUID `json:"category_scope,omitempty"`
	Limit          int        `json:"limit,omitempty"`
}

// Key derives the fetch cache key: a deterministic, order-independent
// serialization of the query-relevant fields only. Two states that differ in
// SortBy or ViewMode share a key, so sort and view changes never re-fetch.
func (f FilterState) Key() string {
	cats := make([]string, 0, len(f.CategoryIDs))
	for _, id := range f.CategoryIDs {
		cats = append(cats, id.String())
	}
	sort.Strings(cats)

	origins := append([]string(nil), f.Origins...)
	sort.Strings(origins)

	certs := append([]string(nil), f.Certifications...)
	sort.Strings(certs)

	scope := ""
	if f.CategoryScope != nil {
		scope = f.CategoryScope.String()
	}

	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(strings.ToLower(strings.TrimSpace(f.Search)))
	b.WriteString("|cat=")
	b.WriteString(strings.Join(cats, ","))
	b.WriteString("|org=")
	b.WriteString(strings.Join(origins, ","))
	b.WriteString("|cert=")
	b.WriteString(strings.Join(certs, ","))
	b.WriteString("|scope=")
	b.WriteString(scope)
	if f.Limit > 0 {
		b.WriteString("|limit=")
		b.WriteString(strconv.Itoa(f.Limit))
	}
	return b.String()
}

// Clear resets every selection in one assignment. Presentation fields fall
// back to their defaults too; the scope override is sticky because it comes
// from the embedding page, not from user filter controls.
func (f *FilterState) Clear() {
	scope := f.CategoryScope
	limit := f.Limit
	*f = FilterState{
		SortBy:        SortNewest,
		ViewMode:      ViewModeGrid,
		CategoryScope: scope,
		Limit:         limit,
	}
}
