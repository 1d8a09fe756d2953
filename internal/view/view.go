// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package view

import (
	"sort"
	"strings"

	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/model"
)

// View holds the in-memory working set behind a result list: the base rows
// loaded from the repository, the currently visible subset, and the filter
// and sort state. It is not safe for concurrent use; the consumer issues one
// operation at a time.
type View struct {
	source db.FormReader

	rows          []model.ServiceForm
	filtered      []model.ServiceForm
	filtersActive bool

	sortColumn    string
	sortAscending bool
}

// New creates a View over the given reader. The view is empty until Reload.
func New(source db.FormReader) *View {
	return &View{
		source:        source,
		sortColumn:    "id",
		sortAscending: true,
	}
}

// Reload repopulates the base set from the repository and resets any active
// filter. Clearing filters always resets to the full unfiltered set; a
// subsequent search operates on the full set again.
func (v *View) Reload() error {
	rows, err := v.source.GetAllForms()
	if err != nil {
		return err
	}
	v.rows = rows
	v.filtered = append([]model.ServiceForm(nil), rows...)
	v.filtersActive = false
	return nil
}

// Rows returns the currently visible rows.
func (v *View) Rows() []model.ServiceForm {
	return v.filtered
}

// FiltersActive reports whether a structured filter currently narrows the
// base set.
func (v *View) FiltersActive() bool {
	return v.filtersActive
}

// ApplyFilters narrows the base set by the given structured filter. An empty
// filter resets the view to the full base set and deactivates filtering.
func (v *View) ApplyFilters(f Filters) {
	if f.IsEmpty() {
		v.filtersActive = false
		v.filtered = append([]model.ServiceForm(nil), v.rows...)
		return
	}

	out := make([]model.ServiceForm, 0, len(v.rows))
	for _, r := range v.rows {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	v.filtered = out
	v.filtersActive = true
}

// Search narrows the current base set by a free-text query: every token must
// appear in at least one searchable field. While a structured filter is
// active the filtered subset is the base, so filter and search compose
// (filter narrows first, search narrows further). An empty query shows the
// base set unchanged.
func (v *View) Search(query string) {
	base := v.rows
	if v.filtersActive {
		base = v.filtered
	}

	tokens := TokenizeSearchQuery(query)
	if len(tokens) == 0 {
		if !v.filtersActive {
			v.filtered = append([]model.ServiceForm(nil), v.rows...)
		}
		return
	}

	v.filtered = FilterFormsByTokens(base, tokens)
}

// SortBy stably sorts the visible rows by a column. Repeating the same
// column reverses the direction; switching columns resets to ascending. The
// sort key is (absent, lowercased value) so empty values group together at
// one end regardless of direction.
func (v *View) SortBy(column string) {
	if v.sortColumn == column {
		v.sortAscending = !v.sortAscending
	} else {
		v.sortColumn = column
		v.sortAscending = true
	}

	key := func(r model.ServiceForm) (bool, string) {
		val := r.Field(column)
		return val != "", strings.ToLower(val)
	}

	sort.SliceStable(v.filtered, func(i, j int) bool {
		iPresent, iVal := key(v.filtered[i])
		jPresent, jVal := key(v.filtered[j])
		var less bool
		switch {
		case iPresent != jPresent:
			less = !iPresent // absent values first in ascending order
		default:
			less = iVal < jVal
		}
		if !v.sortAscending {
			return !less && (iPresent != jPresent || iVal != jVal)
		}
		return less
	})
}

// SortColumn returns the current sort column.
func (v *View) SortColumn() string { return v.sortColumn }

// SortAscending returns the current sort direction.
func (v *View) SortAscending() bool { return v.sortAscending }
