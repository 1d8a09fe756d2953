// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package view

import (
	"strings"

	"github.com/amirdzh/formkeeper/internal/model"
)

// Filters is a structured, conjunctive set of field constraints. String
// fields are case-insensitive substring matches; DateFrom/DateTo are
// inclusive lexicographic bounds against the stored created_at format
// (YYYY-MM-DD HH:MM:SS). Bounds should be given in that format; a date-only
// DateTo compares before any timestamp of the same day.
type Filters struct {
	Fullname        string
	DeviceModel     string
	ServiceProvider string
	ProblemType     string
	DateFrom        string
	DateTo          string
	FavoritesOnly   bool
}

// IsEmpty reports whether no constraint at all is set. Applying an empty
// Filters resets the view to the unfiltered base set.
func (f Filters) IsEmpty() bool {
	return f.Fullname == "" &&
		f.DeviceModel == "" &&
		f.ServiceProvider == "" &&
		f.ProblemType == "" &&
		f.DateFrom == "" &&
		f.DateTo == "" &&
		!f.FavoritesOnly
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Matches reports whether a record satisfies every set constraint. Records
// without a created timestamp pass the date bounds.
func (f Filters) Matches(r model.ServiceForm) bool {
	if f.Fullname != "" && !containsFold(r.Fullname, f.Fullname) {
		return false
	}
	if f.DeviceModel != "" && !containsFold(r.DeviceModel, f.DeviceModel) {
		return false
	}
	if f.ServiceProvider != "" && !containsFold(r.ServiceProvider, f.ServiceProvider) {
		return false
	}
	if f.ProblemType != "" && !containsFold(r.DeviceProblem, f.ProblemType) {
		return false
	}
	if f.FavoritesOnly && !r.IsFavorite {
		return false
	}
	if f.DateFrom != "" && r.CreatedAt != "" && r.CreatedAt < f.DateFrom {
		return false
	}
	if f.DateTo != "" && r.CreatedAt != "" && r.CreatedAt > f.DateTo {
		return false
	}
	return true
}
