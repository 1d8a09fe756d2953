// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

// Column describes one column of the records table. The schema descriptor is
// the single source of truth for the writable and searchable whitelists; it
// is never mutated after package init.
type Column struct {
	Name     string
	Type     string
	Nullable bool
	Default  string
}

// FormSchema is the ordered schema descriptor for service form records.
// Writable and searchable column sets are derived from it.
var FormSchema = []Column{
	{Name: "id", Type: "INTEGER", Nullable: false, Default: ""},
	{Name: "fullname", Type: "TEXT", Nullable: true, Default: ""},
	{Name: "device_model", Type: "TEXT", Nullable: true, Default: ""},
	{Name: "device_serial", Type: "TEXT", Nullable: true, Default: ""},
	{Name: "service_provider", Type: "TEXT", Nullable: true, Default: ""},
	{Name: "device_problem", Type: "TEXT", Nullable: true, Default: ""},
	{Name: "description", Type: "TEXT", Nullable: true, Default: ""},
	{Name: "created_at", Type: "TEXT", Nullable: true, Default: "now-localtime"},
	{Name: "is_favorite", Type: "INTEGER", Nullable: true, Default: "0"},
}

// searchableFormColumns are the free-text fields token search and SQL search
// may touch. Anything else fails closed.
var searchableFormColumns = []string{
	"fullname",
	"device_model",
	"device_serial",
	"service_provider",
	"device_problem",
	"description",
}

// FormColumnNames returns the ordered column names of the records table.
func FormColumnNames() []string {
	out := make([]string, 0, len(FormSchema))
	for _, c := range FormSchema {
		out = append(out, c.Name)
	}
	return out
}

// WritableFormColumns returns the columns a client payload may set. The id
// is always server-assigned and therefore excluded.
func WritableFormColumns() []string {
	out := make([]string, 0, len(FormSchema))
	for _, c := range FormSchema {
		if c.Name == "id" {
			continue
		}
		out = append(out, c.Name)
	}
	return out
}

// SearchableFormColumns returns a copy of the searchable column whitelist.
func SearchableFormColumns() []string {
	out := make([]string, len(searchableFormColumns))
	copy(out, searchableFormColumns)
	return out
}

func isWritableFormColumn(name string) bool {
	if name == "id" {
		return false
	}
	for _, c := range FormSchema {
		if c.Name == name {
			return true
		}
	}
	return false
}

func isSearchableFormColumn(name string) bool {
	for _, c := range searchableFormColumns {
		if c == name {
			return true
		}
	}
	return false
}
