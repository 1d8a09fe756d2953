// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "testing"

func TestFormColumnWhitelists(t *testing.T) {
	if isWritableFormColumn("id") {
		t.Fatalf("id must never be writable")
	}
	if !isWritableFormColumn("is_favorite") {
		t.Fatalf("is_favorite should be writable")
	}
	if isWritableFormColumn("password_hash") {
		t.Fatalf("foreign column accepted as writable")
	}

	for _, c := range SearchableFormColumns() {
		if !isSearchableFormColumn(c) {
			t.Fatalf("searchable whitelist disagrees with itself on %q", c)
		}
		if !isWritableFormColumn(c) {
			t.Fatalf("searchable column %q is not writable", c)
		}
	}
	if isSearchableFormColumn("is_favorite") {
		t.Fatalf("is_favorite is not free text and must not be searchable")
	}
	if isSearchableFormColumn("id") {
		t.Fatalf("id must not be searchable")
	}

	names := FormColumnNames()
	if len(names) != len(FormSchema) {
		t.Fatalf("FormColumnNames length mismatch: %d vs %d", len(names), len(FormSchema))
	}
	if names[0] != "id" {
		t.Fatalf("expected id first in schema order, got %q", names[0])
	}
	if len(WritableFormColumns()) != len(FormSchema)-1 {
		t.Fatalf("writable set should be every column but id")
	}
}
