// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "testing"

func TestServiceFormField(t *testing.T) {
	f := ServiceForm{
		ID:          7,
		Fullname:    "John Smith",
		DeviceModel: "ThinkPad",
		IsFavorite:  true,
	}

	cases := map[string]string{
		"id":           "7",
		"fullname":     "John Smith",
		"device_model": "ThinkPad",
		"is_favorite":  "1",
		"description":  "",
		"bogus":        "",
	}
	for col, want := range cases {
		if got := f.Field(col); got != want {
			t.Fatalf("Field(%q) = %q, want %q", col, got, want)
		}
	}

	f.IsFavorite = false
	if f.Field("is_favorite") != "0" {
		t.Fatalf("expected 0 for a non-favorite")
	}
}

func TestServiceFormString(t *testing.T) {
	f := ServiceForm{Fullname: "John Smith", DeviceModel: "ThinkPad"}
	if got := f.String(); got != "John Smith (ThinkPad)" {
		t.Fatalf("String() = %q", got)
	}
}
