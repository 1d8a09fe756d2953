// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"testing"
)

func TestCreateForm_WhitelistAndOrder(t *testing.T) {
	s := initTestDB(t)

	id1, err := s.CreateForm(map[string]string{
		"fullname":     "John Smith",
		"device_model": "ProBook 450",
	})
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}
	if id1 <= 0 {
		t.Fatalf("expected positive id, got %d", id1)
	}

	// Unknown keys and a client-supplied id are silently dropped.
	id2, err := s.CreateForm(map[string]string{
		"id":            "999",
		"fullname":      "Jane Doe",
		"drop_table":    "x",
		"nonexistent":   "y",
		"device_serial": "SN-42",
	})
	if err != nil {
		t.Fatalf("CreateForm with extra keys failed: %v", err)
	}
	if id2 == 999 {
		t.Fatalf("client-supplied id was not ignored")
	}

	got, err := s.GetFormByID(id2)
	if err != nil {
		t.Fatalf("GetFormByID failed: %v", err)
	}
	if got == nil || got.Fullname != "Jane Doe" || got.DeviceSerial != "SN-42" {
		t.Fatalf("record did not persist as expected: %+v", got)
	}

	all, err := s.GetAllForms()
	if err != nil {
		t.Fatalf("GetAllForms failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	// Newest id first.
	if all[0].ID != id2 || all[1].ID != id1 {
		t.Fatalf("expected newest-first order [%d %d], got [%d %d]", id2, id1, all[0].ID, all[1].ID)
	}
}

func TestCreateForm_NoValidColumns(t *testing.T) {
	s := initTestDB(t)

	_, err := s.CreateForm(map[string]string{"id": "1", "bogus": "x"})
	if !errors.Is(err, ErrNoValidColumns) {
		t.Fatalf("expected ErrNoValidColumns, got %v", err)
	}

	_, err = s.CreateForm(map[string]string{})
	if !errors.Is(err, ErrNoValidColumns) {
		t.Fatalf("expected ErrNoValidColumns for empty payload, got %v", err)
	}
}

func TestGetFormByID_Absent(t *testing.T) {
	s := initTestDB(t)

	got, err := s.GetFormByID(12345)
	if err != nil {
		t.Fatalf("GetFormByID failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestSearchForms(t *testing.T) {
	s := initTestDB(t)

	if _, err := s.CreateForm(map[string]string{"fullname": "John Smith", "device_model": "ThinkPad"}); err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}
	if _, err := s.CreateForm(map[string]string{"fullname": "Mary Jones", "device_model": "MacBook"}); err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	// Blank query returns everything.
	res, err := s.SearchForms("   ", nil)
	if err != nil {
		t.Fatalf("SearchForms blank failed: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected blank query to return all 2 records, got %d", len(res))
	}

	// Substring match in one column.
	res, err = s.SearchForms("Think", nil)
	if err != nil {
		t.Fatalf("SearchForms failed: %v", err)
	}
	if len(res) != 1 || res[0].Fullname != "John Smith" {
		t.Fatalf("expected one ThinkPad record, got %+v", res)
	}

	// Column subset: only searches the named column.
	res, err = s.SearchForms("Smith", []string{"device_model"})
	if err != nil {
		t.Fatalf("SearchForms failed: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("expected no match searching device_model for Smith, got %d", len(res))
	}

	// Requesting only unknown columns fails closed.
	res, err = s.SearchForms("Smith", []string{"password_hash", "nope"})
	if err != nil {
		t.Fatalf("SearchForms failed: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("expected fail-closed empty result, got %d rows", len(res))
	}

	// No match at all.
	res, err = s.SearchForms("zzzzzz", nil)
	if err != nil {
		t.Fatalf("SearchForms failed: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(res))
	}
}

func TestToggleFavorite(t *testing.T) {
	s := initTestDB(t)

	id, err := s.CreateForm(map[string]string{"fullname": "John Smith"})
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	status, err := s.ToggleFavorite(id)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if status == nil || *status != true {
		t.Fatalf("expected first toggle to return true, got %v", status)
	}

	got, err := s.GetFormByID(id)
	if err != nil {
		t.Fatalf("GetFormByID failed: %v", err)
	}
	if got == nil || !got.IsFavorite {
		t.Fatalf("favorite flag did not persist: %+v", got)
	}

	status, err = s.ToggleFavorite(id)
	if err != nil {
		t.Fatalf("second ToggleFavorite failed: %v", err)
	}
	if status == nil || *status != false {
		t.Fatalf("expected second toggle to return false, got %v", status)
	}

	// Unknown id reports nil rather than an error.
	status, err = s.ToggleFavorite(99999)
	if err != nil {
		t.Fatalf("ToggleFavorite for absent id failed: %v", err)
	}
	if status != nil {
		t.Fatalf("expected nil status for absent id, got %v", *status)
	}
}

func TestDeleteForm(t *testing.T) {
	s := initTestDB(t)

	id, err := s.CreateForm(map[string]string{"fullname": "John Smith"})
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	removed, err := s.DeleteForm(id)
	if err != nil {
		t.Fatalf("DeleteForm failed: %v", err)
	}
	if !removed {
		t.Fatalf("expected delete to report a removed row")
	}

	got, err := s.GetFormByID(id)
	if err != nil {
		t.Fatalf("GetFormByID after delete failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected record to be gone, still present: %+v", got)
	}

	removed, err = s.DeleteForm(id)
	if err != nil {
		t.Fatalf("second DeleteForm failed: %v", err)
	}
	if removed {
		t.Fatalf("expected second delete to report no removed row")
	}
}
