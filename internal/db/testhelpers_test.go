// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"testing"
)

// initTestDB opens an in-memory sqlite Store for one test. The shared-cache
// DSN keyed by the test name keeps parallel tests from seeing each other's
// schema.
func initTestDB(t *testing.T) *BunStore {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	s, err := NewStoreFromDSN("sqlite", dsn)
	if err != nil {
		t.Fatalf("NewStoreFromDSN failed: %v", err)
	}
	bs, ok := s.(*BunStore)
	if !ok {
		t.Fatalf("store is not *BunStore")
	}
	t.Cleanup(func() { _ = bs.bun.Close() })
	return bs
}

// WithTestStore initializes an in-memory sqlite Store as the package-level
// store for the duration of fn and restores the previous store afterwards.
func WithTestStore(t *testing.T, fn func(s *BunStore)) {
	t.Helper()

	prevStore := store
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	if err := InitDB("sqlite", dsn); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	s, ok := store.(*BunStore)
	if !ok {
		t.Fatalf("store is not *BunStore")
	}
	defer func() {
		_ = s.bun.Close()
		store = prevStore
	}()

	fn(s)
}
