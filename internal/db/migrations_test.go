// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"database/sql"
	"testing"
)

func TestRunMigrations_Idempotent(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := RunMigrations(sqlDB, "sqlite"); err != nil {
		t.Fatalf("first RunMigrations failed: %v", err)
	}
	if err := RunMigrations(sqlDB, "sqlite"); err != nil {
		t.Fatalf("second RunMigrations failed: %v", err)
	}

	// Both tables exist and the additive column landed.
	if _, err := sqlDB.Exec(`INSERT INTO users (username, password_hash) VALUES ('mig', 'h')`); err != nil {
		t.Fatalf("users table not usable after migrations: %v", err)
	}
	if _, err := sqlDB.Exec(`INSERT INTO records (fullname, is_favorite) VALUES ('x', 1)`); err != nil {
		t.Fatalf("records.is_favorite not usable after migrations: %v", err)
	}

	// Each version recorded exactly once.
	var n int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("counting schema_migrations failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 recorded migrations, got %d", n)
	}
}

func TestRunMigrations_ToleratesExistingColumn(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	// Simulate a store created before versioned migrations existed: the full
	// schema is already there, including the column the additive migration adds.
	stmts := []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, username TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, created_at TEXT)`,
		`CREATE TABLE records (id INTEGER PRIMARY KEY AUTOINCREMENT, fullname TEXT, device_model TEXT, device_serial TEXT, service_provider TEXT, device_problem TEXT, description TEXT, created_at TEXT, is_favorite INTEGER DEFAULT 0)`,
	}
	for _, s := range stmts {
		if _, err := sqlDB.Exec(s); err != nil {
			t.Fatalf("seeding legacy schema failed: %v", err)
		}
	}

	if err := RunMigrations(sqlDB, "sqlite"); err != nil {
		t.Fatalf("RunMigrations over legacy schema failed: %v", err)
	}

	// The skipped additive migration must still be recorded so it is not
	// retried forever.
	var exists int
	err = sqlDB.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = '0002_add_is_favorite'`).Scan(&exists)
	if err != nil {
		t.Fatalf("additive migration was not recorded: %v", err)
	}
}

func TestRunMigrations_UnknownDBType(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	// No embedded migrations for this type; treated as nothing to do.
	if err := RunMigrations(sqlDB, "oracle"); err != nil {
		t.Fatalf("expected no error for db type without migrations, got %v", err)
	}
}
