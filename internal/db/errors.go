// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when attempting to insert a record that already
// exists, e.g. registering a username a second time.
var ErrDuplicate = errors.New("duplicate record")

// ErrNoValidColumns is returned by CreateForm when the payload contains no
// writable column at all after whitelisting.
var ErrNoValidColumns = errors.New("no valid columns provided")

// MapDBError inspects low-level driver errors and maps common constraint
// violations to package-level sentinel errors (like ErrDuplicate). This is a
// conservative, string-based mapping to avoid importing SQL driver packages
// into this package file.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}

// isDuplicateColumnError reports whether err looks like an "add column that
// already exists" failure. Additive migrations tolerate this so they can run
// against stores created before the column was introduced.
func isDuplicateColumnError(err error) bool {
	if err == nil {
		return false
	}
	le := strings.ToLower(err.Error())
	return strings.Contains(le, "duplicate column") || // SQLite, MySQL 1060
		strings.Contains(le, "already exists") || // Postgres 42701
		strings.Contains(le, "1060")
}
