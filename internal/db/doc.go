// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db provides the data access layer for Formkeeper. It abstracts the
// underlying database (SQLite by default, with PostgreSQL and MySQL kept
// selectable) behind a consistent Store interface built on Bun, so the rest
// of the application never touches SQL drivers directly.
package db
