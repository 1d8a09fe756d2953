// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/amirdzh/formkeeper/internal/model"
	"github.com/uptrace/bun"
)

// BunStore is the Bun-backed implementation of the Store interface. The
// dialect is chosen at construction time; the method set is identical across
// backends, with per-backend differences isolated in the *Bun helpers.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

// BunDB exposes the underlying Bun handle for helpers and tests.
func (s *BunStore) BunDB() *bun.DB { return s.bun }

// CreateUser stores a new user with an already-hashed password.
func (s *BunStore) CreateUser(username, passwordHash string) (int, error) {
	id, err := CreateUserBun(s.bun, s.dbType, username, passwordHash)
	if err == nil {
		dbLogf("db: created user %q (id=%d)", username, id)
	}
	return id, err
}

// FindUserByUsername looks up a user, nil when absent.
func (s *BunStore) FindUserByUsername(username string) (*model.User, error) {
	return FindUserByUsernameBun(s.bun, username)
}

// UserExists reports whether the username is taken.
func (s *BunStore) UserExists(username string) (bool, error) {
	return UserExistsBun(s.bun, username)
}

// LastCreatedUsername returns the newest username, "" when empty.
func (s *BunStore) LastCreatedUsername() (string, error) {
	return LastCreatedUsernameBun(s.bun)
}

// CreateForm stores a new whitelist-filtered form record.
func (s *BunStore) CreateForm(data map[string]string) (int, error) {
	id, err := CreateFormBun(s.bun, s.dbType, data)
	if err == nil {
		dbLogf("db: created form record id=%d", id)
	}
	return id, err
}

// GetAllForms returns every record, newest id first.
func (s *BunStore) GetAllForms() ([]model.ServiceForm, error) {
	return GetAllFormsBun(s.bun)
}

// GetFormByID returns one record, nil when absent.
func (s *BunStore) GetFormByID(id int) (*model.ServiceForm, error) {
	return GetFormByIDBun(s.bun, id)
}

// SearchForms runs the whitelisted substring search.
func (s *BunStore) SearchForms(query string, columns []string) ([]model.ServiceForm, error) {
	return SearchFormsBun(s.bun, query, columns)
}

// ToggleFavorite flips a record's favorite flag, nil when the id is unknown.
func (s *BunStore) ToggleFavorite(id int) (*bool, error) {
	return ToggleFavoriteBun(s.bun, id)
}

// DeleteForm removes a record by id.
func (s *BunStore) DeleteForm(id int) (bool, error) {
	ok, err := DeleteFormBun(s.bun, id)
	if err == nil && ok {
		dbLogf("db: deleted form record id=%d", id)
	}
	return ok, err
}
