// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/amirdzh/formkeeper/internal/model"
	"github.com/uptrace/bun"
)

// Store defines the interface for all database operations in Formkeeper.
// This allows for multiple database backends to be implemented.
type Store interface {
	// User methods
	CreateUser(username, passwordHash string) (int, error)
	FindUserByUsername(username string) (*model.User, error)
	UserExists(username string) (bool, error)
	LastCreatedUsername() (string, error)

	// Service form methods
	CreateForm(data map[string]string) (int, error)
	GetAllForms() ([]model.ServiceForm, error)
	GetFormByID(id int) (*model.ServiceForm, error)
	SearchForms(query string, columns []string) ([]model.ServiceForm, error)
	ToggleFavorite(id int) (*bool, error)
	DeleteForm(id int) (bool, error)

	// BunDB exposes the underlying Bun handle for helpers and tests.
	BunDB() *bun.DB
}

// UserStore is the capability subset the authentication service depends on.
type UserStore interface {
	CreateUser(username, passwordHash string) (int, error)
	FindUserByUsername(username string) (*model.User, error)
	UserExists(username string) (bool, error)
	LastCreatedUsername() (string, error)
}

// FormReader is the capability subset the view engine depends on.
type FormReader interface {
	GetAllForms() ([]model.ServiceForm, error)
}
