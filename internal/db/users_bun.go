// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/amirdzh/formkeeper/internal/model"
	"github.com/uptrace/bun"
)

// UserModel maps the `users` table for Bun queries.
type UserModel struct {
	bun.BaseModel `bun:"table:users"`
	ID            int            `bun:"id,pk,autoincrement"`
	Username      string         `bun:"username"`
	PasswordHash  string         `bun:"password_hash"`
	CreatedAt     sql.NullString `bun:"created_at"`
}

func userModelToModel(u UserModel) model.User {
	m := model.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
	}
	if u.CreatedAt.Valid {
		m.CreatedAt = u.CreatedAt.String
	}
	return m
}

// normalizeUsername applies the storage normalization: trimmed, lowercased.
// Lookups and writes both go through it so case never splits identities.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// CreateUserBun inserts a new user and returns its ID. The password must
// already be hashed; hashing is the auth service's job. A duplicate
// normalized username yields ErrDuplicate.
func CreateUserBun(bdb *bun.DB, dbType, username, passwordHash string) (int, error) {
	ctx := context.Background()
	username = normalizeUsername(username)

	if dbType == "postgres" {
		var id int
		err := QueryRawInto(ctx, bdb, &id,
			"INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id",
			username, passwordHash)
		if err != nil {
			return 0, MapDBError(err)
		}
		return id, nil
	}

	res, err := ExecRaw(ctx, bdb,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, passwordHash)
	if err != nil {
		return 0, MapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// FindUserByUsernameBun looks up a user by normalized username.
// Returns (nil, nil) when no such user exists.
func FindUserByUsernameBun(bdb *bun.DB, username string) (*model.User, error) {
	ctx := context.Background()
	var um UserModel
	err := bdb.NewSelect().Model(&um).
		Where("username = ?", normalizeUsername(username)).
		Limit(1).Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	m := userModelToModel(um)
	return &m, nil
}

// UserExistsBun reports whether a normalized username is already taken.
func UserExistsBun(bdb *bun.DB, username string) (bool, error) {
	u, err := FindUserByUsernameBun(bdb, username)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// LastCreatedUsernameBun returns the most recently registered username, or
// the empty string when the store has no users yet.
func LastCreatedUsernameBun(bdb *bun.DB) (string, error) {
	ctx := context.Background()
	var um UserModel
	err := bdb.NewSelect().Model(&um).
		Column("username").
		OrderExpr("id DESC").
		Limit(1).Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return um.Username, nil
}
