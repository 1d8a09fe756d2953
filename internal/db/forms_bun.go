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

// FormModel maps the `records` table for Bun queries.
type FormModel struct {
	bun.BaseModel   `bun:"table:records"`
	ID              int            `bun:"id,pk,autoincrement"`
	Fullname        sql.NullString `bun:"fullname"`
	DeviceModel     sql.NullString `bun:"device_model"`
	DeviceSerial    sql.NullString `bun:"device_serial"`
	ServiceProvider sql.NullString `bun:"service_provider"`
	DeviceProblem   sql.NullString `bun:"device_problem"`
	Description     sql.NullString `bun:"description"`
	CreatedAt       sql.NullString `bun:"created_at"`
	IsFavorite      bool           `bun:"is_favorite"`
}

func formModelToModel(f FormModel) model.ServiceForm {
	m := model.ServiceForm{
		ID:         f.ID,
		IsFavorite: f.IsFavorite,
	}
	if f.Fullname.Valid {
		m.Fullname = f.Fullname.String
	}
	if f.DeviceModel.Valid {
		m.DeviceModel = f.DeviceModel.String
	}
	if f.DeviceSerial.Valid {
		m.DeviceSerial = f.DeviceSerial.String
	}
	if f.ServiceProvider.Valid {
		m.ServiceProvider = f.ServiceProvider.String
	}
	if f.DeviceProblem.Valid {
		m.DeviceProblem = f.DeviceProblem.String
	}
	if f.Description.Valid {
		m.Description = f.Description.String
	}
	if f.CreatedAt.Valid {
		m.CreatedAt = f.CreatedAt.String
	}
	return m
}

// CreateFormBun inserts a new service form record from a column/value payload
// and returns the new ID. Only whitelisted columns survive; a client-supplied
// id is always dropped. A payload with no valid columns at all yields
// ErrNoValidColumns.
func CreateFormBun(bdb *bun.DB, dbType string, data map[string]string) (int, error) {
	ctx := context.Background()

	// Walk the schema descriptor, not the payload, so column order is stable.
	var cols []string
	var args []interface{}
	for _, c := range FormSchema {
		v, ok := data[c.Name]
		if !ok || !isWritableFormColumn(c.Name) {
			continue
		}
		cols = append(cols, c.Name)
		args = append(args, v)
	}
	if len(cols) == 0 {
		return 0, ErrNoValidColumns
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := "INSERT INTO records (" + strings.Join(cols, ", ") + ") VALUES (" + placeholders + ")"

	if dbType == "postgres" {
		var id int
		if err := QueryRawInto(ctx, bdb, &id, query+" RETURNING id", args...); err != nil {
			return 0, MapDBError(err)
		}
		return id, nil
	}

	res, err := ExecRaw(ctx, bdb, query, args...)
	if err != nil {
		return 0, MapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// GetAllFormsBun returns all form records ordered newest-id-first.
func GetAllFormsBun(bdb *bun.DB) ([]model.ServiceForm, error) {
	ctx := context.Background()
	var fms []FormModel
	if err := bdb.NewSelect().Model(&fms).OrderExpr("id DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.ServiceForm, 0, len(fms))
	for _, f := range fms {
		out = append(out, formModelToModel(f))
	}
	return out, nil
}

// GetFormByIDBun returns a single record, or (nil, nil) when absent.
func GetFormByIDBun(bdb *bun.DB, id int) (*model.ServiceForm, error) {
	ctx := context.Background()
	var fm FormModel
	err := bdb.NewSelect().Model(&fm).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	m := formModelToModel(fm)
	return &m, nil
}

// SearchFormsBun runs a disjunctive substring search over the intersection of
// the requested columns and the searchable whitelist. A blank query returns
// everything; an empty intersection fails closed with an empty result.
func SearchFormsBun(bdb *bun.DB, query string, columns []string) ([]model.ServiceForm, error) {
	if strings.TrimSpace(query) == "" {
		return GetAllFormsBun(bdb)
	}

	searchCols := columns
	if len(searchCols) == 0 {
		searchCols = SearchableFormColumns()
	}
	var validCols []string
	for _, c := range searchCols {
		if isSearchableFormColumn(c) {
			validCols = append(validCols, c)
		}
	}
	if len(validCols) == 0 {
		return []model.ServiceForm{}, nil
	}

	ctx := context.Background()
	pattern := "%" + query + "%"
	var fms []FormModel
	q := bdb.NewSelect().Model(&fms)
	q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
		for _, col := range validCols {
			q = q.WhereOr("? LIKE ?", bun.Ident(col), pattern)
		}
		return q
	})
	if err := q.OrderExpr("id DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.ServiceForm, 0, len(fms))
	for _, f := range fms {
		out = append(out, formModelToModel(f))
	}
	return out, nil
}

// ToggleFavoriteBun flips is_favorite for a record inside one transaction and
// returns the new value. Returns (nil, nil) when the id doesn't exist.
func ToggleFavoriteBun(bdb *bun.DB, id int) (*bool, error) {
	ctx := context.Background()
	var newStatus *bool

	err := runInTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		var current bool
		err := QueryRawInto(ctx, tx, &current, "SELECT is_favorite FROM records WHERE id = ?", id)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil
			}
			return err
		}
		flipped := !current
		if _, err := ExecRaw(ctx, tx, "UPDATE records SET is_favorite = ? WHERE id = ?", flipped, id); err != nil {
			return err
		}
		newStatus = &flipped
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newStatus, nil
}

// DeleteFormBun removes a record by id; true when a row was actually removed.
func DeleteFormBun(bdb *bun.DB, id int) (bool, error) {
	ctx := context.Background()
	res, err := bdb.NewDelete().Model((*FormModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
