// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

// package view implements the in-memory query engine the result list runs
// on: free-text token search, structured filters and column sorting over
// rows loaded from the repository.
package view

import (
	"strings"

	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/model"
)

// TokenizeSearchQuery splits a query into lower-cased tokens, trimming
// whitespace. Returns nil for empty input.
func TokenizeSearchQuery(q string) []string {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	parts := strings.Fields(q)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FilterFormsByTokens returns the subset of `forms` matching all tokens.
// A row matches when every token appears, case-insensitively, as a substring
// of at least one searchable field. If `tokens` is nil or empty, the original
// slice is returned.
func FilterFormsByTokens(forms []model.ServiceForm, tokens []string) []model.ServiceForm {
	if len(tokens) == 0 {
		return forms
	}
	cols := db.SearchableFormColumns()
	out := make([]model.ServiceForm, 0, len(forms))
	for _, f := range forms {
		matchedAll := true
		for _, tok := range tokens {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			found := false
			for _, col := range cols {
				if strings.Contains(strings.ToLower(f.Field(col)), tok) {
					found = true
					break
				}
			}
			if !found {
				matchedAll = false
				break
			}
		}
		if matchedAll {
			out = append(out, f)
		}
	}
	return out
}
