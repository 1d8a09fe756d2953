// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/model"
)

// WriteYAML writes the rows to a YAML file at path as a list of column/value
// mappings, preserving schema column names. Returns the produced path.
func WriteYAML(rows []model.ServiceForm, path string) (string, error) {
	docs := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		m := make(map[string]string, len(db.FormColumnNames()))
		for _, col := range db.FormColumnNames() {
			m[col] = r.Field(col)
		}
		docs = append(docs, m)
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML export %s: %w", path, err)
	}
	return path, nil
}
