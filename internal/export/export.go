// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

// package export renders repository rows to external formats: CSV and YAML
// files for spreadsheets and tooling, and a plain-text view for printing and
// the clipboard. Exporters return the produced file path; persistence and
// export succeed or fail independently, the caller reports both.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/model"
)

// WriteCSV writes the rows to a CSV file at path, one header row from the
// schema descriptor followed by one line per record. Returns the path the
// file was written to.
func WriteCSV(rows []model.ServiceForm, path string) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := db.FormColumnNames()
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header to %s: %w", path, err)
	}
	for _, r := range rows {
		record := make([]string, 0, len(header))
		for _, col := range header {
			record = append(record, r.Field(col))
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV export %s: %w", path, err)
	}
	return path, nil
}

// FormatRecord renders one record as readable "Key Name: value" lines, in
// schema order with the id skipped. This is the print/copy view.
func FormatRecord(r model.ServiceForm) string {
	var b strings.Builder
	for _, col := range db.FormColumnNames() {
		if col == "id" {
			continue
		}
		b.WriteString(titleizeColumn(col))
		b.WriteString(": ")
		b.WriteString(r.Field(col))
		b.WriteString("\n")
	}
	return b.String()
}

// titleizeColumn turns a snake_case column name into a display label,
// e.g. "device_model" -> "Device Model".
func titleizeColumn(col string) string {
	parts := strings.Split(col, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// WriteText writes the print view of a single record to path.
func WriteText(r model.ServiceForm, path string) (string, error) {
	if err := os.WriteFile(path, []byte(FormatRecord(r)), 0644); err != nil {
		return "", fmt.Errorf("failed to write text export %s: %w", path, err)
	}
	return path, nil
}
