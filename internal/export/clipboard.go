// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/amirdzh/formkeeper/internal/model"
)

// CopyRecord places the print view of a record on the system clipboard.
// Clipboard failures (headless session, missing helper binary) surface as
// errors for the caller to report; they are never silently discarded.
func CopyRecord(r model.ServiceForm) error {
	if err := clipboard.WriteAll(FormatRecord(r)); err != nil {
		return fmt.Errorf("failed to copy record to clipboard: %w", err)
	}
	return nil
}
