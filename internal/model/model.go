// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

// package model contains the core data structures for Formkeeper.
// These are plain structs shared by the data layer, the view engine and the
// CLI; they carry no persistence concerns of their own.
package model

import "fmt"

// User is a registered operator of the tool. The password is only ever
// stored as a salted hash; see internal/auth for the format.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	CreatedAt    string
}

// ServiceForm is one service contract record: who brought in which device,
// what is wrong with it, and who services it.
type ServiceForm struct {
	ID              int
	Fullname        string
	DeviceModel     string
	DeviceSerial    string
	ServiceProvider string
	DeviceProblem   string
	Description     string
	CreatedAt       string
	IsFavorite      bool
}

// String returns a short customer/device representation for logs and lists.
func (f ServiceForm) String() string {
	return fmt.Sprintf("%s (%s)", f.Fullname, f.DeviceModel)
}

// Field returns the value of a named column as a string. Unknown column
// names yield the empty string; callers that care should validate the name
// against the schema descriptor first.
func (f ServiceForm) Field(column string) string {
	switch column {
	case "id":
		return fmt.Sprintf("%d", f.ID)
	case "fullname":
		return f.Fullname
	case "device_model":
		return f.DeviceModel
	case "device_serial":
		return f.DeviceSerial
	case "service_provider":
		return f.ServiceProvider
	case "device_problem":
		return f.DeviceProblem
	case "description":
		return f.Description
	case "created_at":
		return f.CreatedAt
	case "is_favorite":
		if f.IsFavorite {
			return "1"
		}
		return "0"
	}
	return ""
}
