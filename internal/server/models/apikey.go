// Package models defines server-side data models persisted in the database
// and the pure rules evaluated over them.
package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// KeyStatus is the lifecycle status stored with an API key.
type KeyStatus int

const (
	// StatusUnset marks legacy rows created before the status column existed
	// (NULL in the database).
	StatusUnset KeyStatus = iota
	StatusActive
	StatusInactive
)

const (
	statusActiveText   = "Active"
	statusInactiveText = "Inactive"
)

func (s KeyStatus) String() string {
	switch s {
	case StatusActive:
		return statusActiveText
	case StatusInactive:
		return statusInactiveText
	case StatusUnset:
		return ""
	}
	return ""
}

// NullString converts the status to its column value; StatusUnset is NULL.
func (s KeyStatus) NullString() sql.NullString {
	if s == StatusUnset {
		return sql.NullString{}
	}
	return sql.NullString{String: s.String(), Valid: true}
}

// MarshalJSON renders StatusUnset as null, matching the stored column.
func (s KeyStatus) MarshalJSON() ([]byte, error) {
	if s == StatusUnset {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

// ParseKeyStatus maps a column value to a status. NULL is StatusUnset; any
// value other than "Active" is StatusInactive so it can never validate.
func ParseKeyStatus(v sql.NullString) KeyStatus {
	switch {
	case !v.Valid:
		return StatusUnset
	case v.String == statusActiveText:
		return StatusActive
	default:
		return StatusInactive
	}
}

// APIKey is a stored key record. Value, StartDate and ExpiryDate never change
// after creation.
type APIKey struct {
	ID         int64
	Value      string
	StartDate  time.Time
	ExpiryDate time.Time
	Status     KeyStatus
}
