package models

import "time"

// Reason explains why a key did not validate.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonKeyNotFound Reason = "KeyNotFound"
	ReasonKeyInactive Reason = "KeyInactive"
	ReasonKeyExpired  Reason = "KeyExpired"
)

// ValidationResult is the structured outcome of validating a presented key.
// A key that does not validate is a normal result, never an error.
type ValidationResult struct {
	Valid   bool
	Reason  Reason
	Status  KeyStatus
	Expires time.Time
}

// Evaluate decides whether key is usable at now. A nil key means no record
// matched. Checks run in a fixed order: not found, inactive, expired, valid,
// so an inactive key reports inactivity even when it has also expired.
// A key is still valid at the exact expiry instant.
func Evaluate(key *APIKey, now time.Time) ValidationResult {
	if key == nil {
		return ValidationResult{Reason: ReasonKeyNotFound}
	}

	switch key.Status {
	case StatusActive:
	case StatusInactive, StatusUnset:
		// NULL status is treated as inactive until a product decision says
		// otherwise.
		return ValidationResult{Reason: ReasonKeyInactive, Status: key.Status}
	default:
		return ValidationResult{Reason: ReasonKeyInactive, Status: key.Status}
	}

	if now.After(key.ExpiryDate) {
		return ValidationResult{Reason: ReasonKeyExpired, Status: key.Status}
	}

	return ValidationResult{Valid: true, Status: key.Status, Expires: key.ExpiryDate}
}

// Message is the human readable outcome shown to API consumers.
func (r ValidationResult) Message() string {
	if r.Valid {
		return "API key is valid"
	}
	switch r.Reason {
	case ReasonKeyNotFound:
		return "API key not found"
	case ReasonKeyInactive:
		return "API key is not active"
	case ReasonKeyExpired:
		return "API key has expired"
	case ReasonNone:
	}
	return "API key is not valid"
}
