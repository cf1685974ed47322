// Package common defines shared constants and sentinel errors used across
// APIKeeper layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Request data is missing or malformed.
	ErrBadRequest = errors.New("bad request")

	// Uniqueness violations. The specific errors wrap ErrConflict so
	// transports can match either.
	ErrConflict       = errors.New("conflict")
	ErrDuplicateUser  = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrDuplicateKey   = fmt.Errorf("%w: api key value already exists", ErrConflict)
	ErrDuplicateAdmin = fmt.Errorf("%w: admin email already registered", ErrConflict)

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = fmt.Errorf("%w: token expired", ErrInvalidToken)

	// Transaction or connectivity failure, reported after rollback.
	ErrStorage = errors.New("storage error")
)
