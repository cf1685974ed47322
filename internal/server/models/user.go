package models

import "time"

// User is a registered API consumer. KeyID references exactly one APIKey
// and is set once at creation.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	KeyID     int64
}

// UserWithKey is one row of the admin listing: a user joined with its key.
type UserWithKey struct {
	UserID     int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	KeyValue   string    `json:"keyValue"`
	StartDate  time.Time `json:"startDate"`
	ExpiryDate time.Time `json:"expiryDate"`
	Status     KeyStatus `json:"status"`
}

// Registration is what a successful registration hands back to the caller.
// APIKey is the only place the plaintext key is returned.
type Registration struct {
	UserID  int64
	KeyID   int64
	APIKey  string
	Expires time.Time
}
