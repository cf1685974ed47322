package models

// Admin is an operator allowed to audit registered users.
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
}

// AdminIdentity is the authenticated principal carried by a verified admin
// session token.
type AdminIdentity struct {
	ID    int64
	Email string
}
