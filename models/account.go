package models

import "time"

// Account is a registered diary user.
type Account struct {
	// ID is the owner id used to scope every record query.
	ID int64 `json:"id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// Password carries the plain password on the way in (signup, login).
	// It is never persisted and never serialized.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is set by the database on insert.
	CreatedAt time.Time `json:"created_at"`
}
