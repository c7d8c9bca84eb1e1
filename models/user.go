package models

import "time"

// User represents an account entity used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests
	// only. It is never persisted and never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored for the account.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
