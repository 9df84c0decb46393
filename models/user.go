package models

import "time"

// User is the master credential record of a vault owner.
// It contains identity attributes and the encoded password hash.
// The plaintext master password is never stored here.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login name used during authentication.
	Username string `json:"username"`

	// Email is the unique address used to locate the account for a
	// password reset.
	Email string `json:"email"`

	// PasswordHash is the self-describing hash record of the master password
	// (algorithm, cost parameters, salt and digest). It must never be logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last password hash replacement.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Owner returns the vault capability for u.
func (u User) Owner() (Owner, error) {
	return NewOwner(u.UserID)
}
