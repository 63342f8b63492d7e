package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (client-generated UUID on
	// registration, canonical after the server persists it).
	UserID string `json:"user_id,omitempty"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// AuthHash is the authentication digest derived on the client from the
	// account password and AuthSalt. The server stores and compares it but
	// can never recover the password or any key material from it.
	AuthHash string `json:"auth_hash,omitempty"`

	// AuthSalt is the random salt used to derive AuthHash. It is not a
	// secret and is handed out by the auth params endpoint before login.
	AuthSalt string `json:"auth_salt,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// WelcomeSent reports whether the one-time system greeting has already
	// been delivered to this user.
	WelcomeSent bool `json:"welcome_sent,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
