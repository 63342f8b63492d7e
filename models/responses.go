package models

import "time"

// AuthParamsResponse carries the public authentication parameters handed out
// before login: the salt needed to derive the auth hash for a given email.
type AuthParamsResponse struct {
	Email    string `json:"email"`
	AuthSalt string `json:"auth_salt"`
}

// NextSequenceResponse is the advisory next sequence number for a
// conversation. The value is a hint for local ordering; the server still
// assigns the authoritative number at insert time.
type NextSequenceResponse struct {
	ConversationID string `json:"conversation_id"`
	SequenceNumber int64  `json:"sequence_number"`
}

// LastMessageAtRequest updates a conversation's denormalized activity
// timestamp.
type LastMessageAtRequest struct {
	LastMessageAt time.Time `json:"last_message_at"`
}

// WelcomeFlagResponse reports whether a user has already received the
// one-time system greeting.
type WelcomeFlagResponse struct {
	UserID      string `json:"user_id"`
	WelcomeSent bool   `json:"welcome_sent"`
}

// SyncReport summarizes one pass of the outbound queue worker.
type SyncReport struct {
	// Synced is the number of messages delivered during the pass.
	Synced int `json:"synced"`

	// Failed is the number of messages that exhausted their retry budget
	// during the pass.
	Failed int `json:"failed"`
}
