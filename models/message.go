package models

import "time"

// Message is a single chat message as stored on the server and exchanged
// between clients. Content is always ciphertext: the server never sees
// plaintext and has no means to produce it.
type Message struct {
	// ID is the client-generated UUID of the message. Because the client
	// assigns it before the first send attempt, retries of the same message
	// are idempotent on the server side.
	ID string `json:"id"`

	// ConversationID identifies the conversation the message belongs to.
	ConversationID string `json:"conversation_id"`

	// SenderID is the UserID of the author.
	SenderID string `json:"sender_id"`

	// EncryptedContent is the base64-encoded AES-GCM ciphertext.
	EncryptedContent string `json:"encrypted_content"`

	// IV is the base64-encoded GCM nonce used for this message. Unique per
	// message; reuse under the same key breaks confidentiality.
	IV string `json:"iv"`

	// SequenceNumber is the per-conversation ordering position. The server
	// assigns it authoritatively at insert time; any value sent by the
	// client is advisory only.
	SequenceNumber int64 `json:"sequence_number"`

	CreatedAt   time.Time  `json:"created_at,omitzero"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	Edited      bool       `json:"edited,omitempty"`
	Deleted     bool       `json:"deleted,omitempty"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// Conversation is a server-side chat container. LastMessageAt is denormalized
// for cheap conversation-list ordering and is refreshed on every insert.
type Conversation struct {
	ID            string    `json:"id"`
	Title         string    `json:"title,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
	LastMessageAt time.Time `json:"last_message_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Conversation model.
func (c Conversation) TableName() string {
	return "conversations"
}
