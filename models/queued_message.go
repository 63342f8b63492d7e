// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageStatus is the delivery state of a locally queued message.
type MessageStatus string

// Queued message lifecycle. A message enters the queue as StatusPending,
// is claimed as StatusProcessing for the duration of one delivery attempt,
// and ends as StatusSent on success, back to StatusPending on a retryable
// failure, or StatusFailed once the retry budget is exhausted.
const (
	StatusPending    MessageStatus = "pending"
	StatusProcessing MessageStatus = "processing"
	StatusSent       MessageStatus = "sent"
	StatusFailed     MessageStatus = "failed"
)

// QueuedMessage is one row of the client-side outbound queue. The queue is
// durable: rows survive process restarts and are drained in FIFO order by
// the sync worker.
type QueuedMessage struct {
	// ID is the client-generated UUID, reused as the message ID on the
	// server so that redelivery after a lost acknowledgement is idempotent.
	ID string `json:"id"`

	// ConversationID identifies the target conversation.
	ConversationID string `json:"conversation_id"`

	// SenderID is the UserID of the author.
	SenderID string `json:"sender_id"`

	// EncryptedContent is the base64-encoded ciphertext. Plaintext is never
	// written to the queue.
	EncryptedContent string `json:"encrypted_content"`

	// IV is the base64-encoded GCM nonce paired with EncryptedContent.
	IV string `json:"iv"`

	// SequenceNumber is the advisory ordering hint fetched at enqueue time.
	// The server may assign a different number at delivery.
	SequenceNumber int64 `json:"sequence_number"`

	// Status is the current delivery state. See [MessageStatus].
	Status MessageStatus `json:"status"`

	// RetryCount is the number of failed delivery attempts so far.
	RetryCount int `json:"retry_count"`

	// LastError holds the text of the most recent delivery failure.
	LastError string `json:"last_error,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`

	// SyncedAt is set when the message reaches StatusSent.
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the QueuedMessage model.
func (q QueuedMessage) TableName() string {
	return "queued_messages"
}
