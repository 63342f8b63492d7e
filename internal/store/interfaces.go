package store

import (
	"context"

	"github.com/MKhiriev/go-chat-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the server-side account store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	WelcomeSent(ctx context.Context, userID string) (bool, error)
	MarkWelcomeSent(ctx context.Context, userID string) error
}

// MessageRepository is the server-side message store. Sequence numbers are
// assigned here, inside the insert transaction, so concurrent sends into the
// same conversation can never collide.
type MessageRepository interface {
	// Insert persists a message, assigning the next sequence number of its
	// conversation. Inserting an ID that already exists returns the stored
	// message and [ErrDuplicateMessage].
	Insert(ctx context.Context, msg models.Message) (models.Message, error)

	// NextSequenceNumber returns the sequence number the next insert into
	// the conversation would receive. Advisory only; the value may be
	// stale by the time the insert happens.
	NextSequenceNumber(ctx context.Context, conversationID string) (int64, error)

	// UpdateLastMessageAt refreshes the conversation's denormalized
	// activity timestamp.
	UpdateLastMessageAt(ctx context.Context, conversationID string) error

	// GetByID fetches a single message.
	GetByID(ctx context.Context, messageID string) (models.Message, error)

	// EnsureConversation creates the conversation row if it does not
	// exist yet. Used by the welcome bootstrap, which derives
	// conversation IDs deterministically on the client.
	EnsureConversation(ctx context.Context, conversation models.Conversation) error
}

// KeyRepository is the server-side public key store. One record per user;
// private keys never appear here.
type KeyRepository interface {
	Upsert(ctx context.Context, record models.KeyRecord) (models.KeyRecord, error)
	Get(ctx context.Context, userID string) (models.KeyRecord, error)
}
