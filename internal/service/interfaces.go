package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService handles server-side account lifecycle and JWT issuance. The
// server never sees plain passwords; it stores and compares the auth hash the
// client derived locally.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)

	// AuthParams returns the auth salt stored for the account so the client
	// can derive the auth hash before calling Login.
	AuthParams(ctx context.Context, email string) (models.AuthParamsResponse, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// WelcomeSent reports whether the one-time greeting has been delivered
	// to userID.
	WelcomeSent(ctx context.Context, userID string) (bool, error)

	// MarkWelcomeSent flips the welcome flag once the greeting message is
	// persisted.
	MarkWelcomeSent(ctx context.Context, userID string) error
}

// MessageService persists encrypted messages and owns sequence number
// assignment. Content is opaque ciphertext at this layer.
type MessageService interface {
	// Insert stores one message and assigns its sequence number inside the
	// insert transaction. Redelivery of an already stored ID returns the
	// original row together with a wrapped [store.ErrDuplicateMessage].
	Insert(ctx context.Context, msg models.Message) (models.Message, error)

	// NextSequenceNumber returns the advisory next sequence number of the
	// conversation.
	NextSequenceNumber(ctx context.Context, conversationID string) (int64, error)

	// UpdateLastMessageAt refreshes the conversation activity timestamp.
	UpdateLastMessageAt(ctx context.Context, conversationID string, at time.Time) error

	// EnsureConversation creates the conversation if it does not exist yet.
	EnsureConversation(ctx context.Context, conversation models.Conversation) error

	GetByID(ctx context.Context, messageID string) (models.Message, error)
}

// KeyService stores and serves published public key records.
type KeyService interface {
	Upsert(ctx context.Context, record models.KeyRecord) (models.KeyRecord, error)
	Get(ctx context.Context, userID string) (models.KeyRecord, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
