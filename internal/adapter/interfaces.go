// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chat-keeper server.
//
// The primary abstraction is [RemoteStore], which decouples the client service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic communication with the chat-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteStore interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the client-derived auth hash
	// and salt. On success it stores the returned bearer token via SetToken
	// and returns the persisted user record.
	Register(ctx context.Context, user models.User) (models.User, error)

	// AuthParams fetches the auth salt stored for email during registration.
	// The salt is needed to derive the auth hash before Login can be called.
	AuthParams(ctx context.Context, email string) (models.AuthParamsResponse, error)

	// Login authenticates the user with the server using the pre-computed
	// auth hash. On success it stores the returned bearer token via SetToken
	// and returns the server-side user record.
	Login(ctx context.Context, user models.User) (models.User, error)

	// InsertMessage delivers one encrypted message. The server assigns the
	// authoritative sequence number and returns the stored row. Redelivery of
	// an already stored message ID returns the original row together with
	// [ErrConflict] (wrapped from HTTP 409).
	InsertMessage(ctx context.Context, msg models.Message) (models.Message, error)

	// NextSequenceNumber fetches the advisory next sequence number for the
	// conversation. The value is a local ordering hint only.
	NextSequenceNumber(ctx context.Context, conversationID string) (int64, error)

	// UpdateLastMessageAt refreshes the conversation activity timestamp.
	UpdateLastMessageAt(ctx context.Context, conversationID string, at time.Time) error

	// EnsureConversation creates the conversation on the server if it does
	// not exist yet. Safe to call repeatedly with the same ID.
	EnsureConversation(ctx context.Context, conversation models.Conversation) error

	// UpsertKeyRecord publishes the caller's public key, derivation salt and
	// device binding, replacing any previous record for the same user.
	UpsertKeyRecord(ctx context.Context, record models.KeyRecord) (models.KeyRecord, error)

	// GetKeyRecord fetches the key record of userID. Returns [ErrNotFound]
	// (wrapped from HTTP 404) when the user has not published keys yet.
	GetKeyRecord(ctx context.Context, userID string) (models.KeyRecord, error)

	// WelcomeSent reports whether the one-time greeting was already delivered
	// to userID.
	WelcomeSent(ctx context.Context, userID string) (bool, error)

	// MarkWelcomeSent flips the welcome flag after the greeting message has
	// been persisted on the server.
	MarkWelcomeSent(ctx context.Context, userID string) error
}
