package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong email/password")
	ErrEmailTaken          = errors.New("email already taken")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrAuthentication          = errors.New("authentication failed")

	// ErrEmptyMessageContent is returned when a message arrives without
	// ciphertext or without its nonce.
	ErrEmptyMessageContent = errors.New("empty message content")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrNoActiveSession is returned when an operation needs the in-memory
	// private key but no key pair has been derived yet in this process.
	ErrNoActiveSession = errors.New("no active key session")

	// ErrKeyMismatch is returned when a key pair derived from the supplied
	// password does not reproduce the published public key. The usual cause
	// is a wrong password.
	ErrKeyMismatch = errors.New("derived key does not match published key")

	// ErrKeyMigrationRequired is returned when a key record predates the
	// current derivation scheme and must be re-derived before use.
	ErrKeyMigrationRequired = errors.New("key record requires migration")

	// ErrKeysNotFound is returned when the requested party has not published
	// an encryption key record.
	ErrKeysNotFound = errors.New("key record was not found")

	// ErrConflictAlreadyResolved is returned when a resolution targets a
	// conflict that has already been resolved.
	ErrConflictAlreadyResolved = errors.New("conflict already resolved")

	// ErrUserNotFound is returned when an operation references a user the
	// server does not know.
	ErrUserNotFound = errors.New("no user was found")

	// ErrConversationNotFound is returned when a message targets a missing
	// conversation.
	ErrConversationNotFound = errors.New("conversation was not found")

	// ErrVersionIsNotSpecified is returned when the server is started without
	// a build version in its configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
