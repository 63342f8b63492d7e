package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMessageID      = errors.New("invalid message ID")
	ErrInvalidConversationID = errors.New("invalid conversation ID")
	ErrInvalidSenderID       = errors.New("invalid sender ID")
	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrEmptyCiphertext       = errors.New("encrypted content is required")
	ErrEmptyIV               = errors.New("IV is required")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrEmptyAuthHash         = errors.New("auth hash is required")
	ErrEmptyAuthSalt         = errors.New("auth salt is required")
	ErrEmptyPublicKey        = errors.New("public key is required")
	ErrEmptyKeySalt          = errors.New("key derivation salt is required")
	ErrInvalidCurveVersion   = errors.New("invalid curve version")
)
