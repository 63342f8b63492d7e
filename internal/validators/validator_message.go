package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-chat-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldMessageID targets the client-generated unique identifier of a message.
	FieldMessageID = "message_id"

	// FieldConversationID targets the conversation identifier of a message
	// or conversation entity.
	FieldConversationID = "conversation_id"

	// FieldSenderID targets the author identifier of a message.
	FieldSenderID = "sender_id"

	// FieldUserID targets the owner identifier of a key record or account.
	FieldUserID = "user_id"

	// FieldCiphertext targets the encrypted content field of a message.
	FieldCiphertext = "encrypted_content"

	// FieldIV targets the per-message GCM nonce field.
	FieldIV = "iv"

	// FieldEmail targets the account email of a user.
	FieldEmail = "email"

	// FieldAuthHash targets the client-derived authentication digest.
	FieldAuthHash = "auth_hash"

	// FieldAuthSalt targets the salt the auth hash was derived with.
	FieldAuthSalt = "auth_salt"

	// FieldPublicKey targets the JWK coordinates of a key record.
	FieldPublicKey = "public_key"

	// FieldKeySalt targets the KDF salt of a key record.
	FieldKeySalt = "salt"

	// FieldCurveVersion targets the key-record format version.
	FieldCurveVersion = "curve_version"
)

// MessageValidator implements the Validator interface for the messaging
// domain models: Message, Conversation, KeyRecord and User.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type MessageValidator struct {
}

// NewMessageValidator constructs a new MessageValidator
// and returns it as the Validator interface.
func NewMessageValidator() Validator {
	return &MessageValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// Unknown types are rejected with ErrUnsupportedType.
func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	case models.Conversation:
		return v.validateConversation(ctx, value, fields...)
	case *models.Conversation:
		return v.validateConversation(ctx, *value, fields...)

	case models.KeyRecord:
		return v.validateKeyRecord(ctx, value, fields...)
	case *models.KeyRecord:
		return v.validateKeyRecord(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateMessage(_ context.Context, msg models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessageID, FieldConversationID, FieldSenderID, FieldCiphertext, FieldIV}
	}

	for _, f := range fields {
		switch f {
		case FieldMessageID:
			if msg.ID == "" {
				return ErrInvalidMessageID
			}
		case FieldConversationID:
			if msg.ConversationID == "" {
				return ErrInvalidConversationID
			}
		case FieldSenderID:
			if msg.SenderID == "" {
				return ErrInvalidSenderID
			}
		case FieldCiphertext:
			if msg.EncryptedContent == "" {
				return ErrEmptyCiphertext
			}
		case FieldIV:
			if msg.IV == "" {
				return ErrEmptyIV
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateConversation(_ context.Context, conversation models.Conversation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConversationID}
	}

	for _, f := range fields {
		switch f {
		case FieldConversationID:
			if conversation.ID == "" {
				return ErrInvalidConversationID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateKeyRecord(_ context.Context, record models.KeyRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPublicKey, FieldKeySalt, FieldCurveVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if record.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldPublicKey:
			if record.PublicKey.X == "" || record.PublicKey.Y == "" {
				return ErrEmptyPublicKey
			}
		case FieldKeySalt:
			if record.Salt == "" {
				return ErrEmptyKeySalt
			}
		case FieldCurveVersion:
			if record.CurveVersion <= 0 {
				return ErrInvalidCurveVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldAuthHash, FieldAuthSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if user.Email == "" || !strings.Contains(user.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldAuthHash:
			if user.AuthHash == "" {
				return ErrEmptyAuthHash
			}
		case FieldAuthSalt:
			if user.AuthSalt == "" {
				return ErrEmptyAuthSalt
			}
		case FieldUserID:
			if user.UserID == "" {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
