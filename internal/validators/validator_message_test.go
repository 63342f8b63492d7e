package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() models.Message {
	return models.Message{
		ID:               "2f9a1c00-0000-4000-8000-000000000010",
		ConversationID:   "6d3e0b00-0000-4000-8000-000000000020",
		SenderID:         "user-1",
		EncryptedContent: "Y2lwaGVydGV4dA==",
		IV:               "bm9uY2U=",
	}
}

func TestMessageValidator_Message_Valid(t *testing.T) {
	v := NewMessageValidator()
	assert.NoError(t, v.Validate(context.Background(), validMessage()))
}

func TestMessageValidator_Message_PointerReceiver(t *testing.T) {
	v := NewMessageValidator()
	msg := validMessage()
	assert.NoError(t, v.Validate(context.Background(), &msg))
}

func TestMessageValidator_Message_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Message)
		wantErr error
	}{
		{"empty id", func(m *models.Message) { m.ID = "" }, ErrInvalidMessageID},
		{"empty conversation", func(m *models.Message) { m.ConversationID = "" }, ErrInvalidConversationID},
		{"empty sender", func(m *models.Message) { m.SenderID = "" }, ErrInvalidSenderID},
		{"empty ciphertext", func(m *models.Message) { m.EncryptedContent = "" }, ErrEmptyCiphertext},
		{"empty iv", func(m *models.Message) { m.IV = "" }, ErrEmptyIV},
	}

	v := NewMessageValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.mutate(&msg)
			assert.ErrorIs(t, v.Validate(context.Background(), msg), tt.wantErr)
		})
	}
}

func TestMessageValidator_Message_FieldScoping(t *testing.T) {
	v := NewMessageValidator()
	msg := validMessage()
	msg.EncryptedContent = ""

	// проверяем только ID — пустой ciphertext не должен мешать
	assert.NoError(t, v.Validate(context.Background(), msg, FieldMessageID))
	assert.ErrorIs(t, v.Validate(context.Background(), msg, FieldCiphertext), ErrEmptyCiphertext)
}

func TestMessageValidator_Message_UnknownField(t *testing.T) {
	v := NewMessageValidator()
	err := v.Validate(context.Background(), validMessage(), "no_such_field")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestMessageValidator_Conversation(t *testing.T) {
	v := NewMessageValidator()

	assert.NoError(t, v.Validate(context.Background(), models.Conversation{ID: "conv-1"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.Conversation{}), ErrInvalidConversationID)
}

func TestMessageValidator_KeyRecord(t *testing.T) {
	record := models.KeyRecord{
		UserID:       "user-1",
		PublicKey:    models.JWK{Kty: "EC", Crv: "P-256", X: "eA", Y: "eQ"},
		Salt:         "c2FsdA==",
		CurveVersion: models.CurrentCurveVersion,
	}

	v := NewMessageValidator()
	require.NoError(t, v.Validate(context.Background(), record))

	noKey := record
	noKey.PublicKey = models.JWK{}
	assert.ErrorIs(t, v.Validate(context.Background(), noKey), ErrEmptyPublicKey)

	noSalt := record
	noSalt.Salt = ""
	assert.ErrorIs(t, v.Validate(context.Background(), noSalt), ErrEmptyKeySalt)

	legacy := record
	legacy.CurveVersion = 0
	assert.ErrorIs(t, v.Validate(context.Background(), legacy), ErrInvalidCurveVersion)
}

func TestMessageValidator_User(t *testing.T) {
	user := models.User{
		Email:    "user@example.com",
		AuthHash: "deadbeef",
		AuthSalt: "c2FsdA==",
	}

	v := NewMessageValidator()
	require.NoError(t, v.Validate(context.Background(), user))

	badEmail := user
	badEmail.Email = "not-an-email"
	assert.ErrorIs(t, v.Validate(context.Background(), badEmail), ErrInvalidEmail)

	noHash := user
	noHash.AuthHash = ""
	assert.ErrorIs(t, v.Validate(context.Background(), noHash), ErrEmptyAuthHash)

	// login payload carries no salt, validate only what it sends
	loginUser := models.User{Email: "user@example.com", AuthHash: "deadbeef"}
	assert.NoError(t, v.Validate(context.Background(), loginUser, FieldEmail, FieldAuthHash))
}

func TestMessageValidator_UnsupportedType(t *testing.T) {
	v := NewMessageValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
