// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/mock"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWelcomeSvc — хелпер для создания welcomeService с моками
func newTestWelcomeSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*welcomeService,
	*mock.MockRemoteStore,
	*mock.MockKeyManagementService,
	*mock.MockEncryptionService,
) {
	t.Helper()
	mockRemote := mock.NewMockRemoteStore(ctrl)
	mockKeys := mock.NewMockKeyManagementService(ctrl)
	mockEncryption := mock.NewMockEncryptionService(ctrl)

	appCfg := config.ClientApp{AdminUserID: "admin-1", WelcomeSecret: "welcome-secret"}
	svc := NewWelcomeService(mockRemote, mockKeys, mockEncryption, appCfg).(*welcomeService)
	return svc, mockRemote, mockKeys, mockEncryption
}

// ── InitializeAdminKeys ──────────────────────────────────────────────────────

func TestWelcomeService_InitializeAdminKeys_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeys, _ := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()

	mockKeys.EXPECT().EnsureKeys(ctx, "admin-1", "welcome-secret").Return(models.KeyRecord{UserID: "admin-1"}, nil)

	err := svc.InitializeAdminKeys(ctx)
	require.NoError(t, err)
}

func TestWelcomeService_InitializeAdminKeys_MismatchReinitializes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeys, _ := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()

	// секрет больше не выводит сохранённый ключ — запись считается
	// повреждённой и пересоздаётся, а не принимается молча
	gomock.InOrder(
		mockKeys.EXPECT().EnsureKeys(ctx, "admin-1", "welcome-secret").Return(models.KeyRecord{}, ErrKeyMismatch),
		mockKeys.EXPECT().InitializeKeys(ctx, "admin-1", "welcome-secret").Return(models.KeyRecord{UserID: "admin-1"}, nil),
	)

	err := svc.InitializeAdminKeys(ctx)
	require.NoError(t, err)
}

func TestWelcomeService_InitializeAdminKeys_ReinitializeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeys, _ := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()

	publishErr := errors.New("publish rejected")
	gomock.InOrder(
		mockKeys.EXPECT().EnsureKeys(ctx, "admin-1", "welcome-secret").Return(models.KeyRecord{}, ErrKeyMismatch),
		mockKeys.EXPECT().InitializeKeys(ctx, "admin-1", "welcome-secret").Return(models.KeyRecord{}, publishErr),
	)

	err := svc.InitializeAdminKeys(ctx)
	assert.ErrorIs(t, err, publishErr)
}

func TestWelcomeService_InitializeAdminKeys_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRemote := mock.NewMockRemoteStore(ctrl)
	mockKeys := mock.NewMockKeyManagementService(ctrl)
	mockEncryption := mock.NewMockEncryptionService(ctrl)

	svc := NewWelcomeService(mockRemote, mockKeys, mockEncryption, config.ClientApp{})

	err := svc.InitializeAdminKeys(context.Background())
	require.Error(t, err)
}

// ── SendWelcome ──────────────────────────────────────────────────────────────

func TestWelcomeService_SendWelcome_FullFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, _, mockEncryption := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{UserID: "user-1", Email: "user@example.com"}

	var conversationID string

	gomock.InOrder(
		mockRemote.EXPECT().WelcomeSent(ctx, "user-1").Return(false, nil),
		mockRemote.EXPECT().EnsureConversation(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, conv models.Conversation) error {
				assert.NotEmpty(t, conv.ID)
				assert.Equal(t, "Welcome", conv.Title)
				conversationID = conv.ID
				return nil
			}),
		mockEncryption.EXPECT().EncryptFor(ctx, "user-1", gomock.Any()).Return("cipher", "iv", nil),
		mockRemote.EXPECT().InsertMessage(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg models.Message) (models.Message, error) {
				assert.Equal(t, conversationID, msg.ConversationID)
				assert.Equal(t, "admin-1", msg.SenderID)
				assert.Equal(t, "cipher", msg.EncryptedContent)
				assert.Equal(t, "iv", msg.IV)
				return msg, nil
			}),
		mockRemote.EXPECT().MarkWelcomeSent(ctx, "user-1").Return(nil),
	)

	err := svc.SendWelcome(ctx, user)
	require.NoError(t, err)
}

func TestWelcomeService_SendWelcome_AlreadySent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, _, _ := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()

	// флаг уже стоит — ни беседа, ни сообщение не создаются
	mockRemote.EXPECT().WelcomeSent(ctx, "user-1").Return(true, nil)

	err := svc.SendWelcome(ctx, models.User{UserID: "user-1"})
	require.NoError(t, err)
}

func TestWelcomeService_SendWelcome_DeterministicConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, _, mockEncryption := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{UserID: "user-1"}

	var firstID, secondID string

	mockRemote.EXPECT().WelcomeSent(ctx, "user-1").Return(false, nil).Times(2)
	mockRemote.EXPECT().EnsureConversation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, conv models.Conversation) error {
			if firstID == "" {
				firstID = conv.ID
			} else {
				secondID = conv.ID
			}
			return nil
		}).Times(2)
	mockEncryption.EXPECT().EncryptFor(ctx, "user-1", gomock.Any()).Return("cipher", "iv", nil).Times(2)
	mockRemote.EXPECT().InsertMessage(ctx, gomock.Any()).Return(models.Message{}, nil).Times(2)
	mockRemote.EXPECT().MarkWelcomeSent(ctx, "user-1").Return(nil).Times(2)

	require.NoError(t, svc.SendWelcome(ctx, user))
	require.NoError(t, svc.SendWelcome(ctx, user))

	// повторная отправка выводит тот же ID беседы
	assert.Equal(t, firstID, secondID)
}

func TestWelcomeService_SendWelcome_DuplicateMessageIsFine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, _, mockEncryption := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{UserID: "user-1"}

	mockRemote.EXPECT().WelcomeSent(ctx, "user-1").Return(false, nil)
	mockRemote.EXPECT().EnsureConversation(ctx, gomock.Any()).Return(nil)
	mockEncryption.EXPECT().EncryptFor(ctx, "user-1", gomock.Any()).Return("cipher", "iv", nil)
	// 409 — прошлая попытка доставила сообщение, но не успела выставить флаг
	mockRemote.EXPECT().InsertMessage(ctx, gomock.Any()).Return(models.Message{}, adapter.ErrConflict)
	mockRemote.EXPECT().MarkWelcomeSent(ctx, "user-1").Return(nil)

	err := svc.SendWelcome(ctx, user)
	require.NoError(t, err)
}

func TestWelcomeService_SendWelcome_EncryptionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, _, mockEncryption := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{UserID: "user-1"}

	mockRemote.EXPECT().WelcomeSent(ctx, "user-1").Return(false, nil)
	mockRemote.EXPECT().EnsureConversation(ctx, gomock.Any()).Return(nil)
	mockEncryption.EXPECT().EncryptFor(ctx, "user-1", gomock.Any()).Return("", "", ErrKeysNotFound)

	err := svc.SendWelcome(ctx, user)
	assert.ErrorIs(t, err, ErrKeysNotFound)
}

func TestWelcomeService_SendWelcome_FlagCheckError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, _, _ := newTestWelcomeSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().WelcomeSent(ctx, "user-1").Return(false, errors.New("server down"))

	err := svc.SendWelcome(ctx, models.User{UserID: "user-1"})
	require.Error(t, err)
}
