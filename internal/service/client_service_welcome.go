// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/utils"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/google/uuid"
)

// welcomeText is the plaintext of the one-time greeting. It is encrypted for
// each recipient individually, like any other message.
const welcomeText = "Welcome to chat-keeper! Your messages here are end-to-end encrypted: only you and the person you write to can read them."

// welcomeNamespace scopes the deterministic welcome conversation IDs so they
// cannot collide with conversation IDs derived for any other purpose.
var welcomeNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

type welcomeService struct {
	remote     adapter.RemoteStore
	keys       KeyManagementService
	encryption EncryptionService
	ids        *utils.UUIDGenerator

	adminUserID   string
	welcomeSecret string
}

// NewWelcomeService constructs a [WelcomeService] sending greetings from the
// admin identity configured in appCfg. The admin's key pair is derived from
// the welcome secret, so the greeting is encrypted end to end like any other
// message.
func NewWelcomeService(remote adapter.RemoteStore, keys KeyManagementService, encryption EncryptionService, appCfg config.ClientApp) WelcomeService {
	return &welcomeService{
		remote:        remote,
		keys:          keys,
		encryption:    encryption,
		ids:           utils.NewUUIDGenerator(),
		adminUserID:   appCfg.AdminUserID,
		welcomeSecret: appCfg.WelcomeSecret,
	}
}

func (w *welcomeService) InitializeAdminKeys(ctx context.Context) error {
	if w.adminUserID == "" || w.welcomeSecret == "" {
		return fmt.Errorf("welcome sender is not configured")
	}

	_, err := w.keys.EnsureKeys(ctx, w.adminUserID, w.welcomeSecret)
	if errors.Is(err, ErrKeyMismatch) {
		// A stored record the secret no longer derives is corrupt. It is
		// replaced, not accepted: greetings must stay decryptable.
		if _, err := w.keys.InitializeKeys(ctx, w.adminUserID, w.welcomeSecret); err != nil {
			return fmt.Errorf("reinitialize admin keys: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("initialize admin keys: %w", err)
	}

	return nil
}

func (w *welcomeService) SendWelcome(ctx context.Context, user models.User) error {
	sent, err := w.remote.WelcomeSent(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("check welcome flag: %w", mapRemoteError(err))
	}
	if sent {
		return nil
	}

	// Both a retried send and a concurrent one derive the same conversation
	// ID, so at most one welcome conversation exists per user.
	conversationID := w.ids.GenerateDeterministic(welcomeNamespace, w.adminUserID+":"+user.UserID)
	if err := w.remote.EnsureConversation(ctx, models.Conversation{ID: conversationID, Title: "Welcome"}); err != nil {
		return fmt.Errorf("ensure welcome conversation: %w", mapRemoteError(err))
	}

	content, iv, err := w.encryption.EncryptFor(ctx, user.UserID, welcomeText)
	if err != nil {
		return fmt.Errorf("encrypt welcome message: %w", err)
	}

	_, err = w.remote.InsertMessage(ctx, models.Message{
		ID:               w.ids.Generate(),
		ConversationID:   conversationID,
		SenderID:         w.adminUserID,
		EncryptedContent: content,
		IV:               iv,
	})
	if err != nil && !errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("deliver welcome message: %w", mapRemoteError(err))
	}

	if err := w.remote.MarkWelcomeSent(ctx, user.UserID); err != nil {
		return fmt.Errorf("mark welcome sent: %w", mapRemoteError(err))
	}

	return nil
}
