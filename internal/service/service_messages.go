// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// messageService is the concrete implementation of MessageService. It treats
// message content as opaque ciphertext and enforces only structural
// invariants; sequence numbers are assigned by the repository inside the
// insert transaction.
type messageService struct {
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

// NewMessageService constructs a MessageService backed by the given repository.
func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// Insert validates and persists one encrypted message.
//
// Returns the stored row (with the server-assigned sequence number) or:
//   - ErrInvalidDataProvided if ID, ConversationID or SenderID is empty.
//   - ErrEmptyMessageContent if the ciphertext or nonce is missing.
//   - The stored row together with a wrapped store.ErrDuplicateMessage when
//     the ID was already inserted.
//   - A wrapped store.ErrConversationNotFound if the conversation is unknown.
func (m *messageService) Insert(ctx context.Context, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	if msg.ID == "" || msg.ConversationID == "" || msg.SenderID == "" {
		log.Error().Str("message_id", msg.ID).Msg("invalid message data provided")
		return models.Message{}, ErrInvalidDataProvided
	}
	if msg.EncryptedContent == "" || msg.IV == "" {
		log.Error().Str("message_id", msg.ID).Msg("message without ciphertext or nonce")
		return models.Message{}, ErrEmptyMessageContent
	}

	saved, err := m.messageRepository.Insert(ctx, msg)
	if err != nil {
		log.Err(err).Str("message_id", msg.ID).Msg("message insert failed")
		return saved, fmt.Errorf("message insert failed: %w", err)
	}

	return saved, nil
}

// NextSequenceNumber returns the advisory next sequence number for the
// conversation. The authoritative value is still assigned at insert time.
func (m *messageService) NextSequenceNumber(ctx context.Context, conversationID string) (int64, error) {
	log := logger.FromContext(ctx)

	if conversationID == "" {
		return 0, ErrInvalidDataProvided
	}

	next, err := m.messageRepository.NextSequenceNumber(ctx, conversationID)
	if err != nil {
		log.Err(err).Str("conversation_id", conversationID).Msg("next sequence lookup failed")
		return 0, fmt.Errorf("next sequence lookup failed: %w", err)
	}

	return next, nil
}

// UpdateLastMessageAt refreshes the conversation activity timestamp. The at
// argument is accepted for interface symmetry with the client adapter; the
// repository stamps the row with the database clock.
func (m *messageService) UpdateLastMessageAt(ctx context.Context, conversationID string, _ time.Time) error {
	log := logger.FromContext(ctx)

	if conversationID == "" {
		return ErrInvalidDataProvided
	}

	if err := m.messageRepository.UpdateLastMessageAt(ctx, conversationID); err != nil {
		log.Err(err).Str("conversation_id", conversationID).Msg("last message timestamp update failed")
		return fmt.Errorf("last message timestamp update failed: %w", err)
	}

	return nil
}

// EnsureConversation creates the conversation if it does not exist. Safe to
// call repeatedly with the same ID.
func (m *messageService) EnsureConversation(ctx context.Context, conversation models.Conversation) error {
	log := logger.FromContext(ctx)

	if conversation.ID == "" {
		return ErrInvalidDataProvided
	}

	if err := m.messageRepository.EnsureConversation(ctx, conversation); err != nil {
		log.Err(err).Str("conversation_id", conversation.ID).Msg("conversation creation failed")
		return fmt.Errorf("conversation creation failed: %w", err)
	}

	return nil
}

// GetByID fetches a single stored message.
func (m *messageService) GetByID(ctx context.Context, messageID string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if messageID == "" {
		return models.Message{}, ErrInvalidDataProvided
	}

	msg, err := m.messageRepository.GetByID(ctx, messageID)
	if err != nil {
		log.Err(err).Str("message_id", messageID).Msg("message lookup failed")
		return models.Message{}, fmt.Errorf("message lookup failed: %w", err)
	}

	return msg, nil
}
