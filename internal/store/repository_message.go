// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/jackc/pgerrcode"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository].
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a message with a server-assigned sequence number.
//
// The whole operation runs in one transaction:
//  1. the conversation row is locked (SELECT ... FOR UPDATE), serializing
//     concurrent inserts into the same conversation;
//  2. the next sequence number is read as MAX(sequence_number)+1;
//  3. the message is inserted and the conversation timestamp refreshed.
//
// Any sequence number supplied by the client is ignored. Inserting an ID
// that already exists returns the stored row and [ErrDuplicateMessage], so
// redelivery after a lost acknowledgement converges on the first insert.
func (r *messageRepository) Insert(ctx context.Context, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.Insert").Msg("failed to begin transaction")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var lastMessageAt sql.NullTime
	if err := tx.QueryRowContext(ctx, lockConversation, msg.ConversationID).Scan(&lastMessageAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Message{}, ErrConversationNotFound
		}

		log.Err(err).Str("func", "*messageRepository.Insert").Str("conversation_id", msg.ConversationID).Msg("failed to lock conversation")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var maxSeq int64
	if err := tx.QueryRowContext(ctx, maxSequenceNumber, msg.ConversationID).Scan(&maxSeq); err != nil {
		log.Err(err).Str("func", "*messageRepository.Insert").Str("conversation_id", msg.ConversationID).Msg("failed to read max sequence number")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var saved models.Message
	row := tx.QueryRowContext(ctx, insertMessage,
		msg.ID,
		msg.ConversationID,
		msg.SenderID,
		msg.EncryptedContent,
		msg.IV,
		maxSeq+1,
	)
	if err := row.Scan(&saved.ID, &saved.ConversationID, &saved.SenderID, &saved.EncryptedContent, &saved.IV, &saved.SequenceNumber, &saved.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			// Same client UUID delivered twice. Return the original row.
			existing, getErr := r.GetByID(ctx, msg.ID)
			if getErr != nil {
				return models.Message{}, getErr
			}
			return existing, ErrDuplicateMessage
		}

		log.Err(err).Str("func", "*messageRepository.Insert").Str("message_id", msg.ID).Msg("failed to insert message")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err := tx.ExecContext(ctx, touchConversation, msg.ConversationID); err != nil {
		log.Err(err).Str("func", "*messageRepository.Insert").Str("conversation_id", msg.ConversationID).Msg("failed to touch conversation")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*messageRepository.Insert").Msg("failed to commit transaction")
		return models.Message{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// NextSequenceNumber returns MAX(sequence_number)+1 for the conversation.
// The value is advisory: a concurrent insert may claim it first.
func (r *messageRepository) NextSequenceNumber(ctx context.Context, conversationID string) (int64, error) {
	log := logger.FromContext(ctx)

	var next int64
	row := r.db.QueryRowContext(ctx, nextSequenceNumber, conversationID)
	if err := row.Scan(&next); err != nil {
		log.Err(err).Str("func", "*messageRepository.NextSequenceNumber").Str("conversation_id", conversationID).Msg("failed to read next sequence number")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return next, nil
}

// UpdateLastMessageAt refreshes the conversation activity timestamp.
func (r *messageRepository) UpdateLastMessageAt(ctx context.Context, conversationID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, touchConversation, conversationID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.UpdateLastMessageAt").Str("conversation_id", conversationID).Msg("failed to touch conversation")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrConversationNotFound
	}

	return nil
}

// GetByID fetches a single message by its client-assigned UUID.
func (r *messageRepository) GetByID(ctx context.Context, messageID string) (models.Message, error) {
	log := logger.FromContext(ctx)

	var msg models.Message
	row := r.db.QueryRowContext(ctx, getMessageByID, messageID)
	if err := row.Scan(&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.EncryptedContent, &msg.IV, &msg.SequenceNumber, &msg.CreatedAt, &msg.DeliveredAt, &msg.Edited, &msg.Deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Message{}, ErrMessageNotFound
		}

		log.Err(err).Str("func", "*messageRepository.GetByID").Str("message_id", messageID).Msg("error: scanning error")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return msg, nil
}

// EnsureConversation creates the conversation row if missing. Conversation
// IDs are derived deterministically on the client, so concurrent creation of
// the same conversation is expected and resolved by ON CONFLICT DO NOTHING.
func (r *messageRepository) EnsureConversation(ctx context.Context, conversation models.Conversation) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, ensureConversation, conversation.ID, conversation.Title); err != nil {
		log.Err(err).Str("func", "*messageRepository.EnsureConversation").Str("conversation_id", conversation.ID).Msg("failed to ensure conversation")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
