package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// queueRepository is the SQLite-backed implementation of [QueueRepository].
type queueRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQueueRepository constructs a [QueueRepository] backed by the local
// SQLite database.
func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	logger.Debug().Msg("creating queue repository")
	return &queueRepository{
		db:     db,
		logger: logger,
	}
}

// Enqueue appends a message to the outbound queue with status pending.
func (r *queueRepository) Enqueue(ctx context.Context, msg models.QueuedMessage) error {
	log := logger.FromContext(ctx)

	query, args, err := enqueueMessageSQL(msg)
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.Enqueue").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*queueRepository.Enqueue").Str("message_id", msg.ID).Msg("failed to enqueue message")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetUnsynced returns every message not yet delivered, in enqueue order.
// That includes rows left in processing by a crashed pass and parked failed
// rows.
func (r *queueRepository) GetUnsynced(ctx context.Context) ([]models.QueuedMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := getUnsyncedSQL()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.GetUnsynced").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.GetUnsynced").Msg("failed to query unsynced messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var messages []models.QueuedMessage
	for rows.Next() {
		var msg models.QueuedMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.SenderID,
			&msg.EncryptedContent,
			&msg.IV,
			&msg.SequenceNumber,
			&msg.Status,
			&msg.RetryCount,
			&msg.LastError,
			&msg.CreatedAt,
			&msg.UpdatedAt,
			&msg.SyncedAt,
		); err != nil {
			log.Err(err).Str("func", "*queueRepository.GetUnsynced").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*queueRepository.GetUnsynced").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// UpdateStatus moves a queued message to the given status.
func (r *queueRepository) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) error {
	query, args, err := updateStatusSQL(id, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOnQueuedMessage(ctx, "*queueRepository.UpdateStatus", id, query, args)
}

// MarkSynced records a successful delivery.
func (r *queueRepository) MarkSynced(ctx context.Context, id string, sequenceNumber int64) error {
	query, args, err := markSyncedSQL(id, sequenceNumber)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOnQueuedMessage(ctx, "*queueRepository.MarkSynced", id, query, args)
}

// RecordFailure increments retry_count, stores the error text and sets the
// given status.
func (r *queueRepository) RecordFailure(ctx context.Context, id string, status models.MessageStatus, lastError string) error {
	query, args, err := recordFailureSQL(id, status, lastError)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOnQueuedMessage(ctx, "*queueRepository.RecordFailure", id, query, args)
}

// Remove deletes a queued message.
func (r *queueRepository) Remove(ctx context.Context, id string) error {
	query, args, err := removeQueuedSQL(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOnQueuedMessage(ctx, "*queueRepository.Remove", id, query, args)
}

// RemoveAll wipes the entire queue regardless of status.
func (r *queueRepository) RemoveAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := removeAllQueuedSQL()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.RemoveAll").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*queueRepository.RemoveAll").Msg("failed to clear queue")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveSynced deletes all messages that reached status sent.
func (r *queueRepository) RemoveSynced(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := removeSyncedSQL()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.RemoveSynced").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*queueRepository.RemoveSynced").Msg("failed to remove synced messages")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ResetFailed returns all failed messages to pending with a zeroed retry
// counter and reports how many rows were reset.
func (r *queueRepository) ResetFailed(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := resetFailedSQL()
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.ResetFailed").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*queueRepository.ResetFailed").Msg("failed to reset failed messages")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	reset, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reset, nil
}

// execOnQueuedMessage runs a statement targeting a single queued message and
// maps a zero-row outcome to [ErrQueuedMessageNotFound]. A missing row is an
// expected race: the sync worker may have removed the message mid-pass.
func (r *queueRepository) execOnQueuedMessage(ctx context.Context, funcName, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("message_id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrQueuedMessageNotFound
	}

	return nil
}
