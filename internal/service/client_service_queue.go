// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/internal/utils"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// MaxRetries is the delivery retry budget per message. Once exhausted the
// message is parked as failed until the user retries it explicitly.
const MaxRetries = 5

type offlineQueueService struct {
	queue      store.QueueRepository
	remote     adapter.RemoteStore
	encryption EncryptionService
	ids        *utils.UUIDGenerator
	logger     *logger.Logger

	syncing atomic.Bool
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewOfflineQueueService constructs an [OfflineQueueService] backed by the
// durable local queue. Delivery goes through remote; payloads are encrypted
// at enqueue time so plaintext never touches the queue.
func NewOfflineQueueService(queue store.QueueRepository, remote adapter.RemoteStore, encryption EncryptionService, log *logger.Logger) OfflineQueueService {
	return &offlineQueueService{
		queue:      queue,
		remote:     remote,
		encryption: encryption,
		ids:        utils.NewUUIDGenerator(),
		logger:     log,
		sleep:      sleepContext,
	}
}

func (s *offlineQueueService) QueueMessage(ctx context.Context, conversationID, senderID, recipientID, plaintext string) (models.QueuedMessage, error) {
	content, iv, err := s.encryption.EncryptFor(ctx, recipientID, plaintext)
	if err != nil {
		return models.QueuedMessage{}, err
	}

	// Best effort: the advisory number only orders the local view. Enqueue
	// must succeed while offline.
	var seq int64
	if next, err := s.remote.NextSequenceNumber(ctx, conversationID); err == nil {
		seq = next
	} else {
		s.logger.Debug().Err(err).Str("conversation_id", conversationID).Msg("advisory sequence number unavailable, queueing without it")
	}

	msg := models.QueuedMessage{
		ID:               s.ids.Generate(),
		ConversationID:   conversationID,
		SenderID:         senderID,
		EncryptedContent: content,
		IV:               iv,
		SequenceNumber:   seq,
		Status:           models.StatusPending,
	}

	if err := s.queue.Enqueue(ctx, msg); err != nil {
		return models.QueuedMessage{}, fmt.Errorf("enqueue message: %w", err)
	}

	return msg, nil
}

func (s *offlineQueueService) SyncPending(ctx context.Context) (models.SyncReport, error) {
	// Single flight: a pass already in progress owns the queue.
	if !s.syncing.CompareAndSwap(false, true) {
		return models.SyncReport{}, nil
	}
	defer s.syncing.Store(false)

	pending, err := s.queue.GetUnsynced(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("load pending messages: %w", err)
	}

	log := logger.FromContext(ctx)

	var report models.SyncReport
	for _, msg := range pending {
		// Parked rows stay visible in the queue but only an explicit
		// RetryFailed puts them back into rotation.
		if msg.Status == models.StatusFailed {
			continue
		}

		// A crash between the retry increment and the status flip can leave
		// a pending row with a spent budget. Park it instead of retrying.
		if msg.RetryCount >= MaxRetries {
			if err := s.queue.UpdateStatus(ctx, msg.ID, models.StatusFailed); err != nil && !errors.Is(err, store.ErrQueuedMessageNotFound) {
				return report, fmt.Errorf("park message %s: %w", msg.ID, err)
			}
			report.Failed++
			continue
		}

		if err := s.queue.UpdateStatus(ctx, msg.ID, models.StatusProcessing); err != nil {
			if errors.Is(err, store.ErrQueuedMessageNotFound) {
				// Removed while the pass was running, e.g. a deleted draft.
				continue
			}
			return report, fmt.Errorf("claim message %s: %w", msg.ID, err)
		}

		// A previously failed message waits out its backoff before the
		// next attempt.
		if msg.RetryCount > 0 {
			if err := s.sleep(ctx, retryDelay(msg.RetryCount)); err != nil {
				return report, err
			}
		}

		delivered, err := s.deliver(ctx, msg)
		if err != nil {
			return report, err
		}
		if delivered {
			report.Synced++
			continue
		}
		log.Debug().Str("message_id", msg.ID).Int("retries", msg.RetryCount+1).Msg("delivery attempt failed")
		report.Failed++
	}

	return report, nil
}

func (s *offlineQueueService) PendingMessages(ctx context.Context) ([]models.QueuedMessage, error) {
	return s.queue.GetUnsynced(ctx)
}

func (s *offlineQueueService) RetryFailed(ctx context.Context) (int64, error) {
	return s.queue.ResetFailed(ctx)
}

func (s *offlineQueueService) RemoveFromQueue(ctx context.Context, id string) error {
	return s.queue.Remove(ctx, id)
}

func (s *offlineQueueService) ClearSynced(ctx context.Context) error {
	return s.queue.RemoveSynced(ctx)
}

func (s *offlineQueueService) ClearQueue(ctx context.Context) error {
	return s.queue.RemoveAll(ctx)
}

// deliver makes exactly one delivery attempt. The retry counter is persisted
// after a failed attempt so progress survives restarts; the next pass picks
// the message up again after its backoff.
//
// Return values: (true, nil) delivered; (false, nil) attempt failed, retry
// state recorded; (false, err) the whole pass must abort.
func (s *offlineQueueService) deliver(ctx context.Context, msg models.QueuedMessage) (bool, error) {
	log := logger.FromContext(ctx)

	// Refresh the advisory number for messages enqueued while offline. The
	// server assigns the authoritative one at insert, so a stale hint is
	// harmless and a fetch error is not worth failing the attempt over.
	if msg.SequenceNumber == 0 {
		if next, err := s.remote.NextSequenceNumber(ctx, msg.ConversationID); err == nil {
			msg.SequenceNumber = next
		}
	}

	saved, err := s.remote.InsertMessage(ctx, models.Message{
		ID:               msg.ID,
		ConversationID:   msg.ConversationID,
		SenderID:         msg.SenderID,
		EncryptedContent: msg.EncryptedContent,
		IV:               msg.IV,
		SequenceNumber:   msg.SequenceNumber,
	})
	if err == nil || errors.Is(err, adapter.ErrConflict) {
		// 409 means a previous attempt landed and the ack was lost. Both
		// bodies carry the stored row with the authoritative sequence.
		if recErr := s.queue.MarkSynced(ctx, msg.ID, saved.SequenceNumber); recErr != nil && !errors.Is(recErr, store.ErrQueuedMessageNotFound) {
			return false, fmt.Errorf("mark message %s synced: %w", msg.ID, recErr)
		}
		return true, nil
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		// Retrying other messages with a dead token is pointless. The
		// message itself is fine, so it goes back to pending uncounted.
		if recErr := s.queue.UpdateStatus(ctx, msg.ID, models.StatusPending); recErr != nil && !errors.Is(recErr, store.ErrQueuedMessageNotFound) {
			log.Err(recErr).Str("message_id", msg.ID).Msg("failed to release claimed message")
		}
		return false, fmt.Errorf("deliver message %s: %w", msg.ID, mapRemoteError(err))
	}

	retries := msg.RetryCount + 1
	status := models.StatusPending
	if retries >= MaxRetries {
		status = models.StatusFailed
		log.Warn().Str("message_id", msg.ID).Int("retries", retries).Msg("delivery retry budget exhausted")
	}
	if recErr := s.queue.RecordFailure(ctx, msg.ID, status, err.Error()); recErr != nil && !errors.Is(recErr, store.ErrQueuedMessageNotFound) {
		return false, fmt.Errorf("record failure for message %s: %w", msg.ID, recErr)
	}

	return false, nil
}

// retryDelay returns the backoff a message with the given retry count waits
// before its next attempt: 1s, 2s, 4s, 8s...
func retryDelay(retries int) time.Duration {
	return time.Second << (retries - 1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
