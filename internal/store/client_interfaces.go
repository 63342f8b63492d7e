package store

import (
	"context"

	"github.com/MKhiriev/go-chat-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// QueueRepository is the durable client-side outbound message queue.
// Rows survive restarts; the sync worker drains them in FIFO order.
type QueueRepository interface {
	Enqueue(ctx context.Context, msg models.QueuedMessage) error

	// GetUnsynced returns every message that has not reached the server,
	// in enqueue order: pending rows, rows stranded in processing by a
	// crash, and parked failed rows.
	GetUnsynced(ctx context.Context) ([]models.QueuedMessage, error)

	// UpdateStatus moves a queued message to the given status. Returns
	// [ErrQueuedMessageNotFound] when the row no longer exists.
	UpdateStatus(ctx context.Context, id string, status models.MessageStatus) error

	// MarkSynced records a successful delivery: status becomes sent,
	// synced_at is stamped and the server-assigned sequence number is
	// written over the advisory one.
	MarkSynced(ctx context.Context, id string, sequenceNumber int64) error

	// RecordFailure increments the retry counter, stores the error text,
	// and sets the given status (pending for retry, failed when the
	// budget is exhausted).
	RecordFailure(ctx context.Context, id string, status models.MessageStatus, lastError string) error

	Remove(ctx context.Context, id string) error
	RemoveSynced(ctx context.Context) error
	RemoveAll(ctx context.Context) error

	// ResetFailed returns all failed messages to pending with a zeroed
	// retry counter so a manual retry starts fresh.
	ResetFailed(ctx context.Context) (int64, error)
}

// ConflictRepository is the client-side journal of detected edit conflicts
// awaiting manual resolution.
type ConflictRepository interface {
	Save(ctx context.Context, conflict models.ConflictInfo) error
	Get(ctx context.Context, id string) (models.ConflictInfo, error)
	GetPending(ctx context.Context) ([]models.ConflictInfo, error)

	// MarkResolved stores the user's choice. Only pending conflicts are
	// updated; resolving a missing or already resolved conflict returns
	// [ErrConflictNotFound].
	MarkResolved(ctx context.Context, id string, choice models.ConflictChoice) error
}
