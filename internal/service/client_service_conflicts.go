package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/internal/utils"
	"github.com/MKhiriev/go-chat-keeper/models"
)

type conflictResolutionEngine struct {
	conflicts store.ConflictRepository
	queue     store.QueueRepository
	ids       *utils.UUIDGenerator
}

// NewConflictResolutionEngine constructs a [ConflictResolutionEngine] that
// journals conflicts in the local store and re-queues the local version when
// the user picks it.
func NewConflictResolutionEngine(conflicts store.ConflictRepository, queue store.QueueRepository) ConflictResolutionEngine {
	return &conflictResolutionEngine{
		conflicts: conflicts,
		queue:     queue,
		ids:       utils.NewUUIDGenerator(),
	}
}

func (c *conflictResolutionEngine) DetectConflict(ctx context.Context, entityType, entityID, conversationID string, base *models.EntityVersion, local, remote models.EntityVersion) (*models.ConflictInfo, error) {
	// Identical content is never a conflict, whatever the timestamps say.
	if local.Content == remote.Content {
		return nil, nil
	}

	if base != nil {
		// Only one side moved away from the ancestor: fast-forward, not a
		// conflict. The caller applies the newer side.
		if local.Content == base.Content || remote.Content == base.Content {
			return nil, nil
		}
	}

	conflict := models.ConflictInfo{
		ID:             c.ids.Generate(),
		EntityType:     entityType,
		EntityID:       entityID,
		ConversationID: conversationID,
		Base:           base,
		Local:          local,
		Remote:         remote,
		Status:         models.ConflictPending,
	}

	if err := c.conflicts.Save(ctx, conflict); err != nil {
		return nil, fmt.Errorf("save conflict: %w", err)
	}

	return &conflict, nil
}

func (c *conflictResolutionEngine) PendingConflicts(ctx context.Context) ([]models.ConflictInfo, error) {
	return c.conflicts.GetPending(ctx)
}

func (c *conflictResolutionEngine) ResolveConflict(ctx context.Context, conflictID string, choice models.ConflictChoice) error {
	conflict, err := c.conflicts.Get(ctx, conflictID)
	if err != nil {
		return err
	}
	if conflict.Status == models.ConflictResolved {
		return ErrConflictAlreadyResolved
	}

	if err := c.conflicts.MarkResolved(ctx, conflictID, choice); err != nil {
		if errors.Is(err, store.ErrConflictNotFound) {
			// Lost the race to another resolver.
			return ErrConflictAlreadyResolved
		}
		return fmt.Errorf("mark conflict resolved: %w", err)
	}

	// Picking the remote version means the local edit is simply dropped.
	if choice != models.ChoiceLocal {
		return nil
	}

	// Picking the local version puts it back on the wire under a fresh
	// message ID so the server stores it as the newest revision.
	requeued := models.QueuedMessage{
		ID:               c.ids.Generate(),
		ConversationID:   conflict.ConversationID,
		SenderID:         conflict.Local.Author,
		EncryptedContent: conflict.Local.Content,
		IV:               conflict.Local.IV,
		Status:           models.StatusPending,
	}
	if err := c.queue.Enqueue(ctx, requeued); err != nil {
		return fmt.Errorf("requeue local version: %w", err)
	}

	return nil
}
