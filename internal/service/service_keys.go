package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// keyService is the concrete implementation of KeyService. The server only
// ever stores public key material; validation here is structural.
type keyService struct {
	keyRepository store.KeyRepository
	logger        *logger.Logger
}

// NewKeyService constructs a KeyService backed by the given repository.
func NewKeyService(keyRepository store.KeyRepository, logger *logger.Logger) KeyService {
	return &keyService{
		keyRepository: keyRepository,
		logger:        logger,
	}
}

// Upsert publishes or replaces the key record of record.UserID.
//
// Returns the stored record or:
//   - ErrInvalidDataProvided if UserID, the public key coordinates or the
//     salt is missing. Records without a salt cannot be re-derived from a
//     password and would be flagged for migration on first use.
func (k *keyService) Upsert(ctx context.Context, record models.KeyRecord) (models.KeyRecord, error) {
	log := logger.FromContext(ctx)

	if record.UserID == "" || record.PublicKey.X == "" || record.PublicKey.Y == "" || record.Salt == "" {
		log.Error().Str("user_id", record.UserID).Msg("invalid key record provided")
		return models.KeyRecord{}, ErrInvalidDataProvided
	}

	saved, err := k.keyRepository.Upsert(ctx, record)
	if err != nil {
		log.Err(err).Str("user_id", record.UserID).Msg("key record upsert failed")
		return models.KeyRecord{}, fmt.Errorf("key record upsert failed: %w", err)
	}

	return saved, nil
}

// Get fetches the key record of userID. A missing record surfaces as a
// wrapped store.ErrKeysNotFound.
func (k *keyService) Get(ctx context.Context, userID string) (models.KeyRecord, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.KeyRecord{}, ErrInvalidDataProvided
	}

	record, err := k.keyRepository.Get(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("key record lookup failed")
		return models.KeyRecord{}, fmt.Errorf("key record lookup failed: %w", err)
	}

	return record, nil
}
