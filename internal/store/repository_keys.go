package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// keyRepository is the PostgreSQL-backed implementation of [KeyRepository].
// Public keys are stored as JSONB in the "encryption_keys" table, one row per
// user.
type keyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKeyRepository constructs a [KeyRepository] backed by the provided
// database connection and logger.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts or replaces the key record for record.UserID and returns
// the stored row. Re-registration from a new device overwrites the previous
// public key, salt and device binding in one statement.
func (r *keyRepository) Upsert(ctx context.Context, record models.KeyRecord) (models.KeyRecord, error) {
	log := logger.FromContext(ctx)

	publicKeyJSON, err := json.Marshal(record.PublicKey)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.Upsert").Msg("failed to marshal public key")
		return models.KeyRecord{}, fmt.Errorf("failed to marshal public key: %w", err)
	}

	var saved models.KeyRecord
	var savedPublicKey []byte
	row := r.db.QueryRowContext(ctx, upsertKeyRecord,
		record.UserID,
		publicKeyJSON,
		record.Salt,
		record.DeviceID,
		record.CurveVersion,
		record.ExpiresAt,
	)
	if err := row.Scan(&saved.UserID, &savedPublicKey, &saved.Salt, &saved.DeviceID, &saved.CurveVersion, &saved.ExpiresAt, &saved.Revoked, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*keyRepository.Upsert").Str("user_id", record.UserID).Msg("failed to upsert key record")
		return models.KeyRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := json.Unmarshal(savedPublicKey, &saved.PublicKey); err != nil {
		log.Err(err).Str("func", "*keyRepository.Upsert").Str("user_id", record.UserID).Msg("failed to unmarshal stored public key")
		return models.KeyRecord{}, fmt.Errorf("failed to unmarshal stored public key: %w", err)
	}

	return saved, nil
}

// Get fetches the key record for the given user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrKeysNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *keyRepository) Get(ctx context.Context, userID string) (models.KeyRecord, error) {
	log := logger.FromContext(ctx)

	var record models.KeyRecord
	var publicKeyJSON []byte
	row := r.db.QueryRowContext(ctx, getKeyRecord, userID)
	if err := row.Scan(&record.UserID, &publicKeyJSON, &record.Salt, &record.DeviceID, &record.CurveVersion, &record.ExpiresAt, &record.Revoked, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.KeyRecord{}, ErrKeysNotFound
		}

		log.Err(err).Str("func", "*keyRepository.Get").Str("user_id", userID).Msg("error: scanning error")
		return models.KeyRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := json.Unmarshal(publicKeyJSON, &record.PublicKey); err != nil {
		log.Err(err).Str("func", "*keyRepository.Get").Str("user_id", userID).Msg("failed to unmarshal stored public key")
		return models.KeyRecord{}, fmt.Errorf("failed to unmarshal stored public key: %w", err)
	}

	return record, nil
}
