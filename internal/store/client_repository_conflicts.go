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
)

// conflictRepository is the SQLite-backed implementation of
// [ConflictRepository].
type conflictRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConflictRepository constructs a [ConflictRepository] backed by the local
// SQLite database.
func NewConflictRepository(db *DB, logger *logger.Logger) ConflictRepository {
	logger.Debug().Msg("creating conflict repository")
	return &conflictRepository{
		db:     db,
		logger: logger,
	}
}

// Save persists a newly detected conflict with status pending.
func (r *conflictRepository) Save(ctx context.Context, conflict models.ConflictInfo) error {
	log := logger.FromContext(ctx)

	query, args, err := saveConflictSQL(conflict)
	if err != nil {
		log.Err(err).Str("func", "*conflictRepository.Save").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*conflictRepository.Save").Str("conflict_id", conflict.ID).Msg("failed to save conflict")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Get fetches one conflict by ID. Returns [ErrConflictNotFound] when no such
// row exists.
func (r *conflictRepository) Get(ctx context.Context, id string) (models.ConflictInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := getConflictSQL(id)
	if err != nil {
		log.Err(err).Str("func", "*conflictRepository.Get").Msg("failed to build query")
		return models.ConflictInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	conflict, err := scanConflict(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ConflictInfo{}, ErrConflictNotFound
		}

		log.Err(err).Str("func", "*conflictRepository.Get").Str("conflict_id", id).Msg("error: scanning error")
		return models.ConflictInfo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return conflict, nil
}

// GetPending returns all unresolved conflicts in detection order.
func (r *conflictRepository) GetPending(ctx context.Context) ([]models.ConflictInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := getPendingConflictsSQL()
	if err != nil {
		log.Err(err).Str("func", "*conflictRepository.GetPending").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*conflictRepository.GetPending").Msg("failed to query pending conflicts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var conflicts []models.ConflictInfo
	for rows.Next() {
		conflict, err := scanConflict(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*conflictRepository.GetPending").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		conflicts = append(conflicts, conflict)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*conflictRepository.GetPending").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return conflicts, nil
}

// MarkResolved stores the user's choice. The UPDATE is restricted to rows
// still pending, so a missing or already resolved conflict affects zero rows
// and returns [ErrConflictNotFound].
func (r *conflictRepository) MarkResolved(ctx context.Context, id string, choice models.ConflictChoice) error {
	log := logger.FromContext(ctx)

	query, args, err := markResolvedSQL(id, choice)
	if err != nil {
		log.Err(err).Str("func", "*conflictRepository.MarkResolved").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*conflictRepository.MarkResolved").Str("conflict_id", id).Msg("failed to resolve conflict")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrConflictNotFound
	}

	return nil
}

// scanConflict reads one conflicts row. The base_* columns are nullable: a
// conflict without a common ancestor stores NULLs and yields a nil Base.
func scanConflict(scan func(dest ...any) error) (models.ConflictInfo, error) {
	var conflict models.ConflictInfo
	var baseContent, baseIV, baseAuthor sql.NullString
	var baseUpdatedAt sql.NullTime
	var resolvedAt sql.NullTime

	err := scan(
		&conflict.ID,
		&conflict.EntityType,
		&conflict.EntityID,
		&conflict.ConversationID,
		&baseContent,
		&baseIV,
		&baseUpdatedAt,
		&baseAuthor,
		&conflict.Local.Content,
		&conflict.Local.IV,
		&conflict.Local.UpdatedAt,
		&conflict.Local.Author,
		&conflict.Remote.Content,
		&conflict.Remote.IV,
		&conflict.Remote.UpdatedAt,
		&conflict.Remote.Author,
		&conflict.Status,
		&conflict.Resolution,
		&conflict.DetectedAt,
		&resolvedAt,
	)
	if err != nil {
		return models.ConflictInfo{}, err
	}

	if baseContent.Valid {
		conflict.Base = &models.EntityVersion{
			Content:   baseContent.String,
			IV:        baseIV.String,
			UpdatedAt: baseUpdatedAt.Time,
			Author:    baseAuthor.String,
		}
	}
	if resolvedAt.Valid {
		t := resolvedAt.Time.UTC()
		conflict.ResolvedAt = &t
	}

	return conflict, nil
}
