// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-keeper/models"
)

// sqlite is the statement builder for the local SQLite store. SQLite uses
// `?` placeholders, unlike the `$N` style of the server-side queries.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var queuedMessageColumns = []string{
	"id",
	"conversation_id",
	"sender_id",
	"encrypted_content",
	"iv",
	"sequence_number",
	"status",
	"retry_count",
	"last_error",
	"created_at",
	"updated_at",
	"synced_at",
}

var conflictColumns = []string{
	"id",
	"entity_type",
	"entity_id",
	"conversation_id",
	"base_content",
	"base_iv",
	"base_updated_at",
	"base_author",
	"local_content",
	"local_iv",
	"local_updated_at",
	"local_author",
	"remote_content",
	"remote_iv",
	"remote_updated_at",
	"remote_author",
	"status",
	"resolution",
	"detected_at",
	"resolved_at",
}

func enqueueMessageSQL(msg models.QueuedMessage) (string, []any, error) {
	return sqlite.
		Insert(msg.TableName()).
		Columns("id", "conversation_id", "sender_id", "encrypted_content", "iv", "sequence_number", "status").
		Values(msg.ID, msg.ConversationID, msg.SenderID, msg.EncryptedContent, msg.IV, msg.SequenceNumber, models.StatusPending).
		ToSql()
}

// getUnsyncedSQL selects every row that has not reached the server yet,
// whatever its status. A row stuck in processing after a crash and a parked
// failed row both stay visible to the sync pass and to the user.
func getUnsyncedSQL() (string, []any, error) {
	return sqlite.
		Select(queuedMessageColumns...).
		From(models.QueuedMessage{}.TableName()).
		Where(sq.NotEq{"status": models.StatusSent}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func updateStatusSQL(id string, status models.MessageStatus) (string, []any, error) {
	return sqlite.
		Update(models.QueuedMessage{}.TableName()).
		Set("status", status).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func markSyncedSQL(id string, sequenceNumber int64) (string, []any, error) {
	return sqlite.
		Update(models.QueuedMessage{}.TableName()).
		Set("status", models.StatusSent).
		Set("sequence_number", sequenceNumber).
		Set("synced_at", sq.Expr("CURRENT_TIMESTAMP")).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func recordFailureSQL(id string, status models.MessageStatus, lastError string) (string, []any, error) {
	return sqlite.
		Update(models.QueuedMessage{}.TableName()).
		Set("status", status).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Set("last_error", lastError).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func removeQueuedSQL(id string) (string, []any, error) {
	return sqlite.
		Delete(models.QueuedMessage{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func removeAllQueuedSQL() (string, []any, error) {
	return sqlite.
		Delete(models.QueuedMessage{}.TableName()).
		ToSql()
}

func removeSyncedSQL() (string, []any, error) {
	return sqlite.
		Delete(models.QueuedMessage{}.TableName()).
		Where(sq.Eq{"status": models.StatusSent}).
		ToSql()
}

func resetFailedSQL() (string, []any, error) {
	return sqlite.
		Update(models.QueuedMessage{}.TableName()).
		Set("status", models.StatusPending).
		Set("retry_count", 0).
		Set("last_error", "").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"status": models.StatusFailed}).
		ToSql()
}

func saveConflictSQL(conflict models.ConflictInfo) (string, []any, error) {
	var baseContent, baseIV, baseAuthor any
	var baseUpdatedAt any
	if conflict.Base != nil {
		baseContent = conflict.Base.Content
		baseIV = conflict.Base.IV
		baseUpdatedAt = conflict.Base.UpdatedAt
		baseAuthor = conflict.Base.Author
	}

	return sqlite.
		Insert(conflict.TableName()).
		Columns(
			"id", "entity_type", "entity_id", "conversation_id",
			"base_content", "base_iv", "base_updated_at", "base_author",
			"local_content", "local_iv", "local_updated_at", "local_author",
			"remote_content", "remote_iv", "remote_updated_at", "remote_author",
			"status",
		).
		Values(
			conflict.ID, conflict.EntityType, conflict.EntityID, conflict.ConversationID,
			baseContent, baseIV, baseUpdatedAt, baseAuthor,
			conflict.Local.Content, conflict.Local.IV, conflict.Local.UpdatedAt, conflict.Local.Author,
			conflict.Remote.Content, conflict.Remote.IV, conflict.Remote.UpdatedAt, conflict.Remote.Author,
			models.ConflictPending,
		).
		ToSql()
}

func getConflictSQL(id string) (string, []any, error) {
	return sqlite.
		Select(conflictColumns...).
		From(models.ConflictInfo{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func getPendingConflictsSQL() (string, []any, error) {
	return sqlite.
		Select(conflictColumns...).
		From(models.ConflictInfo{}.TableName()).
		Where(sq.Eq{"status": models.ConflictPending}).
		OrderBy("detected_at ASC").
		ToSql()
}

// markResolvedSQL updates only rows still pending. Resolving a conflict
// twice therefore affects zero rows on the second attempt.
func markResolvedSQL(id string, choice models.ConflictChoice) (string, []any, error) {
	return sqlite.
		Update(models.ConflictInfo{}.TableName()).
		Set("status", models.ConflictResolved).
		Set("resolution", choice).
		Set("resolved_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id, "status": models.ConflictPending}).
		ToSql()
}
