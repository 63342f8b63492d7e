package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/jackc/pgerrcode"
)

func newTestMessageRepo(t *testing.T) (*messageRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &messageRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testMessage() models.Message {
	return models.Message{
		ID:               "2f9a1c00-0000-4000-8000-000000000010",
		ConversationID:   "6d3e0b00-0000-4000-8000-000000000020",
		SenderID:         "b7d5c3c4-0000-4000-8000-000000000001",
		EncryptedContent: "Y2lwaGVydGV4dA==",
		IV:               "bm9uY2UxMjM0NTY=",
	}
}

func insertedRows(msg models.Message, seq int64, now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "conversation_id", "sender_id", "encrypted_content", "iv", "sequence_number", "created_at"}).
		AddRow(msg.ID, msg.ConversationID, msg.SenderID, msg.EncryptedContent, msg.IV, seq, now)
}

func TestInsertMessage_Success(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	msg := testMessage()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_message_at").
		WithArgs(msg.ConversationID).
		WillReturnRows(sqlmock.NewRows([]string{"last_message_at"}).AddRow(now))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_number\), 0\)`).
		WithArgs(msg.ConversationID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(4)))
	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(msg.ID, msg.ConversationID, msg.SenderID, msg.EncryptedContent, msg.IV, int64(5)).
		WillReturnRows(insertedRows(msg, 5, now))
	mock.ExpectExec("UPDATE conversations").
		WithArgs(msg.ConversationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repo.Insert(ctx, msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.SequenceNumber != 5 {
		t.Errorf("expected server-assigned sequence 5, got %d", saved.SequenceNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertMessage_IgnoresClientSequence(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	msg := testMessage()
	msg.SequenceNumber = 999 // advisory value, must not reach the INSERT
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_message_at").
		WithArgs(msg.ConversationID).
		WillReturnRows(sqlmock.NewRows([]string{"last_message_at"}).AddRow(now))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_number\), 0\)`).
		WithArgs(msg.ConversationID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))
	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(msg.ID, msg.ConversationID, msg.SenderID, msg.EncryptedContent, msg.IV, int64(1)).
		WillReturnRows(insertedRows(msg, 1, now))
	mock.ExpectExec("UPDATE conversations").
		WithArgs(msg.ConversationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repo.Insert(ctx, msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.SequenceNumber != 1 {
		t.Errorf("expected sequence 1, got %d", saved.SequenceNumber)
	}
}

func TestInsertMessage_ConversationNotFound(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	msg := testMessage()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_message_at").
		WithArgs(msg.ConversationID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Insert(ctx, msg)
	if !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestInsertMessage_Duplicate(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	msg := testMessage()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_message_at").
		WithArgs(msg.ConversationID).
		WillReturnRows(sqlmock.NewRows([]string{"last_message_at"}).AddRow(now))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_number\), 0\)`).
		WithArgs(msg.ConversationID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(msg.ID, msg.ConversationID, msg.SenderID, msg.EncryptedContent, msg.IV, int64(8)).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	// the original row is fetched outside the transaction
	existingRows := sqlmock.
		NewRows([]string{"id", "conversation_id", "sender_id", "encrypted_content", "iv", "sequence_number", "created_at", "delivered_at", "edited", "deleted"}).
		AddRow(msg.ID, msg.ConversationID, msg.SenderID, msg.EncryptedContent, msg.IV, int64(3), now, nil, false, false)
	mock.ExpectQuery("SELECT id, conversation_id").
		WithArgs(msg.ID).
		WillReturnRows(existingRows)
	mock.ExpectRollback()

	existing, err := repo.Insert(ctx, msg)
	if !errors.Is(err, ErrDuplicateMessage) {
		t.Fatalf("expected ErrDuplicateMessage, got %v", err)
	}
	if existing.SequenceNumber != 3 {
		t.Errorf("expected the first insert's sequence 3, got %d", existing.SequenceNumber)
	}
}

func TestInsertMessage_BeginError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.Insert(ctx, testMessage())
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestNextSequenceNumber_Success(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	conversationID := "6d3e0b00-0000-4000-8000-000000000020"

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_number\), 0\) \+ 1`).
		WithArgs(conversationID).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(12)))

	next, err := repo.NextSequenceNumber(ctx, conversationID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 12 {
		t.Errorf("expected next sequence 12, got %d", next)
	}
}

func TestNextSequenceNumber_EmptyConversation(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	conversationID := "6d3e0b00-0000-4000-8000-000000000020"

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_number\), 0\) \+ 1`).
		WithArgs(conversationID).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(1)))

	next, err := repo.NextSequenceNumber(ctx, conversationID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 1 {
		t.Errorf("expected next sequence 1 for empty conversation, got %d", next)
	}
}

func TestUpdateLastMessageAt_NotFound(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE conversations").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLastMessageAt(ctx, "missing")
	if !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestGetMessageByID_NotFound(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, conversation_id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(ctx, "missing")
	if !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestGetMessageByID_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, conversation_id").
		WithArgs("any").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetByID(ctx, "any")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestEnsureConversation_Success(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	conversation := models.Conversation{
		ID:    "6d3e0b00-0000-4000-8000-000000000020",
		Title: "welcome",
	}

	mock.ExpectExec("INSERT INTO conversations").
		WithArgs(conversation.ID, conversation.Title).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.EnsureConversation(ctx, conversation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnsureConversation_AlreadyExists(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	conversation := models.Conversation{
		ID:    "6d3e0b00-0000-4000-8000-000000000020",
		Title: "welcome",
	}

	// ON CONFLICT DO NOTHING affects zero rows, which is not an error
	mock.ExpectExec("INSERT INTO conversations").
		WithArgs(conversation.ID, conversation.Title).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.EnsureConversation(ctx, conversation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
