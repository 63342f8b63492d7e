package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
)

func newTestKeyRepo(t *testing.T) (*keyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &keyRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testKeyRecord() models.KeyRecord {
	return models.KeyRecord{
		UserID: "b7d5c3c4-0000-4000-8000-000000000001",
		PublicKey: models.JWK{
			Kty: "EC",
			Crv: "P-256",
			X:   "f83OJ3D2xF1Bg8vub9tLe1gHMzV76e8Tus9uPHvRVEU",
			Y:   "x_FEzRu9m36HLN_tue659LNpXW6pCyStikYjKIWI5a0",
		},
		Salt:         "c2FsdA",
		DeviceID:     "ab12cd34ef56ab12",
		CurveVersion: models.CurrentCurveVersion,
	}
}

func keyRecordRows(t *testing.T, record models.KeyRecord, now time.Time) *sqlmock.Rows {
	t.Helper()
	publicKeyJSON, err := json.Marshal(record.PublicKey)
	if err != nil {
		t.Fatalf("failed to marshal public key: %v", err)
	}
	return sqlmock.
		NewRows([]string{"user_id", "public_key", "salt", "device_id", "curve_version", "expires_at", "revoked", "created_at"}).
		AddRow(record.UserID, publicKeyJSON, record.Salt, record.DeviceID, record.CurveVersion, record.ExpiresAt, record.Revoked, now)
}

func TestUpsertKeyRecord_Success(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	ctx := context.Background()
	record := testKeyRecord()
	publicKeyJSON, _ := json.Marshal(record.PublicKey)

	mock.ExpectQuery("INSERT INTO encryption_keys").
		WithArgs(record.UserID, publicKeyJSON, record.Salt, record.DeviceID, record.CurveVersion, record.ExpiresAt).
		WillReturnRows(keyRecordRows(t, record, time.Now()))

	saved, err := repo.Upsert(ctx, record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved.PublicKey.Equal(record.PublicKey) {
		t.Errorf("expected public key %+v, got %+v", record.PublicKey, saved.PublicKey)
	}
	if saved.CurveVersion != models.CurrentCurveVersion {
		t.Errorf("expected curve version %d, got %d", models.CurrentCurveVersion, saved.CurveVersion)
	}
}

func TestUpsertKeyRecord_DBError(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	ctx := context.Background()
	record := testKeyRecord()

	mock.ExpectQuery("INSERT INTO encryption_keys").
		WillReturnError(errors.New("db failure"))

	_, err := repo.Upsert(ctx, record)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetKeyRecord_Success(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	ctx := context.Background()
	record := testKeyRecord()

	mock.ExpectQuery("SELECT user_id, public_key").
		WithArgs(record.UserID).
		WillReturnRows(keyRecordRows(t, record, time.Now()))

	found, err := repo.Get(ctx, record.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.PublicKey.Equal(record.PublicKey) {
		t.Errorf("expected public key %+v, got %+v", record.PublicKey, found.PublicKey)
	}
	if found.Salt != record.Salt {
		t.Errorf("expected salt %s, got %s", record.Salt, found.Salt)
	}
}

func TestGetKeyRecord_NotFound(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id, public_key").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(ctx, "missing")
	if !errors.Is(err, ErrKeysNotFound) {
		t.Fatalf("expected ErrKeysNotFound, got %v", err)
	}
}

func TestGetKeyRecord_CorruptPublicKey(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	ctx := context.Background()
	record := testKeyRecord()

	rows := sqlmock.
		NewRows([]string{"user_id", "public_key", "salt", "device_id", "curve_version", "expires_at", "revoked", "created_at"}).
		AddRow(record.UserID, []byte("{not json"), record.Salt, record.DeviceID, record.CurveVersion, record.ExpiresAt, record.Revoked, time.Now())

	mock.ExpectQuery("SELECT user_id, public_key").
		WithArgs(record.UserID).
		WillReturnRows(rows)

	_, err := repo.Get(ctx, record.UserID)
	if err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}
