package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// welcomeSent
// ─────────────────────────────────────────────

func TestWelcomeSent_ReturnsFlag(t *testing.T) {
	auth := &mockAuthService{
		welcomeSentFn: func(_ context.Context, userID string) (bool, error) {
			assert.Equal(t, "user-1", userID)
			return true, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/welcome-flag", nil)
	req = withURLParam(req, "id", "user-1")
	rec := httptest.NewRecorder()

	h.welcomeSent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.WelcomeFlagResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.WelcomeSent)
}

func TestWelcomeSent_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		welcomeSentFn: func(_ context.Context, _ string) (bool, error) {
			return false, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/users/missing/welcome-flag", nil)
	req = withURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	h.welcomeSent(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// markWelcomeSent
// ─────────────────────────────────────────────

func TestMarkWelcomeSent_Success(t *testing.T) {
	auth := &mockAuthService{
		markWelcomeSentFn: func(_ context.Context, userID string) error {
			assert.Equal(t, "user-1", userID)
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPut, "/api/users/user-1/welcome-flag", nil)
	req = withURLParam(req, "id", "user-1")
	rec := httptest.NewRecorder()

	h.markWelcomeSent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarkWelcomeSent_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		markWelcomeSentFn: func(_ context.Context, _ string) error {
			return errors.New("db is down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPut, "/api/users/user-1/welcome-flag", nil)
	req = withURLParam(req, "id", "user-1")
	rec := httptest.NewRecorder()

	h.markWelcomeSent(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
