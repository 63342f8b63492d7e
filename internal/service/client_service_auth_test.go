package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/app"
	"github.com/MKhiriev/go-chat-keeper/internal/mock"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuthSvc — хелпер для создания clientAuthService с моками
func newTestClientAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockRemoteStore,
	*mock.MockKeyring,
	*mock.MockKeyManagementService,
) {
	t.Helper()
	mockRemote := mock.NewMockRemoteStore(ctrl)
	mockKeyring := mock.NewMockKeyring(ctrl)
	mockKeys := mock.NewMockKeyManagementService(ctrl)

	svc := NewClientAuthService(mockRemote, mockKeyring, mockKeys).(*clientAuthService)
	return svc, mockRemote, mockKeyring, mockKeys
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, mockKeyring, mockKeys := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("0123456789abcdef")

	mockKeyring.EXPECT().GenerateSalt().Return(salt, nil)
	mockKeyring.EXPECT().AuthHash("p@ss", salt).Return("auth-hash")
	mockRemote.EXPECT().Register(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			// на сервер уходит хэш, пароль не покидает клиента
			assert.Equal(t, "user@example.com", u.Email)
			assert.Equal(t, "auth-hash", u.AuthHash)
			assert.Equal(t, base64.StdEncoding.EncodeToString(salt), u.AuthSalt)
			assert.NotEmpty(t, u.UserID)
			return u, nil
		})
	mockKeys.EXPECT().InitializeKeys(ctx, gomock.Any(), "p@ss").Return(models.KeyRecord{}, nil)

	got, err := svc.Register(ctx, "user@example.com", "p@ss")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got.Email)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, mockKeyring, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("0123456789abcdef")
	mockKeyring.EXPECT().GenerateSalt().Return(salt, nil)
	mockKeyring.EXPECT().AuthHash("p@ss", salt).Return("auth-hash")

	conflict := fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgEmailAlreadyExists)
	mockRemote.EXPECT().Register(ctx, gomock.Any()).Return(models.User{}, conflict)

	_, err := svc.Register(ctx, "user@example.com", "p@ss")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestClientAuthService_Register_KeyInitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, mockKeyring, mockKeys := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("0123456789abcdef")
	mockKeyring.EXPECT().GenerateSalt().Return(salt, nil)
	mockKeyring.EXPECT().AuthHash("p@ss", salt).Return("auth-hash")
	mockRemote.EXPECT().Register(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })
	mockKeys.EXPECT().InitializeKeys(ctx, gomock.Any(), "p@ss").Return(models.KeyRecord{}, ErrNoActiveSession)

	_, err := svc.Register(ctx, "user@example.com", "p@ss")
	require.Error(t, err)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, mockKeyring, mockKeys := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("0123456789abcdef")
	params := models.AuthParamsResponse{AuthSalt: base64.StdEncoding.EncodeToString(salt)}
	found := models.User{UserID: "user-1", Email: "user@example.com"}

	gomock.InOrder(
		mockRemote.EXPECT().AuthParams(ctx, "user@example.com").Return(params, nil),
		mockRemote.EXPECT().Login(ctx, models.User{Email: "user@example.com", AuthHash: "auth-hash"}).Return(found, nil),
		mockKeys.EXPECT().EnsureKeys(ctx, "user-1", "p@ss").Return(models.KeyRecord{UserID: "user-1"}, nil),
	)
	mockKeyring.EXPECT().AuthHash("p@ss", salt).Return("auth-hash")

	got, err := svc.Login(ctx, "user@example.com", "p@ss")
	require.NoError(t, err)
	assert.Equal(t, found, got)
}

func TestClientAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, _, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	notFound := fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUserNotFound)
	mockRemote.EXPECT().AuthParams(ctx, "nobody@example.com").Return(models.AuthParamsResponse{}, notFound)

	_, err := svc.Login(ctx, "nobody@example.com", "p@ss")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, mockKeyring, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("0123456789abcdef")
	params := models.AuthParamsResponse{AuthSalt: base64.StdEncoding.EncodeToString(salt)}

	mockRemote.EXPECT().AuthParams(ctx, "user@example.com").Return(params, nil)
	mockKeyring.EXPECT().AuthHash("wrong", salt).Return("wrong-hash")

	unauthorized := fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidEmailPassword)
	mockRemote.EXPECT().Login(ctx, gomock.Any()).Return(models.User{}, unauthorized)

	_, err := svc.Login(ctx, "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_BadSalt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRemote, _, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().AuthParams(ctx, "user@example.com").Return(models.AuthParamsResponse{AuthSalt: "%%% not base64 %%%"}, nil)

	_, err := svc.Login(ctx, "user@example.com", "p@ss")
	require.Error(t, err)
}
