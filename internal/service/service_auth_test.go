package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/mock"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc — хелпер для создания authService с моками
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "chat-keeper-test",
		TokenDuration: time.Hour,
	}

	return NewAuthService(mockRepo, cfg, logger.Nop()), mockRepo
}

func validUser() models.User {
	return models.User{
		UserID:   "user-1",
		Email:    "user@example.com",
		AuthHash: "auth-hash",
		AuthSalt: "c2FsdA==",
	}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := validUser()

	mockRepo.EXPECT().CreateUser(ctx, user).Return(user, nil)

	got, err := svc.RegisterUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.User)
	}{
		{name: "no email", mutate: func(u *models.User) { u.Email = "" }},
		{name: "no auth hash", mutate: func(u *models.User) { u.AuthHash = "" }},
		{name: "no auth salt", mutate: func(u *models.User) { u.AuthSalt = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(&user)

			_, err := svc.RegisterUser(ctx, user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := validUser()

	mockRepo.EXPECT().CreateUser(ctx, user).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, user)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	stored := validUser()

	mockRepo.EXPECT().FindUserByEmail(ctx, stored.Email).Return(stored, nil)

	got, err := svc.Login(ctx, models.User{Email: stored.Email, AuthHash: stored.AuthHash})
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestAuthService_Login_WrongHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	stored := validUser()

	mockRepo.EXPECT().FindUserByEmail(ctx, stored.Email).Return(stored, nil)

	_, err := svc.Login(ctx, models.User{Email: stored.Email, AuthHash: "other-hash"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Email: "nobody@example.com", AuthHash: "hash"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.User{Email: "", AuthHash: "hash"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, models.User{Email: "user@example.com", AuthHash: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── AuthParams ───────────────────────────────────────────────────────────────

func TestAuthService_AuthParams_ReturnsSalt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	stored := validUser()

	mockRepo.EXPECT().FindUserByEmail(ctx, stored.Email).Return(stored, nil)

	got, err := svc.AuthParams(ctx, stored.Email)
	require.NoError(t, err)
	assert.Equal(t, stored.AuthSalt, got.AuthSalt)
}

func TestAuthService_AuthParams_EmptyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.AuthParams(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := validUser()

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(gomock.NewController(t))
	other := NewAuthService(mockRepo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foreign, err := other.CreateToken(ctx, validUser())
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── WelcomeSent / MarkWelcomeSent ────────────────────────────────────────────

func TestAuthService_WelcomeSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().WelcomeSent(ctx, "user-1").Return(true, nil)

	sent, err := svc.WelcomeSent(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestAuthService_WelcomeSent_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.WelcomeSent(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_MarkWelcomeSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().MarkWelcomeSent(ctx, "user-1").Return(nil)

	require.NoError(t, svc.MarkWelcomeSent(ctx, "user-1"))
}
