package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/crypto"
	"github.com/MKhiriev/go-chat-keeper/internal/utils"
	"github.com/MKhiriev/go-chat-keeper/models"
)

type clientAuthService struct {
	remote  adapter.RemoteStore
	keyring crypto.Keyring
	keys    KeyManagementService
	ids     *utils.UUIDGenerator
}

// NewClientAuthService constructs a [ClientAuthService]. All credential
// material is derived locally via keyring; the server only ever sees the
// auth hash.
func NewClientAuthService(remote adapter.RemoteStore, keyring crypto.Keyring, keys KeyManagementService) ClientAuthService {
	return &clientAuthService{
		remote:  remote,
		keyring: keyring,
		keys:    keys,
		ids:     utils.NewUUIDGenerator(),
	}
}

func (a *clientAuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	salt, err := a.keyring.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("generate auth salt: %w", err)
	}

	user := models.User{
		UserID:   a.ids.Generate(),
		Email:    email,
		AuthHash: a.keyring.AuthHash(password, salt),
		AuthSalt: base64.StdEncoding.EncodeToString(salt),
	}

	created, err := a.remote.Register(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", mapRemoteError(err))
	}

	// A fresh account has no published keys yet; create and publish them.
	if _, err := a.keys.InitializeKeys(ctx, created.UserID, password); err != nil {
		return models.User{}, err
	}

	return created, nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	params, err := a.remote.AuthParams(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch auth params: %w", mapRemoteError(err))
	}

	salt, err := base64.StdEncoding.DecodeString(params.AuthSalt)
	if err != nil {
		return models.User{}, fmt.Errorf("decode auth salt: %w", err)
	}

	user, err := a.remote.Login(ctx, models.User{
		Email:    email,
		AuthHash: a.keyring.AuthHash(password, salt),
	})
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", mapRemoteError(err))
	}

	// Recover or migrate the key pair for this session.
	if _, err := a.keys.EnsureKeys(ctx, user.UserID, password); err != nil {
		return models.User{}, err
	}

	return user, nil
}
