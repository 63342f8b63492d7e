// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ecdh"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/crypto"
	"github.com/MKhiriev/go-chat-keeper/models"
)

type keyManagementService struct {
	remote   adapter.RemoteStore
	keyring  crypto.Keyring
	deviceID string

	mu     sync.RWMutex
	userID string
	priv   *ecdh.PrivateKey
}

// NewKeyManagementService constructs a [KeyManagementService] that publishes
// key records through remote and derives key material via keyring. deviceID
// is recorded in every published record so stale derivations can be traced
// to the installation that produced them.
func NewKeyManagementService(remote adapter.RemoteStore, keyring crypto.Keyring, deviceID string) KeyManagementService {
	return &keyManagementService{remote: remote, keyring: keyring, deviceID: deviceID}
}

func (k *keyManagementService) InitializeKeys(ctx context.Context, userID, password string) (models.KeyRecord, error) {
	salt, err := k.keyring.GenerateSalt()
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("generate key salt: %w", err)
	}

	priv, err := k.keyring.DeriveKeyPair(password, salt)
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("derive key pair: %w", err)
	}

	jwk, err := k.keyring.PublicKeyJWK(priv.PublicKey())
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("encode public key: %w", err)
	}

	record := models.KeyRecord{
		UserID:       userID,
		PublicKey:    jwk,
		Salt:         base64.StdEncoding.EncodeToString(salt),
		DeviceID:     k.deviceID,
		CurveVersion: models.CurrentCurveVersion,
	}

	saved, err := k.remote.UpsertKeyRecord(ctx, record)
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("publish key record: %w", mapRemoteError(err))
	}

	k.setSession(userID, priv)
	return saved, nil
}

func (k *keyManagementService) EnsureKeys(ctx context.Context, userID, password string) (models.KeyRecord, error) {
	record, err := k.remote.GetKeyRecord(ctx, userID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return k.InitializeKeys(ctx, userID, password)
		}
		return models.KeyRecord{}, fmt.Errorf("fetch key record: %w", mapRemoteError(err))
	}

	// Legacy record: no salt or an old curve version. The pair cannot be
	// reproduced from the password, so derive a fresh one and republish.
	if record.NeedsMigration() {
		return k.InitializeKeys(ctx, userID, password)
	}

	priv, err := k.rederive(password, record)
	if err != nil {
		return models.KeyRecord{}, err
	}

	k.setSession(userID, priv)
	return record, nil
}

func (k *keyManagementService) VerifyKeys(ctx context.Context, userID, password string) error {
	record, err := k.remote.GetKeyRecord(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch key record: %w", mapRemoteError(err))
	}

	if record.NeedsMigration() {
		return ErrKeyMigrationRequired
	}

	_, err = k.rederive(password, record)
	return err
}

func (k *keyManagementService) PrivateKey() (*ecdh.PrivateKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.priv == nil {
		return nil, ErrNoActiveSession
	}
	return k.priv, nil
}

func (k *keyManagementService) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.userID = ""
	k.priv = nil
}

// rederive reproduces the key pair from the password and the record's salt
// and checks it against the published public key.
func (k *keyManagementService) rederive(password string, record models.KeyRecord) (*ecdh.PrivateKey, error) {
	salt, err := base64.StdEncoding.DecodeString(record.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode key salt: %w", err)
	}

	priv, err := k.keyring.DeriveKeyPair(password, salt)
	if err != nil {
		return nil, fmt.Errorf("derive key pair: %w", err)
	}

	jwk, err := k.keyring.PublicKeyJWK(priv.PublicKey())
	if err != nil {
		return nil, fmt.Errorf("encode public key: %w", err)
	}

	if !jwk.Equal(record.PublicKey) {
		return nil, ErrKeyMismatch
	}

	return priv, nil
}

func (k *keyManagementService) setSession(userID string, priv *ecdh.PrivateKey) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.userID = userID
	k.priv = priv
}
