package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/crypto"
)

type encryptionService struct {
	remote  adapter.RemoteStore
	keyring crypto.Keyring
	keys    KeyManagementService

	mu          sync.Mutex
	messageKeys map[string][]byte // peer userID -> derived AES key
}

// NewEncryptionService constructs an [EncryptionService] that derives one
// message key per peer via ECDH between the session private key (held by
// keys) and the peer's published public key.
func NewEncryptionService(remote adapter.RemoteStore, keyring crypto.Keyring, keys KeyManagementService) EncryptionService {
	return &encryptionService{
		remote:      remote,
		keyring:     keyring,
		keys:        keys,
		messageKeys: make(map[string][]byte),
	}
}

func (e *encryptionService) EncryptFor(ctx context.Context, peerID, plaintext string) (string, string, error) {
	key, err := e.messageKey(ctx, peerID)
	if err != nil {
		return "", "", err
	}

	content, iv, err := e.keyring.EncryptMessage(plaintext, key)
	if err != nil {
		return "", "", fmt.Errorf("encrypt for %s: %w", peerID, err)
	}

	return content, iv, nil
}

func (e *encryptionService) DecryptFrom(ctx context.Context, peerID, content, iv string) (string, error) {
	key, err := e.messageKey(ctx, peerID)
	if err != nil {
		return "", err
	}

	plaintext, err := e.keyring.DecryptMessage(content, iv, key)
	if err != nil {
		return "", fmt.Errorf("decrypt from %s: %w", peerID, err)
	}

	return plaintext, nil
}

func (e *encryptionService) Forget(peerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if key, ok := e.messageKeys[peerID]; ok {
		crypto.Zeroize(key)
		delete(e.messageKeys, peerID)
	}
}

func (e *encryptionService) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for peerID, key := range e.messageKeys {
		crypto.Zeroize(key)
		delete(e.messageKeys, peerID)
	}
}

// messageKey returns the cached AES key for peerID, deriving and caching it
// on first use. The ECDH result is identical on both sides, so sender and
// recipient independently arrive at the same key.
func (e *encryptionService) messageKey(ctx context.Context, peerID string) ([]byte, error) {
	e.mu.Lock()
	if key, ok := e.messageKeys[peerID]; ok {
		e.mu.Unlock()
		return key, nil
	}
	e.mu.Unlock()

	priv, err := e.keys.PrivateKey()
	if err != nil {
		return nil, err
	}

	record, err := e.remote.GetKeyRecord(ctx, peerID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil, fmt.Errorf("peer %s: %w", peerID, ErrKeysNotFound)
		}
		return nil, fmt.Errorf("fetch peer key record: %w", mapRemoteError(err))
	}
	if record.NeedsMigration() {
		return nil, fmt.Errorf("peer %s: %w", peerID, ErrKeyMigrationRequired)
	}

	key, err := e.keyring.SharedSecret(priv, record.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("derive message key for %s: %w", peerID, err)
	}

	e.mu.Lock()
	e.messageKeys[peerID] = key
	e.mu.Unlock()

	return key, nil
}
