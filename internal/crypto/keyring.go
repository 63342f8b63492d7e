// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-chat-keeper/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// ErrDecryptionFailed is returned when a ciphertext cannot be authenticated:
// wrong key, corrupted content, or a nonce that does not match.
var ErrDecryptionFailed = errors.New("decryption failed")

// authHashSalt domain-separates the login hash from the key-derivation seed.
// Both are produced from the same Argon2id output, so without this separator
// a server compromise would leak key material.
const authHashSalt = "go-chat-keeper/auth-hash/v1"

// hkdfInfo binds derived message keys to this application and protocol
// version.
const hkdfInfo = "go-chat-keeper/message-key/v1"

// keyring is the private implementation of [Keyring].
type keyring struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyring constructs a [Keyring] with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyring() Keyring {
	return &keyring{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [Keyring]. It reads 16 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyring) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKeyPair implements [Keyring]. It stretches the password into a
// 32-byte seed with Argon2id and interprets the seed as a P-256 private
// scalar. Not every 32-byte string is a valid scalar, so on rejection the
// seed is re-hashed with SHA-256 and tried again. Both sides of the loop are
// deterministic, so the same password and salt always converge on the same
// key pair.
func (k *keyring) DeriveKeyPair(password string, salt []byte) (*ecdh.PrivateKey, error) {
	if password == "" {
		return nil, errors.New("empty password")
	}
	if len(salt) == 0 {
		return nil, errors.New("empty salt")
	}

	seed := k.deriveSeed(password, salt)
	defer Zeroize(seed)

	curve := ecdh.P256()
	for attempt := 0; attempt < 64; attempt++ {
		priv, err := curve.NewPrivateKey(seed)
		if err == nil {
			return priv, nil
		}
		// Scalar out of range. Re-hash and retry; each iteration rejects
		// with probability below 2^-32.
		next := sha256.Sum256(seed)
		copy(seed, next[:])
	}

	return nil, errors.New("key derivation did not converge")
}

// PublicKeyJWK implements [Keyring]. The ecdh package serializes P-256
// public keys in uncompressed form, 0x04 followed by the 32-byte X and Y
// coordinates, which map directly onto the JWK "x" and "y" members.
func (k *keyring) PublicKeyJWK(pub *ecdh.PublicKey) (models.JWK, error) {
	if pub == nil {
		return models.JWK{}, errors.New("nil public key")
	}

	raw := pub.Bytes()
	if len(raw) != 65 || raw[0] != 0x04 {
		return models.JWK{}, fmt.Errorf("unexpected public key encoding: %d bytes", len(raw))
	}

	return models.JWK{
		Kty: "EC",
		Crv: "P-256",
		X:   base64.RawURLEncoding.EncodeToString(raw[1:33]),
		Y:   base64.RawURLEncoding.EncodeToString(raw[33:65]),
	}, nil
}

// ParseJWK implements [Keyring]. It validates the key type and curve,
// decodes the coordinates, and lets the ecdh package verify that the point
// actually lies on P-256.
func (k *keyring) ParseJWK(jwk models.JWK) (*ecdh.PublicKey, error) {
	if jwk.Kty != "EC" {
		return nil, fmt.Errorf("unsupported key type %q", jwk.Kty)
	}
	if jwk.Crv != "P-256" {
		return nil, fmt.Errorf("unsupported curve %q", jwk.Crv)
	}

	x, err := base64.RawURLEncoding.DecodeString(jwk.X)
	if err != nil {
		return nil, fmt.Errorf("decode x coordinate: %w", err)
	}
	y, err := base64.RawURLEncoding.DecodeString(jwk.Y)
	if err != nil {
		return nil, fmt.Errorf("decode y coordinate: %w", err)
	}
	if len(x) != 32 || len(y) != 32 {
		return nil, fmt.Errorf("invalid coordinate length: x=%d y=%d", len(x), len(y))
	}

	raw := make([]byte, 0, 65)
	raw = append(raw, 0x04)
	raw = append(raw, x...)
	raw = append(raw, y...)

	pub, err := ecdh.P256().NewPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return pub, nil
}

// SharedSecret implements [Keyring]. It runs the ECDH exchange and expands
// the raw shared point through HKDF-SHA256 into a uniformly distributed
// 256-bit AES key. Raw ECDH output is never used directly as a cipher key.
func (k *keyring) SharedSecret(priv *ecdh.PrivateKey, peer models.JWK) ([]byte, error) {
	if priv == nil {
		return nil, errors.New("nil private key")
	}

	peerPub, err := k.ParseJWK(peer)
	if err != nil {
		return nil, fmt.Errorf("parse peer key: %w", err)
	}

	raw, err := priv.ECDH(peerPub)
	if err != nil {
		return nil, fmt.Errorf("ecdh exchange: %w", err)
	}
	defer Zeroize(raw)

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, raw, nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}

	return key, nil
}

// EncryptMessage implements [Keyring]. It encrypts plaintext with
// AES-256-GCM under key. The nonce is 12 random bytes, fresh per call, and
// is returned separately so the transport can carry it alongside the
// ciphertext. Returns an error if cipher creation or the nonce read fails.
func (k *keyring) EncryptMessage(plaintext string, key []byte) (string, string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(ciphertext),
		base64.StdEncoding.EncodeToString(nonce),
		nil
}

// DecryptMessage implements [Keyring]. It reverses [keyring.EncryptMessage].
// An authentication-tag mismatch almost always means the message was
// encrypted under a different shared secret, e.g. after one side rotated
// keys.
func (k *keyring) DecryptMessage(content string, iv string, key []byte) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return "", fmt.Errorf("decode iv: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: invalid nonce length %d", ErrDecryptionFailed, len(nonce))
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// AuthHash implements [Keyring]. It computes SHA-256(seed ‖ authHashSalt)
// over the Argon2id seed and returns the hex digest. The fixed authHashSalt
// domain-separates this hash from the key-derivation seed, ensuring the two
// values have different purposes even if derived from the same material.
func (k *keyring) AuthHash(password string, salt []byte) string {
	seed := k.deriveSeed(password, salt)
	defer Zeroize(seed)

	h := sha256.New()
	h.Write(seed)
	h.Write([]byte(authHashSalt))
	return hex.EncodeToString(h.Sum(nil))
}

// deriveSeed stretches the password into 32 bytes of key material with
// Argon2id.
func (k *keyring) deriveSeed(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// newGCM builds an AES-256-GCM AEAD from a 32-byte key.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Zeroize overwrites b with zeros. Callers use it to scrub key material from
// memory as soon as it is no longer needed.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
