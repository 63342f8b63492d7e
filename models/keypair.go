// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CurrentCurveVersion marks the key-record format produced by the current
// derivation scheme (ECDH P-256 with a per-user Argon2id salt). Records
// written before salts were introduced carry version 0 or 1 and must be
// migrated before they can be used.
const CurrentCurveVersion = 2

// JWK is the JSON Web Key encoding of a P-256 public key as persisted in the
// remote key store and exchanged between participants.
//
// Only public parameters are ever serialized in this form: X and Y are the
// base64url-unpadded affine coordinates of the public point. Private scalars
// never leave the owning process and have no JWK representation here.
type JWK struct {
	// Kty is the key type, always "EC".
	Kty string `json:"kty"`

	// Crv is the curve identifier, always "P-256".
	Crv string `json:"crv"`

	// X is the base64url-unpadded x coordinate of the public point.
	X string `json:"x"`

	// Y is the base64url-unpadded y coordinate of the public point.
	Y string `json:"y"`
}

// Equal reports whether two JWK values describe the same public key.
func (j JWK) Equal(other JWK) bool {
	return j.Kty == other.Kty && j.Crv == other.Crv && j.X == other.X && j.Y == other.Y
}

// IsZero reports whether the JWK has no key material set.
func (j JWK) IsZero() bool {
	return j.X == "" && j.Y == ""
}

// KeyPair is the client-side view of a user's asymmetric identity: the
// public half as stored remotely plus the private scalar held only in
// process memory.
type KeyPair struct {
	// UserID identifies the owner of the pair.
	UserID string `json:"user_id"`

	// PublicKey is the JWK encoding of the public point. This is the only
	// key material that is persisted remotely.
	PublicKey JWK `json:"public_key"`

	// PrivateKey is the raw private scalar. It exists only transiently in
	// client memory, is excluded from every serialization, and must be
	// zeroized when the pair is discarded.
	PrivateKey []byte `json:"-"`

	// Salt is the base64-encoded KDF salt the pair was derived with.
	// The salt is not a secret; it is stored openly next to the public key
	// so the pair can be re-derived from the password on any device.
	Salt string `json:"salt"`

	// DeviceID identifies the device that produced this derivation.
	DeviceID string `json:"device_id"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Revoked   bool       `json:"revoked"`
}

// KeyRecord is the remote key-store row for one user: public key, derivation
// salt, and lifecycle metadata. It never contains private key material.
type KeyRecord struct {
	// UserID identifies the owner of the record.
	UserID string `json:"user_id"`

	// PublicKey is the JWK encoding of the user's public key.
	PublicKey JWK `json:"public_key"`

	// Salt is the base64-encoded KDF salt. Legacy records written before
	// password-derived keys were introduced have it empty and are flagged
	// by the migration check.
	Salt string `json:"salt"`

	// DeviceID identifies the device that last wrote the record.
	DeviceID string `json:"device_id"`

	// CurveVersion is the key-record format version. See [CurrentCurveVersion].
	CurveVersion int `json:"curve_version"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Revoked   bool       `json:"revoked"`
}

// NeedsMigration reports whether the record predates the current derivation
// scheme: it is missing the KDF salt or carries an older curve version.
func (r KeyRecord) NeedsMigration() bool {
	return r.Salt == "" || r.CurveVersion < CurrentCurveVersion
}

// TableName returns the name of the database table
// associated with the KeyRecord model.
func (r KeyRecord) TableName() string {
	return "encryption_keys"
}
