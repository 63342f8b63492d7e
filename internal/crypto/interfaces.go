package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keyring_mock.go -package=mock

import (
	"crypto/ecdh"

	"github.com/MKhiriev/go-chat-keeper/models"
)

// Keyring отвечает за всю клиентскую криптографию в сквозном шифровании.
// Он не знает ничего о сети, базе данных или пользователях.
// Его единственная задача — выводить ключи и шифровать сообщения.
//
// Схема работы:
//
//	Salt       = GenerateSalt()                       (Шаг 1)
//	Private    = DeriveKeyPair(password, salt)        (Шаг 2)
//	PublicJWK  = PublicKeyJWK(Private.PublicKey())    (Шаг 3, публикуется на сервере)
//	Shared     = SharedSecret(Private, peerJWK)       (Шаг 4)
//	Ciphertext = EncryptMessage(plaintext, Shared)    (Шаг 5)
type Keyring interface {
	// GenerateSalt генерирует случайную соль (16 байт / 128 бит).
	// Соль не является секретом — она хранится на сервере открыто,
	// чтобы пара ключей восстанавливалась из пароля на любом устройстве.
	GenerateSalt() ([]byte, error)

	// DeriveKeyPair выводит пару ключей ECDH P-256 из пароля и соли
	// через Argon2id. Приватный ключ существует только в памяти клиента
	// и никогда не отправляется на сервер.
	//
	// Derivation is deterministic: the same password and salt always
	// produce the same key pair.
	DeriveKeyPair(password string, salt []byte) (*ecdh.PrivateKey, error)

	// PublicKeyJWK encodes a P-256 public key as a JWK with
	// base64url-unpadded coordinates, the form stored in the remote
	// key store.
	PublicKeyJWK(pub *ecdh.PublicKey) (models.JWK, error)

	// ParseJWK reconstructs a P-256 public key from its JWK encoding.
	// Returns an error for unsupported key types or points not on the
	// curve.
	ParseJWK(jwk models.JWK) (*ecdh.PublicKey, error)

	// SharedSecret выполняет обмен ключами ECDH с публичным ключом
	// собеседника и выводит из результата симметричный ключ AES-256
	// через HKDF-SHA256. Обе стороны получают одинаковый ключ.
	SharedSecret(priv *ecdh.PrivateKey, peer models.JWK) ([]byte, error)

	// EncryptMessage encrypts plaintext with AES-256-GCM under the given
	// key. A fresh random 12-byte nonce is generated per call and
	// returned separately. Both return values are base64 (standard
	// encoding) strings.
	EncryptMessage(plaintext string, key []byte) (content string, iv string, err error)

	// DecryptMessage reverses EncryptMessage. A wrong key, a corrupted
	// ciphertext, or a mismatched nonce all surface as an error wrapping
	// [ErrDecryptionFailed].
	DecryptMessage(content string, iv string, key []byte) (string, error)

	// AuthHash создает "ключ-пропуск" для сервера: хеш, выведенный из
	// пароля и соли, который сервер сравнивает при логине, но из
	// которого нельзя восстановить ни пароль, ни ключи шифрования.
	AuthHash(password string, salt []byte) string
}
