package service

import (
	"context"
	"crypto/ecdh"

	"github.com/MKhiriev/go-chat-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// KeyManagementService defines the client-side contract for deriving,
// publishing, and verifying the user's asymmetric identity. The private key
// lives only in process memory; the remote key store holds the public half
// plus the derivation salt.
type KeyManagementService interface {
	// InitializeKeys generates a fresh salt, derives a P-256 key pair from
	// the password, publishes the public key record, and retains the private
	// key in memory for the session. Any previously published record for
	// userID is replaced.
	InitializeKeys(ctx context.Context, userID, password string) (models.KeyRecord, error)

	// EnsureKeys brings the session to a usable key state. A missing record
	// is created via InitializeKeys. A legacy record (no salt or an old
	// curve version) is re-derived with a fresh salt and republished. An
	// up-to-date record is verified by re-deriving from the password and
	// stored salt; a public-key mismatch returns [ErrKeyMismatch].
	EnsureKeys(ctx context.Context, userID, password string) (models.KeyRecord, error)

	// VerifyKeys re-derives the key pair from the password and the published
	// salt and compares the result against the stored public key. It never
	// mutates the remote record: a legacy record returns
	// [ErrKeyMigrationRequired], a mismatch returns [ErrKeyMismatch].
	VerifyKeys(ctx context.Context, userID, password string) error

	// PrivateKey returns the in-memory private key of the active session, or
	// [ErrNoActiveSession] when no key pair has been derived yet.
	PrivateKey() (*ecdh.PrivateKey, error)

	// Reset drops the in-memory private key, e.g. on logout.
	Reset()
}

// EncryptionService defines the client-side contract for encrypting and
// decrypting message payloads. Message keys are derived per peer via ECDH
// against the peer's published public key and cached for the session.
type EncryptionService interface {
	// EncryptFor encrypts plaintext for the given peer and returns the
	// base64 ciphertext and nonce. The peer's public key is fetched from the
	// remote key store on first use.
	EncryptFor(ctx context.Context, peerID, plaintext string) (content string, iv string, err error)

	// DecryptFrom decrypts a ciphertext produced by peerID. A wrong key or
	// corrupted payload surfaces as an error wrapping
	// [crypto.ErrDecryptionFailed].
	DecryptFrom(ctx context.Context, peerID, content, iv string) (string, error)

	// Forget drops the cached message key for one peer, forcing a fresh key
	// agreement on next use (e.g. after the peer rotates keys).
	Forget(peerID string)

	// Reset drops all cached message keys.
	Reset()
}

// OfflineQueueService defines the client-side contract for durable offline
// message delivery. Messages are encrypted at enqueue time, persisted
// locally, and drained to the server in FIFO order by SyncPending.
type OfflineQueueService interface {
	// QueueMessage encrypts plaintext for recipientID and appends the result
	// to the durable outbound queue. The advisory sequence number is fetched
	// best-effort: enqueue succeeds even when the server is unreachable.
	QueueMessage(ctx context.Context, conversationID, senderID, recipientID, plaintext string) (models.QueuedMessage, error)

	// SyncPending drains the queue in FIFO order, one delivery attempt per
	// message per pass. A message that has already failed waits out its
	// exponential backoff before its attempt. Only one pass runs at a time;
	// a concurrent call returns an empty report immediately. An
	// authentication failure aborts the pass, any other delivery failure is
	// isolated to its message.
	SyncPending(ctx context.Context) (models.SyncReport, error)

	// PendingMessages returns every message not yet delivered, parked
	// failed ones included so the user can see and retry them.
	PendingMessages(ctx context.Context) ([]models.QueuedMessage, error)

	// RetryFailed returns all failed messages to the pending state with a
	// zeroed retry counter and reports how many were reset.
	RetryFailed(ctx context.Context) (int64, error)

	// RemoveFromQueue cancels one queued message. Cancelling a message that
	// a sync pass has already delivered returns
	// [store.ErrQueuedMessageNotFound].
	RemoveFromQueue(ctx context.Context, id string) error

	// ClearSynced removes delivered messages from the local queue.
	ClearSynced(ctx context.Context) error

	// ClearQueue wipes the whole queue including undelivered messages.
	ClearQueue(ctx context.Context) error
}

// ConflictResolutionEngine defines the client-side contract for detecting
// and resolving concurrent-edit conflicts. Resolution is always an explicit
// user choice; the engine never picks a side automatically.
type ConflictResolutionEngine interface {
	// DetectConflict runs a three-way comparison of the local and remote
	// versions against their common ancestor. It records and returns a
	// conflict only when both sides diverged from the base; otherwise it
	// returns nil.
	DetectConflict(ctx context.Context, entityType, entityID, conversationID string, base *models.EntityVersion, local, remote models.EntityVersion) (*models.ConflictInfo, error)

	// PendingConflicts lists unresolved conflicts in detection order.
	PendingConflicts(ctx context.Context) ([]models.ConflictInfo, error)

	// ResolveConflict records the user's choice. Picking the local version
	// re-queues it for delivery; picking the remote version discards the
	// local one. Resolving twice returns [ErrConflictAlreadyResolved].
	ResolveConflict(ctx context.Context, conflictID string, choice models.ConflictChoice) error
}

// WelcomeService defines the contract for the one-time system greeting sent
// to every new user from the admin identity.
type WelcomeService interface {
	// InitializeAdminKeys derives the admin key pair from the configured
	// welcome secret and ensures the published record matches it.
	InitializeAdminKeys(ctx context.Context) error

	// SendWelcome delivers the greeting to user exactly once. The
	// conversation ID is derived deterministically from the two user IDs,
	// so retries and concurrent sends converge on the same conversation.
	// Already-welcomed users are a no-op.
	SendWelcome(ctx context.Context, user models.User) error
}

// ClientAuthService defines the client-side contract for registration and
// login. Implementations derive all credential material locally; the account
// password never leaves the process.
type ClientAuthService interface {
	// Register creates a new account. It generates an auth salt, derives the
	// auth hash from the password, registers on the server, and publishes
	// the initial key record.
	Register(ctx context.Context, email, password string) (models.User, error)

	// Login authenticates against the server. It fetches the stored auth
	// salt, re-derives the auth hash, logs in, and brings the key session up
	// via EnsureKeys.
	Login(ctx context.Context, email, password string) (models.User, error)
}
