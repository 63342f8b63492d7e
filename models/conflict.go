package models

import "time"

// ConflictStatus is the resolution state of a detected edit conflict.
type ConflictStatus string

const (
	ConflictPending  ConflictStatus = "pending"
	ConflictResolved ConflictStatus = "resolved"
)

// ConflictChoice names which version the user picked when resolving a
// conflict manually.
type ConflictChoice string

const (
	ChoiceLocal  ConflictChoice = "local"
	ChoiceRemote ConflictChoice = "remote"
)

// EntityVersion is one side of a three-way conflict: the content of an
// entity as seen by one party at one point in time.
type EntityVersion struct {
	// Content is the entity payload. For messages this is the base64
	// ciphertext, decrypted only at presentation time.
	Content string `json:"content"`

	// IV is the base64 nonce paired with Content when the payload is
	// ciphertext. Empty for plaintext entities.
	IV string `json:"iv,omitempty"`

	// UpdatedAt is when this version was produced.
	UpdatedAt time.Time `json:"updated_at"`

	// Author is the UserID that produced this version.
	Author string `json:"author"`
}

// ConflictInfo describes a divergence between the local and remote versions
// of an entity relative to their common ancestor. Conflicts are always
// resolved by explicit user choice, never automatically.
type ConflictInfo struct {
	// ID is the UUID of the conflict record.
	ID string `json:"id"`

	// EntityType names the kind of entity in conflict, e.g. "message".
	EntityType string `json:"entity_type"`

	// EntityID is the UUID of the conflicted entity.
	EntityID string `json:"entity_id"`

	// ConversationID identifies the conversation the entity belongs to,
	// so that resolving in favor of the local version can re-queue it
	// for delivery.
	ConversationID string `json:"conversation_id"`

	// Base is the common ancestor both sides diverged from. Nil when no
	// ancestor is known (concurrent creation).
	Base *EntityVersion `json:"base,omitempty"`

	// Local is the version produced on this device.
	Local EntityVersion `json:"local"`

	// Remote is the version fetched from the server.
	Remote EntityVersion `json:"remote"`

	// Status is the resolution state. See [ConflictStatus].
	Status ConflictStatus `json:"status"`

	// Resolution records the user's pick once Status is ConflictResolved.
	Resolution ConflictChoice `json:"resolution,omitempty"`

	DetectedAt time.Time  `json:"detected_at,omitzero"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the ConflictInfo model.
func (c ConflictInfo) TableName() string {
	return "conflicts"
}
