package store

const (
	createUser = `INSERT INTO users (user_id, email, auth_hash, auth_salt)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, auth_hash, auth_salt, welcome_sent, created_at;`

	findUserByEmail = `SELECT user_id, email, auth_hash, auth_salt, welcome_sent, created_at
    FROM users
    WHERE email = $1;`

	getWelcomeSent = `SELECT welcome_sent
		FROM users
		WHERE user_id = $1;`

	markWelcomeSent = `UPDATE users
		SET welcome_sent = true
		WHERE user_id = $1;`

	// Insert path: the conversation row is locked first so that the
	// sequence number read and the message insert form one atomic step.
	lockConversation = `SELECT last_message_at
		FROM conversations
		WHERE id = $1
		FOR UPDATE;`

	maxSequenceNumber = `SELECT COALESCE(MAX(sequence_number), 0)
		FROM messages
		WHERE conversation_id = $1;`

	insertMessage = `INSERT INTO messages (
			id,
			conversation_id,
			sender_id,
			encrypted_content,
			iv,
			sequence_number,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, conversation_id, sender_id, encrypted_content, iv, sequence_number, created_at;`

	touchConversation = `UPDATE conversations
		SET last_message_at = NOW()
		WHERE id = $1;`

	getMessageByID = `SELECT id, conversation_id, sender_id, encrypted_content, iv, sequence_number, created_at, delivered_at, edited, deleted
		FROM messages
		WHERE id = $1;`

	nextSequenceNumber = `SELECT COALESCE(MAX(sequence_number), 0) + 1
		FROM messages
		WHERE conversation_id = $1;`

	ensureConversation = `INSERT INTO conversations (id, title)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING;`

	upsertKeyRecord = `INSERT INTO encryption_keys (
			user_id,
			public_key,
			salt,
			device_id,
			curve_version,
			created_at,
			expires_at,
			revoked
		) VALUES ($1, $2, $3, $4, $5, NOW(), $6, false)
		ON CONFLICT (user_id) DO UPDATE SET
			public_key    = EXCLUDED.public_key,
			salt          = EXCLUDED.salt,
			device_id     = EXCLUDED.device_id,
			curve_version = EXCLUDED.curve_version,
			expires_at    = EXCLUDED.expires_at,
			revoked       = false
		RETURNING user_id, public_key, salt, device_id, curve_version, created_at, expires_at, revoked;`

	getKeyRecord = `SELECT user_id, public_key, salt, device_id, curve_version, created_at, expires_at, revoked
		FROM encryption_keys
		WHERE user_id = $1;`
)
