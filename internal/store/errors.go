package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDuplicateMessage is returned when an INSERT targets a message ID that
	// already exists. Redelivery of an acknowledged message hits this path.
	ErrDuplicateMessage = errors.New("message already exists")

	// ErrMessageNotFound is returned when a query targets a message that does
	// not exist in the database.
	ErrMessageNotFound = errors.New("message was not found")

	// ErrConversationNotFound is returned when a sequence allocation or
	// timestamp update targets a conversation that does not exist.
	ErrConversationNotFound = errors.New("conversation was not found")

	// ErrKeysNotFound is returned when no key record exists for the requested
	// user.
	ErrKeysNotFound = errors.New("key record was not found")

	// ErrQueuedMessageNotFound is returned when a status transition targets a
	// queued message that no longer exists, e.g. the user deleted the draft
	// while a sync pass was in flight.
	ErrQueuedMessageNotFound = errors.New("queued message was not found")

	// ErrConflictNotFound is returned when a resolution targets a conflict
	// record that does not exist.
	ErrConflictNotFound = errors.New("conflict was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
