// Package workers provides background workers for the chat-keeper client.
//
// The package defines the Worker interface and a queue sync worker that
// periodically drains the offline send queue through
// [service.OfflineQueueService].
package workers

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is a background job with an explicit lifecycle. Start launches the
// job; it is idle until then. Stop blocks until the job's goroutine has
// exited.
type Worker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
