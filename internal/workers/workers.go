package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/service"
)

// DefaultSyncInterval is used when the worker is started with a zero or
// negative interval.
const DefaultSyncInterval = 30 * time.Second

// queueSyncWorker drains the offline send queue on a ticker. Overlapping
// passes are prevented inside the queue service itself, so a slow network
// round never stacks goroutines here.
type queueSyncWorker struct {
	queueService service.OfflineQueueService
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewQueueSyncWorker creates a queueSyncWorker that calls
// queueService.SyncPending on a ticker. The worker is idle until Start is
// called.
func NewQueueSyncWorker(queueService service.OfflineQueueService, logger *logger.Logger) Worker {
	return &queueSyncWorker{queueService: queueService, logger: logger}
}

// Start implements Worker. It stops any previously running pass loop, then
// launches a background goroutine that calls SyncPending every interval. If
// interval is zero or negative it defaults to [DefaultSyncInterval]. The
// goroutine exits when ctx is cancelled or Stop is called.
func (w *queueSyncWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				report, err := w.queueService.SyncPending(jobCtx)
				if err != nil {
					w.logger.Err(err).Str("func", "*queueSyncWorker.Start").Msg("queue sync pass failed")
					continue
				}
				if report.Synced > 0 || report.Failed > 0 {
					w.logger.Info().
						Int("synced", report.Synced).
						Int("failed", report.Failed).
						Msg("queue sync pass finished")
				}
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the worker
// is not running (no-op in that case).
func (w *queueSyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
