package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/service"
	"github.com/MKhiriev/go-chat-keeper/internal/workers"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	worker   workers.Worker
	logger   *logger.Logger
}

// NewApp assembles the client runtime from pre-built services and the queue
// sync worker. Wiring stays in cmd/client so the runtime itself is testable
// with fakes.
func NewApp(services *service.ClientServices, worker workers.Worker, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || worker == nil {
		return nil, errMissingDependencies
	}

	return &App{
		cfg:      cfg,
		services: services,
		worker:   worker,
		logger:   log,
	}, nil
}

// Services exposes the client service layer to callers embedding the runtime.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run blocks until the process receives a termination signal. The queue sync
// worker keeps draining the offline queue for the whole lifetime of the call.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// Only installations configured as the welcome sender carry the admin
	// credentials; everyone else skips the bootstrap.
	if a.cfg.App.AdminUserID != "" && a.cfg.App.WelcomeSecret != "" {
		if err := a.services.WelcomeService.InitializeAdminKeys(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("admin key bootstrap failed, welcome messages are disabled")
		}
	}

	a.worker.Start(ctx, a.cfg.Workers.SyncInterval)
	defer a.worker.Stop()

	a.logger.Info().Msg("client is running")
	<-ctx.Done()
	a.logger.Info().Msg("client shutting down")

	return nil
}
