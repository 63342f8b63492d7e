// Package service contains the business logic of chat-keeper, split into a
// server side (account auth, message persistence, key publication) and a
// client side (key derivation, message encryption, the offline send queue,
// conflict resolution and the welcome bootstrap).
package service

import (
	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
)

// Services aggregates the server-side service layer.
type Services struct {
	AuthService    AuthService
	MessageService MessageService
	KeyService     KeyService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, log),
		MessageService: NewMessageService(storages.MessageRepository, log),
		KeyService:     NewKeyService(storages.KeyRepository, log),
		AppInfoService: appInfoService,
	}, nil
}
