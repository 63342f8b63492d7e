package service

import (
	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/crypto"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
)

type ClientServices struct {
	KeyService        KeyManagementService
	EncryptionService EncryptionService
	QueueService      OfflineQueueService
	ConflictEngine    ConflictResolutionEngine
	WelcomeService    WelcomeService
	AuthService       ClientAuthService
}

func NewClientServices(localStore *store.ClientStorages, remote adapter.RemoteStore, appCfg config.ClientApp, log *logger.Logger) *ClientServices {
	keyring := crypto.NewKeyring()
	keySvc := NewKeyManagementService(remote, keyring, appCfg.DeviceID)
	encryptionSvc := NewEncryptionService(remote, keyring, keySvc)
	queueSvc := NewOfflineQueueService(localStore.QueueRepository, remote, encryptionSvc, log)
	conflictEngine := NewConflictResolutionEngine(localStore.ConflictRepository, localStore.QueueRepository)
	welcomeSvc := NewWelcomeService(remote, keySvc, encryptionSvc, appCfg)
	authSvc := NewClientAuthService(remote, keyring, keySvc)

	return &ClientServices{
		KeyService:        keySvc,
		EncryptionService: encryptionSvc,
		QueueService:      queueSvc,
		ConflictEngine:    conflictEngine,
		WelcomeService:    welcomeSvc,
		AuthService:       authSvc,
	}
}
