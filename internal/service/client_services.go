package service

import (
	"github.com/anaszait/tadabbur/internal/adapter"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
)

// ClientServices bundles everything the TUI needs.
type ClientServices struct {
	AuthService    ClientAuthService
	ProjectService ClientProjectService
	NoteService    ClientNoteService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
}

func NewClientServices(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter)
	projectSvc := NewClientProjectService(localStore, serverAdapter)
	noteSvc := NewClientNoteService(localStore, serverAdapter)
	syncSvc := NewClientSyncService(localStore, serverAdapter)

	return &ClientServices{
		AuthService:    authSvc,
		ProjectService: projectSvc,
		NoteService:    noteSvc,
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, log),
	}
}
