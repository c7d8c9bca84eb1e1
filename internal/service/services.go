package service

import (
	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
)

// Services aggregates every server-side business service.
type Services struct {
	AuthService    AuthService
	ProjectService ProjectService
	NoteService    NoteService
	QuranService   QuranService
	ExportService  ExportService
	ShareService   ShareService
	SyncService    SyncService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	noteService := NewNoteService(storages.NoteRepository, storages.ProjectRepository, storages.AudioStore, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProjectService: NewProjectService(storages.ProjectRepository, logger),
		NoteService:    noteService,
		QuranService:   NewQuranService(cfg.Quran, logger),
		ExportService:  NewExportService(storages.ProjectRepository, storages.NoteRepository, logger),
		ShareService:   NewShareService(storages.NoteRepository, cfg.Share, logger),
		SyncService:    NewSyncService(),
		AppInfoService: appInfoService,
	}, nil
}
