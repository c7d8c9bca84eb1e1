package store

import (
	"context"
	"fmt"

	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
)

// Storages aggregates every persistence backend of the server.
type Storages struct {
	UserRepository    UserRepository
	ProjectRepository ProjectRepository
	NoteRepository    NoteRepository
	AudioStore        AudioStore
}

// NewStorages connects to PostgreSQL, applies pending migrations, prepares
// the audio file store, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	audioStore, err := NewAudioFileStore(cfg.Files.AudioDir, log)
	if err != nil {
		return nil, fmt.Errorf("error creating audio store: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProjectRepository: NewProjectRepository(db, log),
		NoteRepository:    NewNoteRepository(db, log),
		AudioStore:        audioStore,
	}, nil
}
