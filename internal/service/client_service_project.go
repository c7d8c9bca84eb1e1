package service

import (
	"context"
	"fmt"

	"github.com/anaszait/tadabbur/internal/adapter"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
)

type clientProjectService struct {
	localStore store.LocalStore
	adapter    adapter.ServerAdapter
}

func NewClientProjectService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter) ClientProjectService {
	return &clientProjectService{localStore: localStore, adapter: serverAdapter}
}

// CreateProject implements [ClientProjectService]. Passes are created on
// the server first so their IDs and timestamps are authoritative; the
// local cache is refreshed on success.
func (s *clientProjectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	created, err := s.adapter.CreateProject(ctx, project)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}

	if err = s.localStore.UpsertProjects(ctx, []models.Project{created}); err != nil {
		return models.Project{}, fmt.Errorf("cache created project: %w", err)
	}
	return created, nil
}

// ListProjects implements [ClientProjectService]. The server listing is
// preferred and mirrored into the cache; when the server cannot be
// reached the cached listing is returned so the TUI keeps working
// offline.
func (s *clientProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.adapter.ListProjects(ctx)
	if err != nil {
		cached, cacheErr := s.localStore.ListProjects(ctx)
		if cacheErr != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		return cached, nil
	}

	if err = s.localStore.UpsertProjects(ctx, projects); err != nil {
		return nil, fmt.Errorf("cache project listing: %w", err)
	}
	return projects, nil
}

func (s *clientProjectService) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	updated, err := s.adapter.UpdateProject(ctx, project)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}

	if err = s.localStore.UpsertProjects(ctx, []models.Project{updated}); err != nil {
		return models.Project{}, fmt.Errorf("cache updated project: %w", err)
	}
	return updated, nil
}

// DeleteProject implements [ClientProjectService]. The server removal
// cascades to the pass's notes there; the cached note rows are cleaned up
// by the next sync when their tombstoned states come back.
func (s *clientProjectService) DeleteProject(ctx context.Context, projectID string) (int64, error) {
	notesDeleted, err := s.adapter.DeleteProject(ctx, projectID)
	if err != nil {
		return 0, mapAdapterError(err)
	}

	if err = s.localStore.DeleteProject(ctx, projectID); err != nil {
		return notesDeleted, fmt.Errorf("drop cached project: %w", err)
	}
	return notesDeleted, nil
}
