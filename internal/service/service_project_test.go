package service

import (
	"context"
	"testing"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateProject_AssignsID(t *testing.T) {
	projects := &mockProjectRepository{
		createProjectFn: func(_ context.Context, project models.Project) (models.Project, error) {
			assert.NotEmpty(t, project.ProjectID)
			return project, nil
		},
	}
	svc := NewProjectService(projects, logger.Nop())

	created, err := svc.CreateProject(context.Background(), models.Project{UserID: 1, Name: "Ramadan pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ProjectID)
}

func TestProjectService_CreateProject_InvalidData(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{}, logger.Nop())

	_, err := svc.CreateProject(context.Background(), models.Project{UserID: 1, Name: " "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateProject(context.Background(), models.Project{UserID: 1, Name: "Pass", Color: "green"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProjectService_DeleteProject_ReportsNoteCount(t *testing.T) {
	projects := &mockProjectRepository{
		deleteProjectFn: func(_ context.Context, userID int64, projectID string) (int64, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "p1", projectID)
			return 3, nil
		},
	}
	svc := NewProjectService(projects, logger.Nop())

	notesDeleted, err := svc.DeleteProject(context.Background(), 1, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), notesDeleted)
}

func TestProjectService_DeleteProject_NotFound(t *testing.T) {
	projects := &mockProjectRepository{
		deleteProjectFn: func(_ context.Context, _ int64, _ string) (int64, error) {
			return 0, store.ErrProjectNotFound
		},
	}
	svc := NewProjectService(projects, logger.Nop())

	_, err := svc.DeleteProject(context.Background(), 1, "ghost")
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}

func TestProjectService_UpdateProject_StorageError(t *testing.T) {
	projects := &mockProjectRepository{
		updateProjectFn: func(_ context.Context, _ models.Project) (models.Project, error) {
			return models.Project{}, errStorage
		},
	}
	svc := NewProjectService(projects, logger.Nop())

	_, err := svc.UpdateProject(context.Background(), models.Project{ProjectID: "p1", Name: "Pass"})
	assert.ErrorIs(t, err, errStorage)
}
