package service

import (
	"context"
	"fmt"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/internal/validators"
	"github.com/anaszait/tadabbur/models"
)

// projectService is the concrete implementation of ProjectService.
type projectService struct {
	projectRepository store.ProjectRepository

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// CreateProject validates and persists a new reading pass. A missing
// ProjectID is assigned server-side.
func (s *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateProject(project); err != nil {
		log.Err(err).Int64("userID", project.UserID).Msg("invalid project data provided")
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if project.ProjectID == "" {
		project.ProjectID = utils.NewID()
	}

	createdProject, err := s.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("projectID", project.ProjectID).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return createdProject, nil
}

func (s *projectService) GetProject(ctx context.Context, userID int64, projectID string) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := s.projectRepository.GetProject(ctx, userID, projectID)
	if err != nil {
		log.Err(err).Str("projectID", projectID).Msg("project lookup failed")
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}

	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	projects, err := s.projectRepository.ListProjects(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("project listing failed")
		return nil, fmt.Errorf("project listing failed: %w", err)
	}

	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateProject(project); err != nil {
		log.Err(err).Str("projectID", project.ProjectID).Msg("invalid project data provided")
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedProject, err := s.projectRepository.UpdateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("projectID", project.ProjectID).Msg("project update ended with error")
		return models.Project{}, fmt.Errorf("project update ended with error: %w", err)
	}

	return updatedProject, nil
}

// DeleteProject removes the pass and every note inside it in a single
// transaction and reports the number of removed notes.
func (s *projectService) DeleteProject(ctx context.Context, userID int64, projectID string) (int64, error) {
	log := logger.FromContext(ctx)

	notesDeleted, err := s.projectRepository.DeleteProject(ctx, userID, projectID)
	if err != nil {
		log.Err(err).Str("projectID", projectID).Msg("project deletion ended with error")
		return 0, fmt.Errorf("project deletion ended with error: %w", err)
	}

	log.Info().Str("projectID", projectID).Int64("notesDeleted", notesDeleted).Msg("project deleted")
	return notesDeleted, nil
}
