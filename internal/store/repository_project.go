package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. A reading pass never outlives its notes: deletion
// runs as a single transaction that removes the notes first.
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProject persists a new reading pass and returns it with
// server-assigned timestamps.
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject,
		project.ProjectID, project.UserID, project.Name, project.Description, project.Color)

	var created models.Project
	if err := scanProject(row, &created); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetProject fetches one pass owned by userID.
// Returns [ErrProjectNotFound] when no matching row exists.
func (r *projectRepository) GetProject(ctx context.Context, userID int64, projectID string) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getProject, projectID, userID)

	var found models.Project
	if err := scanProject(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "*projectRepository.GetProject").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListProjects returns all passes of the user ordered by creation time.
func (r *projectRepository) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProjects, userID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Bool("retryable", r.db.retryable(err)).Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return projects, nil
}

// UpdateProject overwrites name, description and color, refreshing
// updated_at. Returns [ErrProjectNotFound] when the pass does not exist or
// belongs to another user.
func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateProject,
		project.Name, project.Description, project.Color, project.ProjectID, project.UserID)

	var updated models.Project
	if err := scanProject(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteProject removes a pass and every note referencing it inside one
// transaction, returning the number of notes removed.
//
// The original application issued a client-side batched delete against a
// schemaless backend; here the whole cascade is atomic — either the pass
// and all of its notes disappear together, or nothing does.
func (r *projectRepository) DeleteProject(ctx context.Context, userID int64, projectID string) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Bool("retryable", r.db.retryable(err)).Msg("error: begin tx")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	notesResult, err := tx.ExecContext(ctx, deleteProjectNotes, projectID, userID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Bool("retryable", r.db.retryable(err)).Msg("error: deleting notes")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	notesDeleted, err := notesResult.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	projectResult, err := tx.ExecContext(ctx, deleteProject, projectID, userID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Bool("retryable", r.db.retryable(err)).Msg("error: deleting project")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	affected, err := projectResult.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return 0, ErrProjectNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Bool("retryable", r.db.retryable(err)).Msg("error: commit")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	log.Debug().Str("project_id", projectID).Int64("notes_deleted", notesDeleted).Msg("project deleted with its notes")

	return notesDeleted, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner, p *models.Project) error {
	return row.Scan(&p.ProjectID, &p.UserID, &p.Name, &p.Description, &p.Color, &p.CreatedAt, &p.UpdatedAt)
}
