package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/models"
	_ "github.com/mattn/go-sqlite3" // database/sql driver
)

// ErrLocalSessionNotFound is returned by LoadSession when the user has
// never logged in (or logged out) on this machine.
var ErrLocalSessionNotFound = errors.New("local session not found")

// localSQLiteStore is the SQLite-backed implementation of [LocalStore].
type localSQLiteStore struct {
	db *sql.DB
}

// NewLocalStore opens (creating if needed) the client cache database at
// dbPath and bootstraps the schema.
func NewLocalStore(dbPath string) (LocalStore, error) {
	if dbPath == "" {
		return nil, errors.New("local store: empty database path")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("local store: opening %s: %w", dbPath, err)
	}

	// sqlite handles a single writer; the TUI and the sync job share this
	// connection pool
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(clientSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("local store: bootstrapping schema: %w", err)
	}

	return &localSQLiteStore{db: db}, nil
}

func (s *localSQLiteStore) SaveSession(ctx context.Context, session models.Session) error {
	_, err := s.db.ExecContext(ctx, clientSaveSession,
		session.UserID, session.Email, session.Token, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("local store: saving session: %w", err)
	}
	return nil
}

func (s *localSQLiteStore) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	row := s.db.QueryRowContext(ctx, clientLoadSession)
	if err := row.Scan(&session.UserID, &session.Email, &session.Token, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		return models.Session{}, fmt.Errorf("local store: loading session: %w", err)
	}
	return session, nil
}

func (s *localSQLiteStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clientClearSession); err != nil {
		return fmt.Errorf("local store: clearing session: %w", err)
	}
	return nil
}

func (s *localSQLiteStore) UpsertProjects(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("local store: begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, p := range projects {
		if _, err := tx.ExecContext(ctx, clientUpsertProject,
			p.ProjectID, p.Name, p.Description, p.Color, p.CreatedAt, p.UpdatedAt); err != nil {
			return fmt.Errorf("local store: upserting project %s: %w", p.ProjectID, err)
		}
	}

	return tx.Commit()
}

func (s *localSQLiteStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, clientListProjects)
	if err != nil {
		return nil, fmt.Errorf("local store: listing projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ProjectID, &p.Name, &p.Description, &p.Color, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("local store: scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *localSQLiteStore) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := s.db.ExecContext(ctx, clientDeleteProject, projectID); err != nil {
		return fmt.Errorf("local store: deleting project: %w", err)
	}
	return nil
}

func (s *localSQLiteStore) UpsertNotes(ctx context.Context, notes []models.Note) error {
	return s.writeNotes(ctx, notes, false)
}

func (s *localSQLiteStore) SaveLocalNote(ctx context.Context, note models.Note) error {
	return s.writeNotes(ctx, []models.Note{note}, true)
}

func (s *localSQLiteStore) writeNotes(ctx context.Context, notes []models.Note, dirty bool) error {
	if len(notes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("local store: begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, n := range notes {
		if _, err := tx.ExecContext(ctx, clientUpsertNote,
			n.NoteID, n.ProjectID, n.Surah, n.Verse, n.Text, n.AudioURL,
			n.Version, n.Deleted, dirty, n.CreatedAt, n.UpdatedAt); err != nil {
			return fmt.Errorf("local store: upserting note %s: %w", n.NoteID, err)
		}
	}

	return tx.Commit()
}

func (s *localSQLiteStore) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var n models.Note
	row := s.db.QueryRowContext(ctx, clientGetNote, noteID)
	if err := scanLocalNote(row, &n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, fmt.Errorf("local store: getting note: %w", err)
	}
	return n, nil
}

func (s *localSQLiteStore) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.queryNotes(ctx, clientListNotes)
}

func (s *localSQLiteStore) DirtyNotes(ctx context.Context) ([]models.Note, error) {
	return s.queryNotes(ctx, clientDirtyNotes)
}

func (s *localSQLiteStore) queryNotes(ctx context.Context, stmt string) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("local store: querying notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := scanLocalNote(rows, &n); err != nil {
			return nil, fmt.Errorf("local store: scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *localSQLiteStore) DeleteNotes(ctx context.Context, noteIDs []string) error {
	if len(noteIDs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("local store: begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, id := range noteIDs {
		if _, err := tx.ExecContext(ctx, clientDeleteNote, id); err != nil {
			return fmt.Errorf("local store: deleting note %s: %w", id, err)
		}
	}

	return tx.Commit()
}

func (s *localSQLiteStore) MarkNoteDeleted(ctx context.Context, noteID string) error {
	result, err := s.db.ExecContext(ctx, clientMarkNoteDeleted, time.Now(), noteID)
	if err != nil {
		return fmt.Errorf("local store: tombstoning note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("local store: tombstoning note: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (s *localSQLiteStore) NoteStates(ctx context.Context) ([]models.NoteState, error) {
	rows, err := s.db.QueryContext(ctx, clientNoteStates)
	if err != nil {
		return nil, fmt.Errorf("local store: querying note states: %w", err)
	}
	defer rows.Close()

	var states []models.NoteState
	for rows.Next() {
		var n models.Note
		var dirty bool
		if err := rows.Scan(&n.NoteID, &n.ProjectID, &n.Surah, &n.Verse, &n.Text,
			&n.AudioURL, &n.Version, &n.Deleted, &dirty, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("local store: scanning note state: %w", err)
		}

		updatedAt := n.UpdatedAt
		states = append(states, models.NoteState{
			NoteID:    n.NoteID,
			Hash:      utils.NoteContentHash(n),
			Version:   n.Version,
			Deleted:   n.Deleted,
			Dirty:     dirty,
			UpdatedAt: &updatedAt,
		})
	}
	return states, rows.Err()
}

func (s *localSQLiteStore) Close() error {
	return s.db.Close()
}

func scanLocalNote(row rowScanner, n *models.Note) error {
	return row.Scan(&n.NoteID, &n.ProjectID, &n.Surah, &n.Verse, &n.Text,
		&n.AudioURL, &n.Version, &n.Deleted, &n.CreatedAt, &n.UpdatedAt)
}
