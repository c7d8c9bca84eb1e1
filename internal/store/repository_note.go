package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/models"
	"github.com/jackc/pgerrcode"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Deletes are soft (the row stays with deleted = TRUE)
// so offline clients can learn about removals during sync; the project
// cascade in [projectRepository.DeleteProject] is the only hard delete.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns it with server-assigned
// fields (version, timestamps).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrForeignProject]:
//     the referenced project does not exist under this user.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote,
		note.NoteID, note.UserID, note.ProjectID, note.Surah, note.Verse, note.Text, note.AudioURL)

	var created models.Note
	if err := scanNote(row, &created); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			log.Err(err).Str("func", "*noteRepository.CreateNote").Str("project_id", note.ProjectID).Msg("project not owned by user")
			return models.Note{}, ErrForeignProject
		default:
			log.Err(err).Str("func", "*noteRepository.CreateNote").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetNote fetches one live note owned by userID.
// Returns [ErrNoteNotFound] for missing, foreign, or soft-deleted notes.
func (r *noteRepository) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getNote, noteID, userID)

	var found models.Note
	if err := scanNote(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNote").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListNotes returns the user's live notes narrowed by query, ordered at
// the database level via the squirrel-built statement.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := buildListNotesQuery(userID, query)
	if err != nil {
		return nil, fmt.Errorf("error building notes query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Bool("retryable", r.db.retryable(err)).Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// GetNotesByIDs returns the full bodies of the requested notes, including
// soft-deleted ones; sync clients need the tombstones too.
func (r *noteRepository) GetNotesByIDs(ctx context.Context, userID int64, noteIDs []string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if len(noteIDs) == 0 {
		return nil, nil
	}

	stmt, args, err := buildNotesByIDsQuery(userID, noteIDs)
	if err != nil {
		return nil, fmt.Errorf("error building notes query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesByIDs").Bool("retryable", r.db.retryable(err)).Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// UpdateNote overwrites the mutable fields, bumps version, and refreshes
// updated_at. A "move" is an UpdateNote with a different ProjectID.
//
// Error handling mirrors CreateNote; additionally a vanished row maps to
// [ErrNoteNotFound].
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateNote,
		note.ProjectID, note.Surah, note.Verse, note.Text, note.AudioURL, note.NoteID, note.UserID)

	var updated models.Note
	if err := scanNote(row, &updated); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Note{}, ErrNoteNotFound
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("project_id", note.ProjectID).Msg("project not owned by user")
			return models.Note{}, ErrForeignProject
		default:
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteNote soft-deletes a note. Returns [ErrNoteNotFound] when the note
// does not exist, belongs to another user, or is already deleted.
func (r *noteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Bool("retryable", r.db.retryable(err)).Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ListNoteStates returns compact sync descriptors of every note the user
// owns, soft-deleted included. Content hashes are computed here so the
// database never stores derivable data.
func (r *noteRepository) ListNoteStates(ctx context.Context, userID int64) ([]models.NoteState, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAllNotes, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNoteStates").Bool("retryable", r.db.retryable(err)).Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	notes, err := collectNotes(rows)
	if err != nil {
		return nil, err
	}

	states := make([]models.NoteState, 0, len(notes))
	for _, n := range notes {
		updatedAt := n.UpdatedAt
		states = append(states, models.NoteState{
			NoteID:    n.NoteID,
			Hash:      utils.NoteContentHash(n),
			Version:   n.Version,
			Deleted:   n.Deleted,
			UpdatedAt: &updatedAt,
		})
	}

	return states, nil
}

func scanNote(row rowScanner, n *models.Note) error {
	return row.Scan(&n.NoteID, &n.UserID, &n.ProjectID, &n.Surah, &n.Verse, &n.Text,
		&n.AudioURL, &n.Version, &n.Deleted, &n.CreatedAt, &n.UpdatedAt)
}

func collectNotes(rows *sql.Rows) ([]models.Note, error) {
	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := scanNote(rows, &n); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	return notes, nil
}
