package store

import (
	"context"

	"github.com/anaszait/tadabbur/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ProjectRepository persists reading passes.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, userID int64, projectID string) (models.Project, error)
	ListProjects(ctx context.Context, userID int64) ([]models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)

	// DeleteProject removes the pass and every note referencing it inside
	// a single transaction. Returns the number of notes removed.
	DeleteProject(ctx context.Context, userID int64, projectID string) (int64, error)
}

// NoteRepository persists verse-anchored notes.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)

	// ListNotes returns live (not soft-deleted) notes of the user,
	// narrowed by the optional filters of query. Ordering is applied at
	// the database level.
	ListNotes(ctx context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error)

	// GetNotesByIDs returns the full bodies of the requested notes,
	// soft-deleted ones included (sync needs them).
	GetNotesByIDs(ctx context.Context, userID int64, noteIDs []string) ([]models.Note, error)

	// UpdateNote overwrites the mutable fields (text, surah, verse,
	// project_id, audio_url), bumps version and updated_at.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote soft-deletes a note so offline clients learn about the
	// removal during their next sync.
	DeleteNote(ctx context.Context, userID int64, noteID string) error

	// ListNoteStates returns the compact sync descriptors of every note
	// the user owns, soft-deleted included.
	ListNoteStates(ctx context.Context, userID int64) ([]models.NoteState, error)
}

// AudioStore persists note voice recordings outside the database.
type AudioStore interface {
	// Save stores the recording bytes of a note and returns the relative
	// URL under which it can be fetched back.
	Save(ctx context.Context, userID int64, noteID string, data []byte) (string, error)

	// Load returns the stored recording of a note.
	Load(ctx context.Context, userID int64, noteID string) ([]byte, error)

	// Remove deletes the stored recording if present. Missing files are
	// not an error.
	Remove(ctx context.Context, userID int64, noteID string) error
}
