package store

import (
	"context"

	"github.com/anaszait/tadabbur/models"
)

// LocalStore is the client-side cache: a small SQLite database holding the
// login session plus an offline copy of the user's passes and notes.
//
// Notes carry a dirty flag: rows modified locally and not yet pushed to
// the server. Locally created notes additionally have Version == 0 until
// the server assigns one.
type LocalStore interface {
	// SaveSession persists the login state, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error

	UpsertProjects(ctx context.Context, projects []models.Project) error
	ListProjects(ctx context.Context) ([]models.Project, error)
	DeleteProject(ctx context.Context, projectID string) error

	// UpsertNotes writes server-fetched notes into the cache and clears
	// their dirty flag.
	UpsertNotes(ctx context.Context, notes []models.Note) error

	// SaveLocalNote writes a locally created or edited note and marks it
	// dirty for the next sync.
	SaveLocalNote(ctx context.Context, note models.Note) error

	GetNote(ctx context.Context, noteID string) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)

	// DeleteNotes removes rows outright; used when the server reports a
	// note gone.
	DeleteNotes(ctx context.Context, noteIDs []string) error

	// MarkNoteDeleted tombstones a note locally (deleted + dirty) so the
	// removal propagates on the next sync.
	MarkNoteDeleted(ctx context.Context, noteID string) error

	// DirtyNotes returns all locally modified notes awaiting upload.
	// UpsertNotes with the pushed server echo resets the flag.
	DirtyNotes(ctx context.Context) ([]models.Note, error)

	// NoteStates returns sync descriptors of every cached note,
	// tombstones included, with Dirty set on locally modified rows.
	NoteStates(ctx context.Context) ([]models.NoteState, error)

	Close() error
}
