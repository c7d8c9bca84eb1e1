package service

import (
	"context"

	"github.com/anaszait/tadabbur/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, userID int64, projectID string) (models.Project, error)
	ListProjects(ctx context.Context, userID int64) ([]models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)

	// DeleteProject removes a reading pass together with all of its notes
	// and reports how many notes went with it.
	DeleteProject(ctx context.Context, userID int64, projectID string) (int64, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error)
	GetNotesByIDs(ctx context.Context, userID int64, noteIDs []string) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) error

	// MoveNote re-parents the note into another pass of the same user.
	MoveNote(ctx context.Context, userID int64, noteID, projectID string) (models.Note, error)

	// AttachAudio stores a voice recording for the note and saves the
	// resulting URL on the note itself.
	AttachAudio(ctx context.Context, userID int64, noteID string, data []byte) (models.Note, error)
	LoadAudio(ctx context.Context, userID int64, noteID string) ([]byte, error)

	// NoteStates returns the compact sync descriptors of every note the
	// user owns, tombstones included.
	NoteStates(ctx context.Context, userID int64) ([]models.NoteState, error)
}

// QuranService resolves verse references into Arabic text plus one
// configured translation.
type QuranService interface {
	GetVerse(ctx context.Context, surah, verse int) (models.Verse, error)

	// PrefetchVerses warms the verse cache for every distinct reference in
	// notes. Lookup failures are ignored; this is best effort.
	PrefetchVerses(ctx context.Context, notes []models.Note)
}

// ExportService renders a reading pass with all of its notes into a
// portable document.
type ExportService interface {
	// ExportProject returns the rendered document and its MIME type.
	ExportProject(ctx context.Context, userID int64, projectID string, format ExportFormat) ([]byte, string, error)
}

// ShareService produces shareable representations of a single note.
type ShareService interface {
	ShareLinks(ctx context.Context, userID int64, noteID string) (models.ShareLinks, error)

	// RenderCard draws the note as a PNG share card.
	RenderCard(ctx context.Context, userID int64, noteID string) ([]byte, error)
}

type SyncService interface {
	BuildSyncPlan(ctx context.Context, serverStates, clientStates []models.NoteState) (models.SyncPlan, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
