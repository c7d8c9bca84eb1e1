package service

import (
	"context"
	"errors"

	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
)

var errTransport = errors.New("transport is down")

// ── mockLocalStore ───────────────────────────────────────────────────────────

// mockLocalStore is a function-field test double for [store.LocalStore].
// Unset fields behave as empty no-op success.
type mockLocalStore struct {
	SaveSessionFunc  func(ctx context.Context, session models.Session) error
	LoadSessionFunc  func(ctx context.Context) (models.Session, error)
	ClearSessionFunc func(ctx context.Context) error

	UpsertProjectsFunc func(ctx context.Context, projects []models.Project) error
	ListProjectsFunc   func(ctx context.Context) ([]models.Project, error)
	DeleteProjectFunc  func(ctx context.Context, projectID string) error

	UpsertNotesFunc     func(ctx context.Context, notes []models.Note) error
	SaveLocalNoteFunc   func(ctx context.Context, note models.Note) error
	GetNoteFunc         func(ctx context.Context, noteID string) (models.Note, error)
	ListNotesFunc       func(ctx context.Context) ([]models.Note, error)
	DeleteNotesFunc     func(ctx context.Context, noteIDs []string) error
	MarkNoteDeletedFunc func(ctx context.Context, noteID string) error
	DirtyNotesFunc      func(ctx context.Context) ([]models.Note, error)
	NoteStatesFunc      func(ctx context.Context) ([]models.NoteState, error)
}

func (m *mockLocalStore) SaveSession(ctx context.Context, session models.Session) error {
	if m.SaveSessionFunc != nil {
		return m.SaveSessionFunc(ctx, session)
	}
	return nil
}

func (m *mockLocalStore) LoadSession(ctx context.Context) (models.Session, error) {
	if m.LoadSessionFunc != nil {
		return m.LoadSessionFunc(ctx)
	}
	return models.Session{}, store.ErrLocalSessionNotFound
}

func (m *mockLocalStore) ClearSession(ctx context.Context) error {
	if m.ClearSessionFunc != nil {
		return m.ClearSessionFunc(ctx)
	}
	return nil
}

func (m *mockLocalStore) UpsertProjects(ctx context.Context, projects []models.Project) error {
	if m.UpsertProjectsFunc != nil {
		return m.UpsertProjectsFunc(ctx, projects)
	}
	return nil
}

func (m *mockLocalStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx)
	}
	return nil, nil
}

func (m *mockLocalStore) DeleteProject(ctx context.Context, projectID string) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID)
	}
	return nil
}

func (m *mockLocalStore) UpsertNotes(ctx context.Context, notes []models.Note) error {
	if m.UpsertNotesFunc != nil {
		return m.UpsertNotesFunc(ctx, notes)
	}
	return nil
}

func (m *mockLocalStore) SaveLocalNote(ctx context.Context, note models.Note) error {
	if m.SaveLocalNoteFunc != nil {
		return m.SaveLocalNoteFunc(ctx, note)
	}
	return nil
}

func (m *mockLocalStore) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	if m.GetNoteFunc != nil {
		return m.GetNoteFunc(ctx, noteID)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockLocalStore) ListNotes(ctx context.Context) ([]models.Note, error) {
	if m.ListNotesFunc != nil {
		return m.ListNotesFunc(ctx)
	}
	return nil, nil
}

func (m *mockLocalStore) DeleteNotes(ctx context.Context, noteIDs []string) error {
	if m.DeleteNotesFunc != nil {
		return m.DeleteNotesFunc(ctx, noteIDs)
	}
	return nil
}

func (m *mockLocalStore) MarkNoteDeleted(ctx context.Context, noteID string) error {
	if m.MarkNoteDeletedFunc != nil {
		return m.MarkNoteDeletedFunc(ctx, noteID)
	}
	return nil
}

func (m *mockLocalStore) DirtyNotes(ctx context.Context) ([]models.Note, error) {
	if m.DirtyNotesFunc != nil {
		return m.DirtyNotesFunc(ctx)
	}
	return nil, nil
}

func (m *mockLocalStore) NoteStates(ctx context.Context) ([]models.NoteState, error) {
	if m.NoteStatesFunc != nil {
		return m.NoteStatesFunc(ctx)
	}
	return nil, nil
}

func (m *mockLocalStore) Close() error { return nil }

// ── mockServerAdapter ────────────────────────────────────────────────────────

// mockServerAdapter is a function-field test double for
// [adapter.ServerAdapter].
type mockServerAdapter struct {
	token string

	RegisterFunc      func(ctx context.Context, user models.User) (models.User, string, error)
	LoginFunc         func(ctx context.Context, user models.User) (models.User, string, error)
	GetVersionFunc    func(ctx context.Context) (string, error)
	CreateProjectFunc func(ctx context.Context, project models.Project) (models.Project, error)
	ListProjectsFunc  func(ctx context.Context) ([]models.Project, error)
	UpdateProjectFunc func(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProjectFunc func(ctx context.Context, projectID string) (int64, error)
	CreateNoteFunc    func(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNoteFunc    func(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNoteFunc    func(ctx context.Context, noteID string) error
	GetNoteStatesFunc func(ctx context.Context) ([]models.NoteState, error)
	GetNotesByIDsFunc func(ctx context.Context, noteIDs []string) ([]models.Note, error)
	GetVerseFunc      func(ctx context.Context, surah, verse int) (models.Verse, error)
	GetShareLinksFunc func(ctx context.Context, noteID string) (models.ShareLinks, error)
}

func (m *mockServerAdapter) SetToken(token string) { m.token = token }
func (m *mockServerAdapter) Token() string         { return m.token }

func (m *mockServerAdapter) Register(ctx context.Context, user models.User) (models.User, string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, user)
	}
	return models.User{}, "", errTransport
}

func (m *mockServerAdapter) Login(ctx context.Context, user models.User) (models.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, user)
	}
	return models.User{}, "", errTransport
}

func (m *mockServerAdapter) GetVersion(ctx context.Context) (string, error) {
	if m.GetVersionFunc != nil {
		return m.GetVersionFunc(ctx)
	}
	return "", errTransport
}

func (m *mockServerAdapter) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, project)
	}
	return models.Project{}, errTransport
}

func (m *mockServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx)
	}
	return nil, errTransport
}

func (m *mockServerAdapter) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, project)
	}
	return models.Project{}, errTransport
}

func (m *mockServerAdapter) DeleteProject(ctx context.Context, projectID string) (int64, error) {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID)
	}
	return 0, errTransport
}

func (m *mockServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.CreateNoteFunc != nil {
		return m.CreateNoteFunc(ctx, note)
	}
	return models.Note{}, errTransport
}

func (m *mockServerAdapter) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.UpdateNoteFunc != nil {
		return m.UpdateNoteFunc(ctx, note)
	}
	return models.Note{}, errTransport
}

func (m *mockServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	if m.DeleteNoteFunc != nil {
		return m.DeleteNoteFunc(ctx, noteID)
	}
	return errTransport
}

func (m *mockServerAdapter) GetNoteStates(ctx context.Context) ([]models.NoteState, error) {
	if m.GetNoteStatesFunc != nil {
		return m.GetNoteStatesFunc(ctx)
	}
	return nil, errTransport
}

func (m *mockServerAdapter) GetNotesByIDs(ctx context.Context, noteIDs []string) ([]models.Note, error) {
	if m.GetNotesByIDsFunc != nil {
		return m.GetNotesByIDsFunc(ctx, noteIDs)
	}
	return nil, errTransport
}

func (m *mockServerAdapter) GetVerse(ctx context.Context, surah, verse int) (models.Verse, error) {
	if m.GetVerseFunc != nil {
		return m.GetVerseFunc(ctx, surah, verse)
	}
	return models.Verse{}, errTransport
}

func (m *mockServerAdapter) GetShareLinks(ctx context.Context, noteID string) (models.ShareLinks, error) {
	if m.GetShareLinksFunc != nil {
		return m.GetShareLinksFunc(ctx, noteID)
	}
	return models.ShareLinks{}, errTransport
}
