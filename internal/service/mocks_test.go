package service

import (
	"context"
	"errors"

	"github.com/anaszait/tadabbur/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ProjectRepository
// ─────────────────────────────────────────────

type mockProjectRepository struct {
	createProjectFn func(ctx context.Context, project models.Project) (models.Project, error)
	getProjectFn    func(ctx context.Context, userID int64, projectID string) (models.Project, error)
	listProjectsFn  func(ctx context.Context, userID int64) ([]models.Project, error)
	updateProjectFn func(ctx context.Context, project models.Project) (models.Project, error)
	deleteProjectFn func(ctx context.Context, userID int64, projectID string) (int64, error)
}

func (m *mockProjectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.createProjectFn != nil {
		return m.createProjectFn(ctx, project)
	}
	return project, nil
}

func (m *mockProjectRepository) GetProject(ctx context.Context, userID int64, projectID string) (models.Project, error) {
	if m.getProjectFn != nil {
		return m.getProjectFn(ctx, userID, projectID)
	}
	return models.Project{ProjectID: projectID, UserID: userID}, nil
}

func (m *mockProjectRepository) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	if m.listProjectsFn != nil {
		return m.listProjectsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProjectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.updateProjectFn != nil {
		return m.updateProjectFn(ctx, project)
	}
	return project, nil
}

func (m *mockProjectRepository) DeleteProject(ctx context.Context, userID int64, projectID string) (int64, error) {
	if m.deleteProjectFn != nil {
		return m.deleteProjectFn(ctx, userID, projectID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createNoteFn     func(ctx context.Context, note models.Note) (models.Note, error)
	getNoteFn        func(ctx context.Context, userID int64, noteID string) (models.Note, error)
	listNotesFn      func(ctx context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error)
	getNotesByIDsFn  func(ctx context.Context, userID int64, noteIDs []string) ([]models.Note, error)
	updateNoteFn     func(ctx context.Context, note models.Note) (models.Note, error)
	deleteNoteFn     func(ctx context.Context, userID int64, noteID string) error
	listNoteStatesFn func(ctx context.Context, userID int64) ([]models.NoteState, error)
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	if m.getNoteFn != nil {
		return m.getNoteFn(ctx, userID, noteID)
	}
	return models.Note{NoteID: noteID, UserID: userID}, nil
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(ctx, userID, query)
	}
	return nil, nil
}

func (m *mockNoteRepository) GetNotesByIDs(ctx context.Context, userID int64, noteIDs []string) ([]models.Note, error) {
	if m.getNotesByIDsFn != nil {
		return m.getNotesByIDsFn(ctx, userID, noteIDs)
	}
	return nil, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.updateNoteFn != nil {
		return m.updateNoteFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	if m.deleteNoteFn != nil {
		return m.deleteNoteFn(ctx, userID, noteID)
	}
	return nil
}

func (m *mockNoteRepository) ListNoteStates(ctx context.Context, userID int64) ([]models.NoteState, error) {
	if m.listNoteStatesFn != nil {
		return m.listNoteStatesFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.AudioStore
// ─────────────────────────────────────────────

type mockAudioStore struct {
	saveFn   func(ctx context.Context, userID int64, noteID string, data []byte) (string, error)
	loadFn   func(ctx context.Context, userID int64, noteID string) ([]byte, error)
	removeFn func(ctx context.Context, userID int64, noteID string) error
}

func (m *mockAudioStore) Save(ctx context.Context, userID int64, noteID string, data []byte) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, noteID, data)
	}
	return "/api/notes/" + noteID + "/audio", nil
}

func (m *mockAudioStore) Load(ctx context.Context, userID int64, noteID string) ([]byte, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, userID, noteID)
	}
	return nil, nil
}

func (m *mockAudioStore) Remove(ctx context.Context, userID int64, noteID string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, noteID)
	}
	return nil
}
