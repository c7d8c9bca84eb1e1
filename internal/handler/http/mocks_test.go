package http

import (
	"context"
	"errors"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/models"
)

var errBoom = errors.New("boom")

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString != "valid-token" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ProjectService
// ─────────────────────────────────────────────

type mockProjectService struct {
	createProjectFn func(ctx context.Context, project models.Project) (models.Project, error)
	getProjectFn    func(ctx context.Context, userID int64, projectID string) (models.Project, error)
	listProjectsFn  func(ctx context.Context, userID int64) ([]models.Project, error)
	updateProjectFn func(ctx context.Context, project models.Project) (models.Project, error)
	deleteProjectFn func(ctx context.Context, userID int64, projectID string) (int64, error)
}

func (m *mockProjectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.createProjectFn != nil {
		return m.createProjectFn(ctx, project)
	}
	return project, nil
}

func (m *mockProjectService) GetProject(ctx context.Context, userID int64, projectID string) (models.Project, error) {
	if m.getProjectFn != nil {
		return m.getProjectFn(ctx, userID, projectID)
	}
	return models.Project{ProjectID: projectID, UserID: userID}, nil
}

func (m *mockProjectService) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	if m.listProjectsFn != nil {
		return m.listProjectsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProjectService) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.updateProjectFn != nil {
		return m.updateProjectFn(ctx, project)
	}
	return project, nil
}

func (m *mockProjectService) DeleteProject(ctx context.Context, userID int64, projectID string) (int64, error) {
	if m.deleteProjectFn != nil {
		return m.deleteProjectFn(ctx, userID, projectID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: service.NoteService
// ─────────────────────────────────────────────

type mockNoteService struct {
	createNoteFn    func(ctx context.Context, note models.Note) (models.Note, error)
	getNoteFn       func(ctx context.Context, userID int64, noteID string) (models.Note, error)
	listNotesFn     func(ctx context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error)
	getNotesByIDsFn func(ctx context.Context, userID int64, noteIDs []string) ([]models.Note, error)
	updateNoteFn    func(ctx context.Context, note models.Note) (models.Note, error)
	deleteNoteFn    func(ctx context.Context, userID int64, noteID string) error
	moveNoteFn      func(ctx context.Context, userID int64, noteID, projectID string) (models.Note, error)
	attachAudioFn   func(ctx context.Context, userID int64, noteID string, data []byte) (models.Note, error)
	loadAudioFn     func(ctx context.Context, userID int64, noteID string) ([]byte, error)
	noteStatesFn    func(ctx context.Context, userID int64) ([]models.NoteState, error)
}

func (m *mockNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	if m.getNoteFn != nil {
		return m.getNoteFn(ctx, userID, noteID)
	}
	return models.Note{NoteID: noteID, UserID: userID}, nil
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(ctx, userID, query)
	}
	return nil, nil
}

func (m *mockNoteService) GetNotesByIDs(ctx context.Context, userID int64, noteIDs []string) ([]models.Note, error) {
	if m.getNotesByIDsFn != nil {
		return m.getNotesByIDsFn(ctx, userID, noteIDs)
	}
	return nil, nil
}

func (m *mockNoteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.updateNoteFn != nil {
		return m.updateNoteFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	if m.deleteNoteFn != nil {
		return m.deleteNoteFn(ctx, userID, noteID)
	}
	return nil
}

func (m *mockNoteService) MoveNote(ctx context.Context, userID int64, noteID, projectID string) (models.Note, error) {
	if m.moveNoteFn != nil {
		return m.moveNoteFn(ctx, userID, noteID, projectID)
	}
	return models.Note{NoteID: noteID, UserID: userID, ProjectID: projectID}, nil
}

func (m *mockNoteService) AttachAudio(ctx context.Context, userID int64, noteID string, data []byte) (models.Note, error) {
	if m.attachAudioFn != nil {
		return m.attachAudioFn(ctx, userID, noteID, data)
	}
	return models.Note{NoteID: noteID, UserID: userID, AudioURL: "/api/notes/" + noteID + "/audio"}, nil
}

func (m *mockNoteService) LoadAudio(ctx context.Context, userID int64, noteID string) ([]byte, error) {
	if m.loadAudioFn != nil {
		return m.loadAudioFn(ctx, userID, noteID)
	}
	return nil, nil
}

func (m *mockNoteService) NoteStates(ctx context.Context, userID int64) ([]models.NoteState, error) {
	if m.noteStatesFn != nil {
		return m.noteStatesFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: remaining services
// ─────────────────────────────────────────────

type mockQuranService struct {
	getVerseFn func(ctx context.Context, surah, verse int) (models.Verse, error)
}

func (m *mockQuranService) GetVerse(ctx context.Context, surah, verse int) (models.Verse, error) {
	if m.getVerseFn != nil {
		return m.getVerseFn(ctx, surah, verse)
	}
	return models.Verse{Surah: surah, Verse: verse}, nil
}

func (m *mockQuranService) PrefetchVerses(ctx context.Context, notes []models.Note) {}

type mockExportService struct {
	exportProjectFn func(ctx context.Context, userID int64, projectID string, format service.ExportFormat) ([]byte, string, error)
}

func (m *mockExportService) ExportProject(ctx context.Context, userID int64, projectID string,
	format service.ExportFormat) ([]byte, string, error) {
	if m.exportProjectFn != nil {
		return m.exportProjectFn(ctx, userID, projectID, format)
	}
	return []byte("{}"), "application/json", nil
}

type mockShareService struct {
	shareLinksFn func(ctx context.Context, userID int64, noteID string) (models.ShareLinks, error)
	renderCardFn func(ctx context.Context, userID int64, noteID string) ([]byte, error)
}

func (m *mockShareService) ShareLinks(ctx context.Context, userID int64, noteID string) (models.ShareLinks, error) {
	if m.shareLinksFn != nil {
		return m.shareLinksFn(ctx, userID, noteID)
	}
	return models.ShareLinks{}, nil
}

func (m *mockShareService) RenderCard(ctx context.Context, userID int64, noteID string) ([]byte, error) {
	if m.renderCardFn != nil {
		return m.renderCardFn(ctx, userID, noteID)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	if m.version == "" {
		return "test"
	}
	return m.version
}

// newTestHandler wires a Handler around the given mocks, substituting
// do-nothing mocks for every nil service.
func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.ProjectService == nil {
		services.ProjectService = &mockProjectService{}
	}
	if services.NoteService == nil {
		services.NoteService = &mockNoteService{}
	}
	if services.QuranService == nil {
		services.QuranService = &mockQuranService{}
	}
	if services.ExportService == nil {
		services.ExportService = &mockExportService{}
	}
	if services.ShareService == nil {
		services.ShareService = &mockShareService{}
	}
	if services.SyncService == nil {
		services.SyncService = service.NewSyncService()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{}
	}
	return NewHandler(services, logger.Nop())
}
