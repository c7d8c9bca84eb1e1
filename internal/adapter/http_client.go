package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header, stored via SetToken, and returned alongside
// the created user record.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, string, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter]. It POSTs email and password to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header, stored via SetToken, and returned alongside
// the user record.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, string, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, string, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post(path)
	if err != nil {
		return models.User{}, "", fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, "", fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, token, nil
}

// GetVersion implements [ServerAdapter]. It GETs /api/version and returns
// the reported application version.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	var vr models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&vr).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return vr.Version, nil
}

func (h *httpServerAdapter) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var created models.Project

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(project).
		SetResult(&created).
		Post("/api/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := h.authedRequest(ctx).Get("/api/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var projects []models.Project
	if err = json.Unmarshal(resp.Body(), &projects); err != nil {
		return nil, fmt.Errorf("decode projects response: %w", err)
	}

	return projects, nil
}

func (h *httpServerAdapter) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var updated models.Project

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(project).
		SetResult(&updated).
		Put("/api/projects/" + url.PathEscape(project.ProjectID))
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return updated, nil
}

// DeleteProject implements [ServerAdapter]. It DELETEs the pass and decodes
// the {"notes_deleted": n} body the server answers with.
func (h *httpServerAdapter) DeleteProject(ctx context.Context, projectID string) (int64, error) {
	resp, err := h.authedRequest(ctx).
		Delete("/api/projects/" + url.PathEscape(projectID))
	if err != nil {
		return 0, fmt.Errorf("delete project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var result map[string]int64
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return 0, fmt.Errorf("decode delete project response: %w", err)
	}

	return result["notes_deleted"], nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var updated models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&updated).
		Put("/api/notes/" + url.PathEscape(note.NoteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetNoteStates implements [ServerAdapter]. It GETs the sync state endpoint
// GET /api/sync and decodes the response into a slice of [models.NoteState].
// The server infers the user from the bearer token.
func (h *httpServerAdapter) GetNoteStates(ctx context.Context) ([]models.NoteState, error) {
	resp, err := h.authedRequest(ctx).Get("/api/sync")
	if err != nil {
		return nil, fmt.Errorf("get note states request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("decode sync response: %w", err)
	}

	return sr.NoteStates, nil
}

// GetNotesByIDs implements [ServerAdapter]. It POSTs the note IDs to
// POST /api/sync/notes and returns the full note bodies.
func (h *httpServerAdapter) GetNotesByIDs(ctx context.Context, noteIDs []string) ([]models.Note, error) {
	if len(noteIDs) == 0 {
		return nil, nil
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SyncRequest{NoteIDs: noteIDs}).
		Post("/api/sync/notes")
	if err != nil {
		return nil, fmt.Errorf("get notes by ids request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var nr models.NotesResponse
	if err = json.Unmarshal(resp.Body(), &nr); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return nr.Notes, nil
}

func (h *httpServerAdapter) GetVerse(ctx context.Context, surah, verse int) (models.Verse, error) {
	var v models.Verse

	resp, err := h.authedRequest(ctx).
		SetResult(&v).
		Get("/api/verses/" + strconv.Itoa(surah) + "/" + strconv.Itoa(verse))
	if err != nil {
		return models.Verse{}, fmt.Errorf("get verse request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Verse{}, err
	}

	return v, nil
}

func (h *httpServerAdapter) GetShareLinks(ctx context.Context, noteID string) (models.ShareLinks, error) {
	var links models.ShareLinks

	resp, err := h.authedRequest(ctx).
		SetResult(&links).
		Get("/api/notes/" + url.PathEscape(noteID) + "/share")
	if err != nil {
		return models.ShareLinks{}, fmt.Errorf("get share links request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareLinks{}, err
	}

	return links, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
