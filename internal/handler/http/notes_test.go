package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNote_Success(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, int64(1), note.UserID, "user ID must come from the token, not the body")
			note.NoteID = "n1"
			return note, nil
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodPost, "/api/notes",
		`{"project_id":"p1","surah":2,"verse":255,"text":"Ayat al-Kursi"}`, authHeaders())

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "n1", created.NoteID)
}

func TestCreateNote_ForeignProject(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, _ models.Note) (models.Note, error) {
			return models.Note{}, store.ErrForeignProject
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodPost, "/api/notes",
		`{"project_id":"theirs","surah":2,"verse":255,"text":"x"}`, authHeaders())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListNotes_QueryParamsReachService(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, models.NoteListQuery{
				ProjectID: "p1",
				Surah:     2,
				Search:    "kursi",
				Sort:      models.SortByReference,
			}, query)
			return []models.Note{{NoteID: "n1"}}, nil
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodGet,
		"/api/notes?project=p1&surah=2&search=kursi&sort=reference", "", authHeaders())

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.NotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Length)
}

func TestListNotes_BadSurahFilter(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rec := doRequest(t, h, http.MethodGet, "/api/notes?surah=two", "", authHeaders())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNote_NotFound(t *testing.T) {
	notes := &mockNoteService{
		getNoteFn: func(_ context.Context, _ int64, _ string) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodGet, "/api/notes/ghost", "", authHeaders())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateNote_IDComesFromPath(t *testing.T) {
	notes := &mockNoteService{
		updateNoteFn: func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, "n1", note.NoteID)
			return note, nil
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodPut, "/api/notes/n1",
		`{"note_id":"spoofed","project_id":"p1","surah":2,"verse":255,"text":"x"}`, authHeaders())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteNote_Success(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rec := doRequest(t, h, http.MethodDelete, "/api/notes/n1", "", authHeaders())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMoveNote_Success(t *testing.T) {
	notes := &mockNoteService{
		moveNoteFn: func(_ context.Context, userID int64, noteID, projectID string) (models.Note, error) {
			assert.Equal(t, "n1", noteID)
			assert.Equal(t, "p2", projectID)
			return models.Note{NoteID: noteID, UserID: userID, ProjectID: projectID}, nil
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodPost, "/api/notes/n1/move",
		`{"project_id":"p2"}`, authHeaders())

	require.Equal(t, http.StatusOK, rec.Code)

	var moved models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
	assert.Equal(t, "p2", moved.ProjectID)
}

func TestUploadAudio_Success(t *testing.T) {
	notes := &mockNoteService{
		attachAudioFn: func(_ context.Context, _ int64, noteID string, data []byte) (models.Note, error) {
			assert.Equal(t, []byte("webm bytes"), data)
			return models.Note{NoteID: noteID, AudioURL: "/api/notes/" + noteID + "/audio"}, nil
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodPost, "/api/notes/n1/audio", "webm bytes", authHeaders())

	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, "/api/notes/n1/audio", note.AudioURL)
}

func TestDownloadAudio_Success(t *testing.T) {
	notes := &mockNoteService{
		loadAudioFn: func(_ context.Context, _ int64, _ string) ([]byte, error) {
			return []byte("webm bytes"), nil
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodGet, "/api/notes/n1/audio", "", authHeaders())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/webm", rec.Header().Get("Content-Type"))
	assert.Equal(t, "webm bytes", rec.Body.String())
}

func TestDownloadAudio_Missing(t *testing.T) {
	notes := &mockNoteService{
		loadAudioFn: func(_ context.Context, _ int64, _ string) ([]byte, error) {
			return nil, store.ErrAudioNotFound
		},
	}
	h := newTestHandler(&service.Services{NoteService: notes})

	rec := doRequest(t, h, http.MethodGet, "/api/notes/n1/audio", "", authHeaders())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
