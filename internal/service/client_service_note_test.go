package service

import (
	"context"
	"testing"

	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── CreateNote ───────────────────────────────────────────────────────────────

func TestClientNotes_Create_AssignsIDAndStaysUnversioned(t *testing.T) {
	var saved models.Note
	local := &mockLocalStore{
		SaveLocalNoteFunc: func(_ context.Context, n models.Note) error {
			saved = n
			return nil
		},
	}

	svc := NewClientNoteService(local, &mockServerAdapter{})
	created, err := svc.CreateNote(context.Background(), models.Note{
		ProjectID: "p1",
		Surah:     2,
		Verse:     255,
		Text:      "reflection on the throne verse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.NoteID)
	assert.Zero(t, created.Version, "an offline-created note must wait for the server to assign a version")
	assert.Equal(t, created, saved)
}

func TestClientNotes_Create_RecoversReferenceFromText(t *testing.T) {
	local := &mockLocalStore{
		SaveLocalNoteFunc: func(_ context.Context, _ models.Note) error { return nil },
	}

	svc := NewClientNoteService(local, &mockServerAdapter{})
	created, err := svc.CreateNote(context.Background(), models.Note{
		ProjectID: "p1",
		Text:      "Surah 18, verse 10 - the youths and the cave",
	})

	require.NoError(t, err)
	assert.Equal(t, 18, created.Surah)
	assert.Equal(t, 10, created.Verse)
}

func TestClientNotes_Create_NoReference(t *testing.T) {
	svc := NewClientNoteService(&mockLocalStore{}, &mockServerAdapter{})

	_, err := svc.CreateNote(context.Background(), models.Note{ProjectID: "p1", Text: "no anchor at all"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── UpdateNote ───────────────────────────────────────────────────────────────

func TestClientNotes_Update_KeepsCachedVersion(t *testing.T) {
	var saved models.Note
	local := &mockLocalStore{
		GetNoteFunc: func(_ context.Context, noteID string) (models.Note, error) {
			return models.Note{NoteID: noteID, ProjectID: "p1", Surah: 2, Verse: 255, Text: "old", Version: 4}, nil
		},
		SaveLocalNoteFunc: func(_ context.Context, n models.Note) error {
			saved = n
			return nil
		},
	}

	svc := NewClientNoteService(local, &mockServerAdapter{})
	updated, err := svc.UpdateNote(context.Background(), models.Note{
		NoteID: "n1", ProjectID: "p1", Surah: 2, Verse: 255, Text: "  new text  ",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Version, "the cached version anchors conflict detection")
	assert.Equal(t, "new text", updated.Text)
	assert.Equal(t, updated, saved)
}

func TestClientNotes_Update_NotFound(t *testing.T) {
	svc := NewClientNoteService(&mockLocalStore{}, &mockServerAdapter{})

	_, err := svc.UpdateNote(context.Background(), models.Note{NoteID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

// ── DeleteNote / MoveNote ────────────────────────────────────────────────────

func TestClientNotes_Delete_Tombstones(t *testing.T) {
	var tombstoned string
	local := &mockLocalStore{
		MarkNoteDeletedFunc: func(_ context.Context, noteID string) error {
			tombstoned = noteID
			return nil
		},
	}

	svc := NewClientNoteService(local, &mockServerAdapter{})
	require.NoError(t, svc.DeleteNote(context.Background(), "n1"))
	assert.Equal(t, "n1", tombstoned)
}

func TestClientNotes_Move_Reparents(t *testing.T) {
	var saved models.Note
	local := &mockLocalStore{
		GetNoteFunc: func(_ context.Context, noteID string) (models.Note, error) {
			return models.Note{NoteID: noteID, ProjectID: "p1", Surah: 2, Verse: 255, Text: "text", Version: 1}, nil
		},
		SaveLocalNoteFunc: func(_ context.Context, n models.Note) error {
			saved = n
			return nil
		},
	}

	svc := NewClientNoteService(local, &mockServerAdapter{})
	moved, err := svc.MoveNote(context.Background(), "n1", "p2")

	require.NoError(t, err)
	assert.Equal(t, "p2", moved.ProjectID)
	assert.Equal(t, "p2", saved.ProjectID)
}

// ── LookupVerse / ShareNote ──────────────────────────────────────────────────

func TestClientNotes_LookupVerse_PassesThrough(t *testing.T) {
	remote := &mockServerAdapter{
		GetVerseFunc: func(_ context.Context, surah, verse int) (models.Verse, error) {
			return models.Verse{Surah: surah, Verse: verse, Arabic: "text"}, nil
		},
	}

	svc := NewClientNoteService(&mockLocalStore{}, remote)
	v, err := svc.LookupVerse(context.Background(), 2, 255)

	require.NoError(t, err)
	assert.Equal(t, 2, v.Surah)
	assert.Equal(t, 255, v.Verse)
}

func TestClientNotes_ShareNote_Offline(t *testing.T) {
	svc := NewClientNoteService(&mockLocalStore{}, &mockServerAdapter{})

	_, err := svc.ShareNote(context.Background(), "n1")

	require.Error(t, err)
	assert.ErrorIs(t, err, errTransport)
}
