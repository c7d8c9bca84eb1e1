package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anaszait/tadabbur/internal/adapter"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/internal/validators"
	"github.com/anaszait/tadabbur/models"
)

type clientNoteService struct {
	localStore store.LocalStore
	adapter    adapter.ServerAdapter
}

func NewClientNoteService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter) ClientNoteService {
	return &clientNoteService{localStore: localStore, adapter: serverAdapter}
}

// CreateNote implements [ClientNoteService]. The note is written to the
// local cache marked dirty with Version 0; the next sync pushes it to the
// server, which assigns the first real version. A missing surah:verse
// reference is recovered from the note text the same way the server does
// for dictated notes.
func (s *clientNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.Text = strings.TrimSpace(note.Text)
	if note.Surah == 0 && note.Verse == 0 {
		if surah, verse, ok := ExtractReference(note.Text); ok {
			note.Surah = surah
			note.Verse = verse
		}
	}

	if err := validators.ValidateNote(note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if note.NoteID == "" {
		note.NoteID = utils.NewID()
	}
	now := time.Now()
	note.Version = 0
	note.CreatedAt = now
	note.UpdatedAt = now

	if err := s.localStore.SaveLocalNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("save local note: %w", err)
	}
	return note, nil
}

func (s *clientNoteService) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	return s.localStore.GetNote(ctx, noteID)
}

func (s *clientNoteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.localStore.ListNotes(ctx)
}

// UpdateNote implements [ClientNoteService]. The edited note keeps its
// cached version number so the sync planner can tell a local edit (same
// version, diverged hash) from a stale copy.
func (s *clientNoteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	current, err := s.localStore.GetNote(ctx, note.NoteID)
	if err != nil {
		return models.Note{}, err
	}

	current.ProjectID = note.ProjectID
	current.Surah = note.Surah
	current.Verse = note.Verse
	current.Text = strings.TrimSpace(note.Text)
	current.UpdatedAt = time.Now()

	if err = validators.ValidateNote(current); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = s.localStore.SaveLocalNote(ctx, current); err != nil {
		return models.Note{}, fmt.Errorf("save local note: %w", err)
	}
	return current, nil
}

func (s *clientNoteService) DeleteNote(ctx context.Context, noteID string) error {
	return s.localStore.MarkNoteDeleted(ctx, noteID)
}

func (s *clientNoteService) MoveNote(ctx context.Context, noteID, projectID string) (models.Note, error) {
	note, err := s.localStore.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}

	note.ProjectID = projectID
	note.UpdatedAt = time.Now()
	if err = s.localStore.SaveLocalNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("save moved note: %w", err)
	}
	return note, nil
}

func (s *clientNoteService) LookupVerse(ctx context.Context, surah, verse int) (models.Verse, error) {
	v, err := s.adapter.GetVerse(ctx, surah, verse)
	if err != nil {
		return models.Verse{}, mapAdapterError(err)
	}
	return v, nil
}

func (s *clientNoteService) ShareNote(ctx context.Context, noteID string) (models.ShareLinks, error) {
	links, err := s.adapter.GetShareLinks(ctx, noteID)
	if err != nil {
		return models.ShareLinks{}, mapAdapterError(err)
	}
	return links, nil
}
