package service

import (
	"context"
	"fmt"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/internal/validators"
	"github.com/anaszait/tadabbur/models"
)

// noteService is the concrete implementation of NoteService.
type noteService struct {
	noteRepository    store.NoteRepository
	projectRepository store.ProjectRepository
	audioStore        store.AudioStore

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, projectRepository store.ProjectRepository,
	audioStore store.AudioStore, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:    noteRepository,
		projectRepository: projectRepository,
		audioStore:        audioStore,
		logger:            logger,
	}
}

// CreateNote validates and persists a new note.
//
// A note dictated without an explicit anchor gets one recovered from its
// text: when both Surah and Verse are zero, the first recognisable
// reference inside Text is used. A missing NoteID is assigned server-side.
//
// Returns the persisted note or:
//   - a validators sentinel wrapped in ErrInvalidDataProvided;
//   - store.ErrForeignProject (wrapped) when the target pass does not
//     belong to the user.
func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.Surah == 0 && note.Verse == 0 {
		if surah, verse, ok := ExtractReference(note.Text); ok {
			note.Surah, note.Verse = surah, verse
		}
	}

	if err := validators.ValidateNote(note); err != nil {
		log.Err(err).Int64("userID", note.UserID).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if note.NoteID == "" {
		note.NoteID = utils.NewID()
	}

	createdNote, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("noteID", note.NoteID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

func (s *noteService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("note lookup failed")
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, userID int64, query models.NoteListQuery) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateNoteListQuery(query); err != nil {
		log.Err(err).Int64("userID", userID).Msg("invalid note listing query")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	notes, err := s.noteRepository.ListNotes(ctx, userID, query)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("note listing failed")
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

func (s *noteService) GetNotesByIDs(ctx context.Context, userID int64, noteIDs []string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if len(noteIDs) == 0 {
		return nil, nil
	}

	notes, err := s.noteRepository.GetNotesByIDs(ctx, userID, noteIDs)
	if err != nil {
		log.Err(err).Int("requested", len(noteIDs)).Msg("bulk note fetch failed")
		return nil, fmt.Errorf("bulk note fetch failed: %w", err)
	}

	return notes, nil
}

func (s *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateNote(note); err != nil {
		log.Err(err).Str("noteID", note.NoteID).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedNote, err := s.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("noteID", note.NoteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// DeleteNote soft-deletes the note and removes its recording. The
// tombstone stays behind so offline clients pick the deletion up during
// their next sync.
func (s *noteService) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).Str("noteID", noteID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	if err := s.audioStore.Remove(ctx, userID, noteID); err != nil {
		// the note itself is gone; a leaked recording is worth a warning, not a failure
		log.Warn().Err(err).Str("noteID", noteID).Msg("could not remove note recording")
	}

	return nil
}

// MoveNote re-parents the note into another pass. The target pass is
// checked against the same user before the write; the composite foreign
// key in storage backs the same rule up.
func (s *noteService) MoveNote(ctx context.Context, userID int64, noteID, projectID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if _, err := s.projectRepository.GetProject(ctx, userID, projectID); err != nil {
		log.Err(err).Str("projectID", projectID).Msg("move target lookup failed")
		return models.Note{}, fmt.Errorf("move target lookup failed: %w", err)
	}

	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("note lookup failed")
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	note.ProjectID = projectID
	movedNote, err := s.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Str("projectID", projectID).Msg("note move ended with error")
		return models.Note{}, fmt.Errorf("note move ended with error: %w", err)
	}

	return movedNote, nil
}

// AttachAudio stores the recording bytes and saves the resulting URL on
// the note, bumping its version so the change propagates through sync.
func (s *noteService) AttachAudio(ctx context.Context, userID int64, noteID string, data []byte) (models.Note, error) {
	log := logger.FromContext(ctx)

	if len(data) == 0 {
		log.Error().Str("noteID", noteID).Msg("empty recording provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("note lookup failed")
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	audioURL, err := s.audioStore.Save(ctx, userID, noteID, data)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("recording save failed")
		return models.Note{}, fmt.Errorf("recording save failed: %w", err)
	}

	note.AudioURL = audioURL
	updatedNote, err := s.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("note update after recording save failed")
		return models.Note{}, fmt.Errorf("note update after recording save failed: %w", err)
	}

	return updatedNote, nil
}

// LoadAudio returns the stored recording of one of the user's notes. The
// note is looked up first so a caller can never reach another user's files
// through a crafted noteID.
func (s *noteService) LoadAudio(ctx context.Context, userID int64, noteID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("note lookup failed")
		return nil, fmt.Errorf("note lookup failed: %w", err)
	}
	if note.AudioURL == "" {
		return nil, fmt.Errorf("%w: note %s", store.ErrAudioNotFound, noteID)
	}

	data, err := s.audioStore.Load(ctx, userID, note.NoteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("recording load failed")
		return nil, fmt.Errorf("recording load failed: %w", err)
	}

	return data, nil
}

func (s *noteService) NoteStates(ctx context.Context, userID int64) ([]models.NoteState, error) {
	log := logger.FromContext(ctx)

	states, err := s.noteRepository.ListNoteStates(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("note state listing failed")
		return nil, fmt.Errorf("note state listing failed: %w", err)
	}

	return states, nil
}
