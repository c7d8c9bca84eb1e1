package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createNote").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.UserID = userID

	createdNote, err := h.services.NoteService.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		http.Error(w, "error creating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, createdNote, http.StatusCreated)
}

// listNotes serves the filtered, ordered note listing. Filters arrive as
// query parameters: project, surah, search, sort.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listNotes").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	query := models.NoteListQuery{
		ProjectID: r.URL.Query().Get("project"),
		Search:    r.URL.Query().Get("search"),
		Sort:      models.NoteSortOrder(r.URL.Query().Get("sort")),
	}
	if rawSurah := r.URL.Query().Get("surah"); rawSurah != "" {
		surah, err := strconv.Atoi(rawSurah)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listNotes").Msg("invalid surah filter")
			http.Error(w, "invalid surah filter", http.StatusBadRequest)
			return
		}
		query.Surah = surah
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NotesResponse{Notes: notes, Length: len(notes)}, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getNote").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, chi.URLParam(r, "noteID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Msg("error getting note")
		http.Error(w, "error getting note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateNote").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.NoteID = chi.URLParam(r, "noteID")
	note.UserID = userID

	updatedNote, err := h.services.NoteService.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("error updating note")
		http.Error(w, "error updating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedNote, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteNote").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, chi.URLParam(r, "noteID")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("error deleting note")
		http.Error(w, "error deleting note", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) moveNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.moveNote").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var moveRequest models.MoveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&moveRequest); err != nil {
		log.Err(err).Str("func", "*Handler.moveNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	movedNote, err := h.services.NoteService.MoveNote(ctx, userID, chi.URLParam(r, "noteID"), moveRequest.ProjectID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.moveNote").Msg("error moving note")
		http.Error(w, "error moving note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, movedNote, http.StatusOK)
}
