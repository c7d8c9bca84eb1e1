package http

import (
	"encoding/json"
	"net/http"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/models"
)

// getNoteStates returns the compact descriptors of every note the user
// owns, tombstones included, so the client can compute its sync plan.
func (h *Handler) getNoteStates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getNoteStates").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	noteStates, err := h.services.NoteService.NoteStates(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNoteStates").Msg("error getting note states")
		http.Error(w, "error getting note states", statusFromError(err))
		return
	}

	response := models.SyncResponse{
		NoteStates: noteStates,
		Length:     len(noteStates),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// getNotesForSync returns the full bodies of the requested notes, typically
// the Download bucket of a client-side sync plan.
func (h *Handler) getNotesForSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getNotesForSync").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.getNotesForSync").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	notes, err := h.services.NoteService.GetNotesByIDs(ctx, userID, syncRequest.NoteIDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNotesForSync").Msg("error fetching notes for sync")
		http.Error(w, "error fetching notes for sync", statusFromError(err))
		return
	}

	response := models.NotesResponse{
		Notes:  notes,
		Length: len(notes),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
