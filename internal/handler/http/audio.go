package http

import (
	"io"
	"net/http"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/go-chi/chi/v5"
)

// maxRecordingSize bounds an uploaded voice recording to 10 MiB.
const maxRecordingSize = 10 << 20

func (h *Handler) uploadAudio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.uploadAudio").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRecordingSize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadAudio").Msg("error reading recording body")
		http.Error(w, "error reading recording body", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.AttachAudio(ctx, userID, chi.URLParam(r, "noteID"), data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadAudio").Msg("error attaching recording")
		http.Error(w, "error attaching recording", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) downloadAudio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.downloadAudio").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	data, err := h.services.NoteService.LoadAudio(ctx, userID, chi.URLParam(r, "noteID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadAudio").Msg("error loading recording")
		http.Error(w, "error loading recording", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "audio/webm")
	w.Write(data)
}
