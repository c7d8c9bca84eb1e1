package http

import (
	"net/http"
	"strconv"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getVerse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	surah, err := strconv.Atoi(chi.URLParam(r, "surah"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVerse").Msg("invalid surah number")
		http.Error(w, "invalid surah number", http.StatusBadRequest)
		return
	}

	verse, err := strconv.Atoi(chi.URLParam(r, "verse"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVerse").Msg("invalid verse number")
		http.Error(w, "invalid verse number", http.StatusBadRequest)
		return
	}

	result, err := h.services.QuranService.GetVerse(ctx, surah, verse)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVerse").Msg("error looking up verse")
		http.Error(w, "error looking up verse", statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
