package http

import (
	"net/http"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getShareLinks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getShareLinks").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	links, err := h.services.ShareService.ShareLinks(ctx, userID, chi.URLParam(r, "noteID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getShareLinks").Msg("error building share links")
		http.Error(w, "error building share links", statusFromError(err))
		return
	}

	utils.WriteJSON(w, links, http.StatusOK)
}

func (h *Handler) getShareCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getShareCard").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	card, err := h.services.ShareService.RenderCard(ctx, userID, chi.URLParam(r, "noteID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getShareCard").Msg("error rendering share card")
		http.Error(w, "error rendering share card", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(card)
}
