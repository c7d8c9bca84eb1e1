package http

import (
	"fmt"
	"net/http"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/go-chi/chi/v5"
)

// exportProject streams the rendered pass document. The format query
// parameter selects json (default), yaml or markdown.
func (h *Handler) exportProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.exportProject").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	format, err := service.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportProject").Msg("unknown export format")
		http.Error(w, "unknown export format", http.StatusBadRequest)
		return
	}

	projectID := chi.URLParam(r, "projectID")
	data, contentType, err := h.services.ExportService.ExportProject(ctx, userID, projectID, format)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportProject").Msg("error exporting project")
		http.Error(w, "error exporting project", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", projectID+exportExtension(format)))
	w.Write(data)
}

func exportExtension(format service.ExportFormat) string {
	switch format {
	case service.ExportYAML:
		return ".yaml"
	case service.ExportMarkdown:
		return ".md"
	default:
		return ".json"
	}
}
