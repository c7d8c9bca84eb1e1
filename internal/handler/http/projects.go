package http

import (
	"encoding/json"
	"net/http"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createProject").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	project.UserID = userID

	createdProject, err := h.services.ProjectService.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Msg("error creating project")
		http.Error(w, "error creating project", statusFromError(err))
		return
	}

	utils.WriteJSON(w, createdProject, http.StatusCreated)
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listProjects").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	projects, err := h.services.ProjectService.ListProjects(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProjects").Msg("error listing projects")
		http.Error(w, "error listing projects", statusFromError(err))
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getProject").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.GetProject(ctx, userID, chi.URLParam(r, "projectID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProject").Msg("error getting project")
		http.Error(w, "error getting project", statusFromError(err))
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateProject").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Str("func", "*Handler.updateProject").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	project.ProjectID = chi.URLParam(r, "projectID")
	project.UserID = userID

	updatedProject, err := h.services.ProjectService.UpdateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateProject").Msg("error updating project")
		http.Error(w, "error updating project", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedProject, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteProject").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	notesDeleted, err := h.services.ProjectService.DeleteProject(ctx, userID, chi.URLParam(r, "projectID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteProject").Msg("error deleting project")
		http.Error(w, "error deleting project", statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]int64{"notes_deleted": notesDeleted}, http.StatusOK)
}
