package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/projects", h.createProject)
		r.Get("/api/projects", h.listProjects)
		r.Get("/api/projects/{projectID}", h.getProject)
		r.Put("/api/projects/{projectID}", h.updateProject)
		r.Delete("/api/projects/{projectID}", h.deleteProject)
		r.Get("/api/projects/{projectID}/export", h.exportProject)

		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/{noteID}", h.getNote)
		r.Put("/api/notes/{noteID}", h.updateNote)
		r.Delete("/api/notes/{noteID}", h.deleteNote)
		r.Post("/api/notes/{noteID}/move", h.moveNote)
		r.Post("/api/notes/{noteID}/audio", h.uploadAudio)
		r.Get("/api/notes/{noteID}/audio", h.downloadAudio)
		r.Get("/api/notes/{noteID}/card.png", h.getShareCard)
		r.Get("/api/notes/{noteID}/share", h.getShareLinks)

		r.Get("/api/verses/{surah}/{verse}", h.getVerse)

		r.Get("/api/sync", h.getNoteStates)
		r.Post("/api/sync/notes", h.getNotesForSync)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
