package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns project router. Every route requires a photographer session.
func (h *Handler) Routes(authMiddleware, photographerOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware, photographerOnly)

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Get("/{id}/folders", h.ListFolders)
	r.Post("/{id}/folders", h.CreateFolder)
	r.Post("/{id}/photos", h.AddPhoto)

	return r
}
