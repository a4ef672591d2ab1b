package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns gallery router. The share token is the credential; a session
// only attributes selections to a known client.
func (h *Handler) Routes(optionalAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(optionalAuth)

	r.Route("/{shareToken}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/selections/{photoId}", h.SetSelection)
		r.Post("/bulk-selection", h.BulkSelection)
		r.Post("/complete", h.Complete)
		r.Get("/ws", h.Stream)
	})

	return r
}
