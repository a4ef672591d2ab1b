package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns comment router. Writes check the caller identity inside the
// service so that content validation is reported before authentication.
func (h *Handler) Routes(optionalAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(optionalAuth)

	r.Get("/photo/{photoId}", h.ListForPhoto)
	r.Post("/photo/{photoId}", h.Create)
	r.Get("/project/{projectId}", h.ListForProject)
	r.Put("/{commentId}", h.Update)
	r.Delete("/{commentId}", h.Delete)

	return r
}
