package comment

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayuu-te/studio-look/internal/middleware"
	"github.com/ayuu-te/studio-look/internal/pkg/errorhandler"
	"github.com/ayuu-te/studio-look/internal/pkg/response"
)

// Handler handles comment HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates comment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListForPhoto handles GET /comments/photo/{photoId}
// @Summary Threaded comments of a photo
// @Tags Comments
// @Produce json
// @Param photoId path string true "Photo ID"
// @Success 200 {object} response.Response{data=PhotoThread}
// @Router /comments/photo/{photoId} [get]
func (h *Handler) ListForPhoto(w http.ResponseWriter, r *http.Request) {
	thread, err := h.service.ListForPhoto(r.Context(), chi.URLParam(r, "photoId"))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, thread)
}

// Create handles POST /comments/photo/{photoId}
// @Summary Comment on a photo or reply to a comment
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Comment"
// @Success 201 {object} response.Response{data=models.Comment}
// @Failure 400,401,404 {object} response.Response
// @Router /comments/photo/{photoId} [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	c, err := h.service.Add(r.Context(), AddInput{
		PhotoID:  chi.URLParam(r, "photoId"),
		Author:   identity,
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, c)
}

// Update handles PUT /comments/{commentId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	c, err := h.service.Update(r.Context(), chi.URLParam(r, "commentId"), identity, req.Content)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, c)
}

// Delete handles DELETE /comments/{commentId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())
	result, err := h.service.Delete(r.Context(), chi.URLParam(r, "commentId"), identity)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}

	message := "Comment deleted"
	if replies := result.DeletedCount - 1; replies > 0 {
		message = fmt.Sprintf("Comment deleted (and %d replies)", replies)
	}
	response.OKWithMessage(w, result, message)
}

// ListForProject handles GET /comments/project/{projectId}
func (h *Handler) ListForProject(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.ListForProject(r.Context(), chi.URLParam(r, "projectId"))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, grouped)
}
