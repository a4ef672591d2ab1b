package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayuu-te/studio-look/internal/middleware"
	"github.com/ayuu-te/studio-look/internal/pkg/errorhandler"
	"github.com/ayuu-te/studio-look/internal/pkg/response"
	"github.com/ayuu-te/studio-look/internal/pkg/validator"
)

// Handler handles project HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates project handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /projects
// @Summary Photographer's projects
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]Summary}
// @Router /projects [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())
	projects, err := h.service.List(r.Context(), identity.ID)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, projects)
}

// Create handles POST /projects
// @Summary Create a draft project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Project"
// @Success 201 {object} response.Response{data=models.Project}
// @Failure 400,401,403 {object} response.Response
// @Router /projects [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.InvalidInput(r.Context(), w, errs)
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	p, err := h.service.Create(r.Context(), identity.ID, &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, p)
}

// Get handles GET /projects/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())
	d, err := h.service.Get(r.Context(), identity.ID, chi.URLParam(r, "id"))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, d)
}

// Update handles PUT /projects/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.InvalidInput(r.Context(), w, errs)
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	p, err := h.service.Update(r.Context(), identity.ID, chi.URLParam(r, "id"), &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, p)
}

// CreateFolder handles POST /projects/{id}/folders
func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req CreateFolderRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.InvalidInput(r.Context(), w, errs)
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	f, err := h.service.CreateFolder(r.Context(), identity.ID, chi.URLParam(r, "id"), &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, f)
}

// ListFolders handles GET /projects/{id}/folders
func (h *Handler) ListFolders(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())
	folders, err := h.service.ListFolders(r.Context(), identity.ID, chi.URLParam(r, "id"))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, folders)
}

// AddPhoto handles POST /projects/{id}/photos
// @Summary Register a hosted photo
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddPhotoRequest true "Photo"
// @Success 201 {object} response.Response{data=models.Photo}
// @Failure 400,403,404 {object} response.Response
// @Router /projects/{id}/photos [post]
func (h *Handler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	var req AddPhotoRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.InvalidInput(r.Context(), w, errs)
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	p, err := h.service.AddPhoto(r.Context(), identity.ID, chi.URLParam(r, "id"), &req)
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.Created(w, p)
}
