package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayuu-te/studio-look/internal/domain/selection"
	"github.com/ayuu-te/studio-look/internal/middleware"
	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/pkg/errorhandler"
	"github.com/ayuu-te/studio-look/internal/pkg/response"
	"github.com/ayuu-te/studio-look/internal/pkg/validator"
)

// guestClientID is recorded on selections made without a session
const guestClientID = "guest"

// Streamer upgrades a request into a live event stream for one project
type Streamer interface {
	Serve(w http.ResponseWriter, r *http.Request, projectID string)
}

// Handler handles client gallery HTTP requests
type Handler struct {
	service    *Service
	selections *selection.Service
	stream     Streamer
}

// NewHandler creates gallery handler. stream may be nil to disable live updates.
func NewHandler(service *Service, selections *selection.Service, stream Streamer) *Handler {
	return &Handler{service: service, selections: selections, stream: stream}
}

// Get handles GET /gallery/{shareToken}
// @Summary Client gallery view
// @Tags Gallery
// @Produce json
// @Param shareToken path string true "Share token"
// @Param folder query string false "Folder ID"
// @Param status query string false "all, selected, rejected or pending"
// @Success 200 {object} response.Response{data=View}
// @Failure 403,404 {object} response.Response
// @Router /gallery/{shareToken} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view, err := h.service.Assemble(r.Context(), chi.URLParam(r, "shareToken"), Filters{
		FolderID: q.Get("folder"),
		Status:   q.Get("status"),
	})
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, view)
}

// SetSelection handles POST /gallery/{shareToken}/selections/{photoId}
// @Summary Select, reject or reset a photo
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body selection.SetRequest true "Decision"
// @Success 200 {object} response.Response{data=selection.View}
// @Failure 400,404 {object} response.Response
// @Router /gallery/{shareToken}/selections/{photoId} [post]
func (h *Handler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req selection.SetRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.InvalidInput(r.Context(), w, errs)
		return
	}

	projectID, err := h.service.ProjectID(r.Context(), chi.URLParam(r, "shareToken"))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}

	view, err := h.selections.Set(r.Context(), projectID, chi.URLParam(r, "photoId"), models.SelectionStatus(req.Status), clientID(r))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, view)
}

// BulkSelection handles POST /gallery/{shareToken}/bulk-selection
func (h *Handler) BulkSelection(w http.ResponseWriter, r *http.Request) {
	var req selection.BulkRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.InvalidInput(r.Context(), w, errs)
		return
	}

	projectID, err := h.service.ProjectID(r.Context(), chi.URLParam(r, "shareToken"))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}

	result, err := h.selections.BulkSet(r.Context(), projectID, req.PhotoIDs, models.SelectionStatus(req.Status), clientID(r))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OK(w, result)
}

// Complete handles POST /gallery/{shareToken}/complete
// @Summary Mark the client's review as finished
// @Tags Gallery
// @Produce json
// @Success 200 {object} response.Response{data=Completion}
// @Failure 404 {object} response.Response
// @Router /gallery/{shareToken}/complete [post]
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	completion, err := h.service.Complete(r.Context(), chi.URLParam(r, "shareToken"))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	response.OKWithMessage(w, completion, "Project marked as complete. The photographer has been notified.")
}

// Stream handles GET /gallery/{shareToken}/ws
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	if h.stream == nil {
		response.NotFound(w, "Live updates are disabled")
		return
	}
	projectID, err := h.service.ProjectID(r.Context(), chi.URLParam(r, "shareToken"))
	if err != nil {
		errorhandler.Respond(r.Context(), w, err)
		return
	}
	h.stream.Serve(w, r, projectID)
}

func clientID(r *http.Request) string {
	if identity, ok := middleware.GetIdentity(r.Context()); ok && identity.ID != "" {
		return identity.ID
	}
	return guestClientID
}
