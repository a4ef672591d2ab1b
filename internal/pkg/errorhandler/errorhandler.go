package errorhandler

import (
	"context"
	"net/http"

	"github.com/ayuu-te/studio-look/internal/pkg/apperror"
	"github.com/ayuu-te/studio-look/internal/pkg/logger"
	"github.com/ayuu-te/studio-look/internal/pkg/response"
)

// Respond translates a service error into the HTTP envelope.
// Unclassified errors are logged and reported as a generic 500.
func Respond(ctx context.Context, w http.ResponseWriter, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		HandleError(ctx, w, http.StatusInternalServerError, kind.Code(), "An unexpected error occurred", err)
		return
	}

	logger.FromContext(ctx).Debug().
		Int("status_code", kind.Status()).
		Str("error_code", kind.Code()).
		Err(err).
		Msg("Request rejected")

	response.Error(w, kind.Status(), kind.Code(), apperror.MessageOf(err))
}

// HandleError logs the error with request context and sends the error response
func HandleError(ctx context.Context, w http.ResponseWriter, status int, code, message string, err error) {
	event := logger.FromContext(ctx).Error().
		Str("request_id", logger.RequestID(ctx)).
		Str("error_code", code).
		Int("status_code", status)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(message)

	response.Error(w, status, code, message)
}

// InvalidInput logs validation failures and sends the field details
func InvalidInput(ctx context.Context, w http.ResponseWriter, fieldErrors map[string]string) {
	logger.FromContext(ctx).Warn().
		Interface("validation_errors", fieldErrors).
		Msg("Validation error")
	response.ValidationError(w, fieldErrors)
}
