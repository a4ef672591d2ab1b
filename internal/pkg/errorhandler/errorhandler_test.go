package errorhandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayuu-te/studio-look/internal/pkg/apperror"
	"github.com/ayuu-te/studio-look/internal/pkg/response"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var out response.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestRespondMapsClassifiedError(t *testing.T) {
	rr := httptest.NewRecorder()
	err := fmt.Errorf("lookup: %w", apperror.Forbidden("You can only edit your own comments"))

	Respond(context.Background(), rr, err)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	out := decode(t, rr)
	if out.Success || out.Error != "You can only edit your own comments" || out.Code != "FORBIDDEN" {
		t.Fatalf("unexpected body %+v", out)
	}
}

func TestRespondHidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	Respond(context.Background(), rr, errors.New("map corrupted at 0xdeadbeef"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	out := decode(t, rr)
	if out.Error != "An unexpected error occurred" {
		t.Fatalf("internal message leaked: %q", out.Error)
	}
}

func TestInvalidInputUsesBadRequest(t *testing.T) {
	rr := httptest.NewRecorder()

	InvalidInput(context.Background(), rr, map[string]string{"status": "Invalid value"})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	out := decode(t, rr)
	if out.Code != "VALIDATION_ERROR" || out.Details["status"] == "" {
		t.Fatalf("unexpected body %+v", out)
	}
}
