package comment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ayuu-te/studio-look/internal/middleware"
	"github.com/ayuu-te/studio-look/internal/models"
)

func newRequest(method, path string, body interface{}, params map[string]string, identity *models.Identity) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if identity != nil {
		ctx = middleware.WithIdentity(ctx, *identity)
	}
	return req.WithContext(ctx)
}

func TestCreateHandlerStatusCodes(t *testing.T) {
	svc, _ := newService(t)
	h := NewHandler(svc)

	cases := []struct {
		name     string
		photoID  string
		body     CreateRequest
		identity *models.Identity
		want     int
	}{
		{"empty content", "photo-1", CreateRequest{Content: " "}, nil, http.StatusBadRequest},
		{"anonymous", "photo-1", CreateRequest{Content: "hi"}, nil, http.StatusUnauthorized},
		{"unknown photo", "photo-404", CreateRequest{Content: "hi"}, &client, http.StatusNotFound},
		{"missing parent", "photo-1", CreateRequest{Content: "hi", ParentID: "nope"}, &client, http.StatusNotFound},
		{"created", "photo-1", CreateRequest{Content: "hi"}, &client, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := newRequest(http.MethodPost, "/photo/"+tc.photoID, tc.body, map[string]string{"photoId": tc.photoID}, tc.identity)
			rr := httptest.NewRecorder()
			h.Create(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestCreateHandlerRejectsReplyToReply(t *testing.T) {
	svc, _ := newService(t)
	h := NewHandler(svc)
	top := mustAdd(t, svc, AddInput{PhotoID: "photo-1", Author: client, Content: "top"})
	reply := mustAdd(t, svc, AddInput{PhotoID: "photo-1", Author: photographer, Content: "reply", ParentID: top.ID})

	req := newRequest(http.MethodPost, "/photo/photo-1", CreateRequest{Content: "deep", ParentID: reply.ID}, map[string]string{"photoId": "photo-1"}, &client)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Success || out.Error != "Cannot reply to a reply. Please reply to the original comment." {
		t.Fatalf("unexpected body %+v", out)
	}
}

func TestDeleteHandlerReportsReplies(t *testing.T) {
	svc, _ := newService(t)
	h := NewHandler(svc)
	top := mustAdd(t, svc, AddInput{PhotoID: "photo-1", Author: client, Content: "top"})
	mustAdd(t, svc, AddInput{PhotoID: "photo-1", Author: photographer, Content: "reply", ParentID: top.ID})

	req := newRequest(http.MethodDelete, "/"+top.ID, nil, map[string]string{"commentId": top.ID}, &client)
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var out struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Data    DeleteResult `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Message != "Comment deleted (and 1 replies)" || out.Data.DeletedCount != 2 {
		t.Fatalf("unexpected body %+v", out)
	}
}

func TestUpdateHandlerForbiddenForOtherAuthor(t *testing.T) {
	svc, _ := newService(t)
	h := NewHandler(svc)
	c := mustAdd(t, svc, AddInput{PhotoID: "photo-1", Author: client, Content: "mine"})

	req := newRequest(http.MethodPut, "/"+c.ID, UpdateRequest{Content: "theirs"}, map[string]string{"commentId": c.ID}, &photographer)
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestRoutesListForPhoto(t *testing.T) {
	svc, _ := newService(t)
	h := NewHandler(svc)
	top := mustAdd(t, svc, AddInput{PhotoID: "photo-1", Author: client, Content: "top"})
	mustAdd(t, svc, AddInput{PhotoID: "photo-1", Author: photographer, Content: "reply", ParentID: top.ID})

	passthrough := func(next http.Handler) http.Handler { return next }
	router := h.Routes(passthrough)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/photo/photo-1", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var out struct {
		Success bool        `json:"success"`
		Data    PhotoThread `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Data.Total != 2 || len(out.Data.Comments) != 1 || len(out.Data.Comments[0].Replies) != 1 {
		t.Fatalf("unexpected thread %+v", out.Data)
	}
}
