package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayuu-te/studio-look/internal/config"
	"github.com/ayuu-te/studio-look/internal/domain/auth"
	"github.com/ayuu-te/studio-look/internal/pkg/jwt"
	"github.com/ayuu-te/studio-look/internal/seed"
	"github.com/ayuu-te/studio-look/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := store.New()
	ds, err := seed.Demo()
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if err := seed.Load(context.Background(), st, ds, bcrypt.MinCost); err != nil {
		t.Fatalf("seed: %v", err)
	}

	srv := httptest.NewServer(newRouter(routerDeps{
		cfg:      &config.Config{Env: "test"},
		store:    st,
		jwt:      jwt.NewService("secret", time.Hour),
		denylist: auth.NewMemoryDenylist(),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, method, url, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	code, out := call(t, http.MethodGet, srv.URL+"/health", "", nil)
	if code != http.StatusOK || out["success"] != true {
		t.Fatalf("unexpected health %d %v", code, out)
	}
	data := out["data"].(map[string]interface{})
	if len(data) != 2 || data["status"] != "ok" || data["version"] != version {
		t.Fatalf("unexpected health payload %v", data)
	}
}

func TestGalleryFlow(t *testing.T) {
	srv := newTestServer(t)
	gallery := srv.URL + "/api/gallery/share-wedding-smith-2024"

	code, out := call(t, http.MethodGet, gallery+"?status=selected", "", nil)
	if code != http.StatusOK {
		t.Fatalf("gallery: %d %v", code, out)
	}
	data := out["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	if len(data["photos"].([]interface{})) != 1 || stats["total"].(float64) != 6 || stats["pending"].(float64) != 4 {
		t.Fatalf("unexpected gallery %v", data)
	}

	if code, _ := call(t, http.MethodGet, srv.URL+"/api/gallery/share-portrait-johnson-2024", "", nil); code != http.StatusForbidden {
		t.Fatalf("expected 403 for draft gallery, got %d", code)
	}

	if code, _ := call(t, http.MethodPost, gallery+"/selections/photo-2", "", map[string]string{"status": "selected"}); code != http.StatusOK {
		t.Fatalf("select: %d", code)
	}
	if code, _ := call(t, http.MethodPost, gallery+"/complete", "", nil); code != http.StatusOK {
		t.Fatalf("complete: %d", code)
	}
	if code, _ := call(t, http.MethodGet, gallery, "", nil); code != http.StatusForbidden {
		t.Fatalf("expected 403 after completion, got %d", code)
	}
	if code, _ := call(t, http.MethodGet, gallery+"/ws", "", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404 with live updates disabled, got %d", code)
	}
}

func TestCommentRequiresSession(t *testing.T) {
	srv := newTestServer(t)
	comments := srv.URL + "/api/comments/photo/photo-1"

	if code, _ := call(t, http.MethodPost, comments, "", map[string]string{"content": "hello"}); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}

	code, out := call(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{"email": "client@example.com", "password": "password123"})
	if code != http.StatusOK {
		t.Fatalf("login: %d %v", code, out)
	}
	token := out["data"].(map[string]interface{})["token"].(string)

	if code, _ := call(t, http.MethodPost, comments, token, map[string]string{"content": "hello"}); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	code, out = call(t, http.MethodGet, comments, "", nil)
	if code != http.StatusOK || out["data"].(map[string]interface{})["total"].(float64) != 3 {
		t.Fatalf("unexpected thread %d %v", code, out)
	}

	if code, _ := call(t, http.MethodGet, srv.URL+"/api/projects", token, nil); code != http.StatusForbidden {
		t.Fatalf("expected clients to be kept out of projects, got %d", code)
	}
}
