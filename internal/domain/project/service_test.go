package project

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/store"
)

var base = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*store.Store, *Service) {
	t.Helper()
	st := store.New()
	svc := NewService(NewRepository(st))
	svc.now = func() time.Time { return base }
	return st, svc
}

func mustCreate(t *testing.T, svc *Service, owner, name string) *models.Project {
	t.Helper()
	p, err := svc.Create(context.Background(), owner, &CreateRequest{Name: name})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return p
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Wedding Photos - Smith Family": "wedding-photos-smith-family",
		"  Portrait!! ":                 "portrait",
		"Ünïcode Café":                  "ünïcode-café",
		"???":                           "project",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateStartsAsDraftWithToken(t *testing.T) {
	_, svc := newService(t)
	p := mustCreate(t, svc, "user-1", "Wedding Photos")

	if p.Status != models.ProjectStatusDraft || p.OwnerID != "user-1" {
		t.Fatalf("unexpected project %+v", p)
	}
	want := "share-wedding-photos-1705309200000"
	if p.ShareToken != want {
		t.Fatalf("expected token %s, got %s", want, p.ShareToken)
	}
}

func TestCreateRegeneratesCollidingToken(t *testing.T) {
	_, svc := newService(t)
	first := mustCreate(t, svc, "user-1", "Same Name")
	second := mustCreate(t, svc, "user-1", "Same Name")

	if first.ShareToken == second.ShareToken {
		t.Fatalf("tokens collide: %s", first.ShareToken)
	}
	if !strings.HasPrefix(second.ShareToken, first.ShareToken+"-") {
		t.Fatalf("unexpected regenerated token %s", second.ShareToken)
	}
}

func TestListOnlyOwnersProjectsWithCounts(t *testing.T) {
	_, svc := newService(t)
	ctx := context.Background()
	mine := mustCreate(t, svc, "user-1", "Mine")
	mustCreate(t, svc, "user-9", "Theirs")

	folder, err := svc.CreateFolder(ctx, "user-1", mine.ID, &CreateFolderRequest{Name: "Ceremony"})
	if err != nil {
		t.Fatalf("folder: %v", err)
	}
	if _, err := svc.AddPhoto(ctx, "user-1", mine.ID, &AddPhotoRequest{FolderID: folder.ID, Filename: "a.jpg", URL: "https://example.com/a.jpg"}); err != nil {
		t.Fatalf("photo: %v", err)
	}

	list, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != mine.ID || list[0].FolderCount != 1 || list[0].PhotoCount != 1 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestGetReportsStats(t *testing.T) {
	_, svc := newService(t)
	ctx := context.Background()
	p := mustCreate(t, svc, "user-1", "Stats")
	f, _ := svc.CreateFolder(ctx, "user-1", p.ID, &CreateFolderRequest{Name: "All"})
	for _, size := range []int64{100, 250} {
		if _, err := svc.AddPhoto(ctx, "user-1", p.ID, &AddPhotoRequest{FolderID: f.ID, Filename: "x.jpg", URL: "https://example.com/x.jpg", Size: size}); err != nil {
			t.Fatalf("photo: %v", err)
		}
	}

	d, err := svc.Get(ctx, "user-1", p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Stats != (Stats{FolderCount: 1, PhotoCount: 2, TotalSize: 350}) {
		t.Fatalf("unexpected stats %+v", d.Stats)
	}
	if d.Photos[0].OriginalName != "x.jpg" || d.Photos[0].ThumbnailURL != "https://example.com/x.jpg" {
		t.Fatalf("expected defaults for originalName and thumbnail, got %+v", d.Photos[0])
	}
}

func TestOwnershipAndExistence(t *testing.T) {
	_, svc := newService(t)
	ctx := context.Background()
	p := mustCreate(t, svc, "user-1", "Private")

	if _, err := svc.Get(ctx, "user-9", p.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.Get(ctx, "user-1", "missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if _, err := svc.CreateFolder(ctx, "user-9", p.ID, &CreateFolderRequest{Name: "x"}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	name := "renamed"
	if _, err := svc.Update(ctx, "user-9", p.ID, &UpdateRequest{Name: &name}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestAddPhotoRejectsForeignFolder(t *testing.T) {
	_, svc := newService(t)
	ctx := context.Background()
	a := mustCreate(t, svc, "user-1", "A")
	b := mustCreate(t, svc, "user-1", "B")
	foreign, _ := svc.CreateFolder(ctx, "user-1", b.ID, &CreateFolderRequest{Name: "B folder"})

	_, err := svc.AddPhoto(ctx, "user-1", a.ID, &AddPhotoRequest{FolderID: foreign.ID, Filename: "x.jpg", URL: "https://example.com/x.jpg"})
	if !errors.Is(err, ErrFolderMismatch) {
		t.Fatalf("expected ErrFolderMismatch, got %v", err)
	}
	_, err = svc.AddPhoto(ctx, "user-1", a.ID, &AddPhotoRequest{FolderID: "nope", Filename: "x.jpg", URL: "https://example.com/x.jpg"})
	if !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	_, svc := newService(t)
	ctx := context.Background()
	p := mustCreate(t, svc, "user-1", "Flow")

	for _, status := range []string{"shared", "completed", "shared"} {
		status := status
		updated, err := svc.Update(ctx, "user-1", p.ID, &UpdateRequest{Status: &status})
		if err != nil {
			t.Fatalf("update to %s: %v", status, err)
		}
		if string(updated.Status) != status || updated.ShareToken != p.ShareToken {
			t.Fatalf("unexpected project %+v", updated)
		}
		if (updated.CompletedAt != nil) != (status == "completed") {
			t.Fatalf("completedAt mismatch for %s: %v", status, updated.CompletedAt)
		}
	}

	bad := "archived"
	if _, err := svc.Update(ctx, "user-1", p.ID, &UpdateRequest{Status: &bad}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
