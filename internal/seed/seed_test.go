package seed

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayuu-te/studio-look/internal/domain/selection"
	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/pkg/password"
	"github.com/ayuu-te/studio-look/internal/store"
)

func loadDemo(t *testing.T) *store.Store {
	t.Helper()
	ds, err := Demo()
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	st := store.New()
	if err := Load(context.Background(), st, ds, bcrypt.MinCost); err != nil {
		t.Fatalf("load: %v", err)
	}
	return st
}

func TestDemoDataset(t *testing.T) {
	st := loadDemo(t)

	_ = st.Read(context.Background(), func(tx *store.Tx) error {
		p, ok := tx.ProjectByToken("share-wedding-smith-2024")
		if !ok || p.ID != "proj-1" || p.Status != models.ProjectStatusShared {
			t.Fatalf("unexpected wedding project %+v", p)
		}
		photos := tx.PhotosByProject("proj-1")
		if len(photos) != 6 {
			t.Fatalf("expected 6 photos, got %d", len(photos))
		}
		if photos[0].Metadata == nil || photos[0].Metadata.ISO != 400 || photos[0].Metadata.TakenAt == nil {
			t.Fatalf("unexpected photo-1 metadata %+v", photos[0].Metadata)
		}

		stats := selection.ComputeStats(photos, tx.SelectionsByProject("proj-1"))
		if stats != (selection.Stats{Total: 6, Selected: 1, Rejected: 1, Pending: 4}) {
			t.Fatalf("unexpected stats %+v", stats)
		}

		if got := len(tx.FoldersByProject("proj-2")); got != 1 {
			t.Fatalf("expected 1 folder for proj-2, got %d", got)
		}
		reply, ok := tx.Comment("comment-2")
		if !ok || !reply.IsReply() || reply.ParentID != "comment-1" {
			t.Fatalf("unexpected reply %+v", reply)
		}
		return nil
	})
}

func TestLoadRejectsBrokenReferences(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		inner error
	}{
		{"selection on foreign photo", `
projects:
  - {id: p1, shareToken: t1, status: shared}
  - {id: p2, shareToken: t2, status: shared}
folders:
  - {id: f1, projectId: p1}
photos:
  - {id: ph1, projectId: p1, folderId: f1}
selections:
  - {id: s1, projectId: p2, photoId: ph1, status: selected}
`, store.ErrPhotoMismatch},
		{"reply to a reply", `
comments:
  - {id: c1, photoId: ph1, projectId: p1, authorId: u1, content: a}
  - {id: c2, photoId: ph1, projectId: p1, authorId: u1, content: b, parentId: c1}
  - {id: c3, photoId: ph1, projectId: p1, authorId: u1, content: c, parentId: c2}
`, store.ErrInvalidParent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			err = Load(context.Background(), store.New(), ds, bcrypt.MinCost)
			if !errors.Is(err, tc.inner) {
				t.Fatalf("expected %v, got %v", tc.inner, err)
			}
		})
	}
}

func TestDemoPasswordsAreHashed(t *testing.T) {
	st := loadDemo(t)

	_ = st.Read(context.Background(), func(tx *store.Tx) error {
		for _, email := range []string{"photographer@example.com", "client@example.com"} {
			u, ok := tx.UserByEmail(email)
			if !ok {
				t.Fatalf("missing user %s", email)
			}
			if u.PasswordHash == "password123" || !password.Verify("password123", u.PasswordHash) {
				t.Fatalf("password of %s not hashed correctly", email)
			}
		}
		return nil
	})
}

func TestLoadRejectsInvalidRole(t *testing.T) {
	ds, err := Parse([]byte("users:\n  - id: u\n    email: u@example.com\n    password: x\n    role: admin\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Load(context.Background(), store.New(), ds, bcrypt.MinCost); err == nil {
		t.Fatal("expected invalid role error")
	}
}

func TestLoadTwiceFails(t *testing.T) {
	st := loadDemo(t)
	ds, _ := Demo()
	if err := Load(context.Background(), st, ds, bcrypt.MinCost); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
