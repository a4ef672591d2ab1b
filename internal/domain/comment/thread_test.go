package comment

import (
	"testing"
	"time"

	"github.com/ayuu-te/studio-look/internal/models"
)

var base = time.Date(2024, 1, 16, 11, 0, 0, 0, time.UTC)

func at(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

func TestBuildThreadsNestsRepliesAscending(t *testing.T) {
	comments := []models.Comment{
		{ID: "r2", ParentID: "a", CreatedAt: at(30)},
		{ID: "b", CreatedAt: at(20)},
		{ID: "a", CreatedAt: at(0)},
		{ID: "r1", ParentID: "a", CreatedAt: at(15)},
		{ID: "orphan", ParentID: "missing", CreatedAt: at(5)},
	}

	threads := BuildThreads(comments)

	if len(threads) != 2 || threads[0].ID != "a" || threads[1].ID != "b" {
		t.Fatalf("unexpected top-level order %+v", threads)
	}
	replies := threads[0].Replies
	if len(replies) != 2 || replies[0].ID != "r1" || replies[1].ID != "r2" {
		t.Fatalf("unexpected replies %+v", replies)
	}
	if threads[1].Replies == nil || len(threads[1].Replies) != 0 {
		t.Fatalf("expected empty non-nil replies, got %#v", threads[1].Replies)
	}
}

func TestBuildThreadsDoesNotMutateInput(t *testing.T) {
	comments := []models.Comment{{ID: "late", CreatedAt: at(10)}, {ID: "early", CreatedAt: at(0)}}
	BuildThreads(comments)
	if comments[0].ID != "late" {
		t.Fatal("input slice was reordered")
	}
}

func TestGroupByPhotoNewestFirst(t *testing.T) {
	comments := []models.Comment{
		{ID: "c1", PhotoID: "photo-1", CreatedAt: at(0)},
		{ID: "c2", PhotoID: "photo-1", CreatedAt: at(15)},
		{ID: "c3", PhotoID: "photo-2", CreatedAt: at(30)},
	}

	grouped := GroupByPhoto(comments)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(grouped))
	}
	if got := grouped["photo-1"]; got[0].ID != "c2" || got[1].ID != "c1" {
		t.Fatalf("expected descending order, got %+v", got)
	}
}
