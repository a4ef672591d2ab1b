package comment

import (
	"sort"

	"github.com/ayuu-te/studio-look/internal/models"
)

// Thread is a top-level comment with its direct replies
type Thread struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

// BuildThreads projects a flat comment list into top-level threads.
// Threads and replies are ordered oldest first; replies whose parent is not
// in the list are dropped.
func BuildThreads(comments []models.Comment) []Thread {
	sorted := make([]models.Comment, len(comments))
	copy(sorted, comments)
	sortAscending(sorted)

	threads := []Thread{}
	index := make(map[string]int)
	for _, c := range sorted {
		if c.IsReply() {
			continue
		}
		index[c.ID] = len(threads)
		threads = append(threads, Thread{Comment: c, Replies: []models.Comment{}})
	}
	for _, c := range sorted {
		if !c.IsReply() {
			continue
		}
		if i, ok := index[c.ParentID]; ok {
			threads[i].Replies = append(threads[i].Replies, c)
		}
	}
	return threads
}

// GroupByPhoto groups comments per photo, newest first within each photo
func GroupByPhoto(comments []models.Comment) map[string][]models.Comment {
	grouped := make(map[string][]models.Comment)
	for _, c := range comments {
		grouped[c.PhotoID] = append(grouped[c.PhotoID], c)
	}
	for _, list := range grouped {
		sortDescending(list)
	}
	return grouped
}

func sortAscending(comments []models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}

func sortDescending(comments []models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}
