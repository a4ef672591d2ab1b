package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/realtime"
)

// Service handles comment business logic
type Service struct {
	repo      Repository
	publisher realtime.Publisher
	now       func() time.Time
}

// NewService creates comment service. publisher may be nil.
func NewService(repo Repository, publisher realtime.Publisher) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Add creates a top-level comment or a reply to a top-level comment
func (s *Service) Add(ctx context.Context, in AddInput) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if in.Author.ID == "" {
		return nil, ErrAuthRequired
	}

	projectID := in.ProjectID
	if projectID == "" {
		var err error
		if projectID, err = s.repo.PhotoProjectID(ctx, in.PhotoID); err != nil {
			return nil, fmt.Errorf("resolve photo %s: %w", in.PhotoID, err)
		}
	}

	c := models.Comment{
		ID:         uuid.NewString(),
		PhotoID:    in.PhotoID,
		ProjectID:  projectID,
		AuthorID:   in.Author.ID,
		AuthorName: in.Author.Name,
		Content:    content,
		ParentID:   in.ParentID,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.publish(ctx, realtime.EventCommentCreated, c.ProjectID, c)
	return &c, nil
}

// Update replaces the content of the author's own comment
func (s *Service) Update(ctx context.Context, commentID string, author models.Identity, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if author.ID == "" {
		return nil, ErrAuthRequired
	}

	c, err := s.repo.UpdateContent(ctx, commentID, author.ID, content)
	if err != nil {
		return nil, fmt.Errorf("update comment %s: %w", commentID, err)
	}

	s.publish(ctx, realtime.EventCommentUpdated, c.ProjectID, c)
	return &c, nil
}

// Delete removes the author's own comment together with its replies
func (s *Service) Delete(ctx context.Context, commentID string, author models.Identity) (*DeleteResult, error) {
	if author.ID == "" {
		return nil, ErrAuthRequired
	}

	root, n, err := s.repo.DeleteWithReplies(ctx, commentID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("delete comment %s: %w", commentID, err)
	}

	result := &DeleteResult{DeletedCount: n}
	s.publish(ctx, realtime.EventCommentDeleted, root.ProjectID, map[string]interface{}{
		"commentId":    root.ID,
		"photoId":      root.PhotoID,
		"deletedCount": n,
	})
	return result, nil
}

// ListForPhoto returns the photo's comments as threads, oldest first
func (s *Service) ListForPhoto(ctx context.Context, photoID string) (*PhotoThread, error) {
	comments, err := s.repo.ListByPhoto(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("list comments for photo %s: %w", photoID, err)
	}
	return &PhotoThread{Comments: BuildThreads(comments), Total: len(comments)}, nil
}

// ListForProject returns every comment of the project grouped by photo, newest first
func (s *Service) ListForProject(ctx context.Context, projectID string) (*ProjectComments, error) {
	comments, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list comments for project %s: %w", projectID, err)
	}
	grouped := GroupByPhoto(comments)
	return &ProjectComments{
		CommentsByPhoto:    grouped,
		Total:              len(comments),
		PhotosWithComments: len(grouped),
	}, nil
}

func (s *Service) publish(ctx context.Context, eventType realtime.EventType, projectID string, data interface{}) {
	if projectID == "" {
		return
	}
	realtime.Publish(ctx, s.publisher, realtime.Event{
		Type:      eventType,
		ProjectID: projectID,
		Data:      data,
		At:        s.now(),
	})
}
