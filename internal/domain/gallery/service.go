package gallery

import (
	"context"
	"fmt"
	"time"

	"github.com/ayuu-te/studio-look/internal/domain/selection"
	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/realtime"
)

// Service assembles client gallery views
type Service struct {
	repo      Repository
	publisher realtime.Publisher
	now       func() time.Time
}

// NewService creates gallery service. publisher may be nil.
func NewService(repo Repository, publisher realtime.Publisher) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ProjectID resolves a share token regardless of project status
func (s *Service) ProjectID(ctx context.Context, shareToken string) (string, error) {
	p, err := s.repo.ProjectByToken(ctx, shareToken)
	if err != nil {
		return "", fmt.Errorf("resolve gallery: %w", err)
	}
	return p.ID, nil
}

// Assemble builds the gallery for a shared project. Filters only narrow the
// photo list, so an unknown status matches nothing. Stats always cover every
// photo of the project.
func (s *Service) Assemble(ctx context.Context, shareToken string, filters Filters) (*View, error) {
	snap, err := s.repo.Snapshot(ctx, shareToken)
	if err != nil {
		return nil, fmt.Errorf("load gallery: %w", err)
	}
	if snap.Project.Status != models.ProjectStatusShared {
		return nil, ErrGalleryNotShared
	}

	byPhoto := make(map[string]models.Selection, len(snap.Selections))
	for _, sel := range snap.Selections {
		byPhoto[sel.PhotoID] = sel
	}

	photos := make([]PhotoView, 0, len(snap.Photos))
	for _, p := range snap.Photos {
		if filters.FolderID != "" && p.FolderID != filters.FolderID {
			continue
		}
		view := PhotoView{Photo: p, Selection: selectionView(byPhoto, p.ID)}
		if filters.Status != "" && filters.Status != StatusAll && string(view.Selection.Status) != filters.Status {
			continue
		}
		photos = append(photos, view)
	}

	return &View{
		Project: ProjectSummary{
			ID:          snap.Project.ID,
			Name:        snap.Project.Name,
			Description: snap.Project.Description,
			Status:      snap.Project.Status,
		},
		Folders: snap.Folders,
		Photos:  photos,
		Stats:   selection.ComputeStats(snap.Photos, snap.Selections),
	}, nil
}

func selectionView(byPhoto map[string]models.Selection, photoID string) SelectionView {
	sel, ok := byPhoto[photoID]
	if !ok {
		return SelectionView{Status: models.SelectionPending}
	}
	id, updatedAt := sel.ID, sel.UpdatedAt
	return SelectionView{ID: &id, Status: sel.Status, UpdatedAt: &updatedAt}
}

// Complete marks the client's review as finished and notifies watchers
func (s *Service) Complete(ctx context.Context, shareToken string) (*Completion, error) {
	project, changed, err := s.repo.MarkCompleted(ctx, shareToken, s.now())
	if err != nil {
		return nil, fmt.Errorf("complete gallery: %w", err)
	}

	completion := &Completion{ProjectID: project.ID, CompletedAt: *project.CompletedAt}
	if changed {
		realtime.Publish(ctx, s.publisher, realtime.Event{
			Type:      realtime.EventGalleryCompleted,
			ProjectID: project.ID,
			Data:      completion,
			At:        completion.CompletedAt,
		})
	}
	return completion, nil
}
