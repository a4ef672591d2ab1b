package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/realtime"
)

// Service handles selection business logic
type Service struct {
	repo      Repository
	publisher realtime.Publisher
	now       func() time.Time
}

// NewService creates selection service. publisher may be nil.
func NewService(repo Repository, publisher realtime.Publisher) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Set records the client's decision for one photo of a project
func (s *Service) Set(ctx context.Context, projectID, photoID string, status models.SelectionStatus, clientID string) (*View, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	now := s.now()
	if err := s.repo.Apply(ctx, Change{ProjectID: projectID, PhotoID: photoID, ClientID: clientID, Status: status, At: now}); err != nil {
		return nil, fmt.Errorf("set selection for %s: %w", photoID, err)
	}

	view := &View{PhotoID: photoID, Status: status, UpdatedAt: now}
	realtime.Publish(ctx, s.publisher, realtime.Event{
		Type:      realtime.EventSelectionUpdated,
		ProjectID: projectID,
		Data:      view,
		At:        now,
	})
	return view, nil
}

// BulkSet applies status to each photo independently. Unknown photos are
// reported per item and never abort the batch.
func (s *Service) BulkSet(ctx context.Context, projectID string, photoIDs []string, status models.SelectionStatus, clientID string) (*BulkResult, error) {
	if len(photoIDs) == 0 {
		return nil, ErrEmptyPhotoList
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	now := s.now()
	result := &BulkResult{Results: make([]ItemResult, 0, len(photoIDs))}
	for _, photoID := range photoIDs {
		err := s.repo.Apply(ctx, Change{ProjectID: projectID, PhotoID: photoID, ClientID: clientID, Status: status, At: now})
		switch {
		case err == nil:
			result.Results = append(result.Results, ItemResult{PhotoID: photoID, Success: true, Status: status})
			result.Updated++
		case errors.Is(err, ErrPhotoNotFound):
			result.Results = append(result.Results, ItemResult{PhotoID: photoID, Success: false, Error: ErrPhotoNotFound.Message})
			result.Failed++
		default:
			return nil, fmt.Errorf("bulk selection for %s: %w", photoID, err)
		}
	}

	if result.Updated > 0 {
		realtime.Publish(ctx, s.publisher, realtime.Event{
			Type:      realtime.EventSelectionBulkUpdated,
			ProjectID: projectID,
			Data:      result,
			At:        now,
		})
	}
	return result, nil
}

// Stats counts decisions across every photo of the project
func (s *Service) Stats(ctx context.Context, projectID string) (*Stats, error) {
	photos, selections, err := s.repo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	stats := ComputeStats(photos, selections)
	return &stats, nil
}

// ComputeStats counts decisions for photos. Selections of photos outside the
// set are ignored; pending is whatever has no stored record.
func ComputeStats(photos []models.Photo, selections []models.Selection) Stats {
	inSet := make(map[string]struct{}, len(photos))
	for _, p := range photos {
		inSet[p.ID] = struct{}{}
	}

	stats := Stats{Total: len(inSet)}
	for _, sel := range selections {
		if _, ok := inSet[sel.PhotoID]; !ok {
			continue
		}
		switch sel.Status {
		case models.SelectionSelected:
			stats.Selected++
		case models.SelectionRejected:
			stats.Rejected++
		}
	}
	stats.Pending = stats.Total - stats.Selected - stats.Rejected
	return stats
}
