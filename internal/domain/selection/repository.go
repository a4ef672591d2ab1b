package selection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/store"
)

// Change describes one selection write
type Change struct {
	ProjectID string
	PhotoID   string
	ClientID  string
	Status    models.SelectionStatus
	At        time.Time
}

// Repository defines selection data access interface
type Repository interface {
	// Apply writes change atomically. Pending removes the record.
	Apply(ctx context.Context, change Change) error
	ListForProject(ctx context.Context, projectID string) ([]models.Photo, []models.Selection, error)
}

type repository struct {
	st *store.Store
}

// NewRepository creates selection repository backed by the entity store
func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) Apply(ctx context.Context, change Change) error {
	return r.st.Write(ctx, func(tx *store.Tx) error {
		photo, ok := tx.Photo(change.PhotoID)
		if !ok || photo.ProjectID != change.ProjectID {
			return ErrPhotoNotFound
		}

		if change.Status == models.SelectionPending {
			_, err := tx.DeleteSelection(change.ProjectID, change.PhotoID)
			return err
		}

		sel, exists := tx.Selection(change.ProjectID, change.PhotoID)
		if !exists {
			sel = models.Selection{
				ID:        uuid.NewString(),
				PhotoID:   change.PhotoID,
				ProjectID: change.ProjectID,
				ClientID:  change.ClientID,
				CreatedAt: change.At,
			}
		}
		sel.Status = change.Status
		sel.UpdatedAt = change.At
		return tx.PutSelection(sel)
	})
}

func (r *repository) ListForProject(ctx context.Context, projectID string) ([]models.Photo, []models.Selection, error) {
	var (
		photos     []models.Photo
		selections []models.Selection
	)
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		photos = tx.PhotosByProject(projectID)
		selections = tx.SelectionsByProject(projectID)
		return nil
	})
	return photos, selections, err
}
