package project

import (
	"context"
	"errors"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/store"
)

// Repository defines project data access interface. Every method taking an
// ownerID fails with ErrNotOwner for projects of another photographer.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Summary, error)
	Create(ctx context.Context, p models.Project) error
	Detail(ctx context.Context, ownerID, id string) (*Detail, error)
	Update(ctx context.Context, ownerID, id string, apply func(p *models.Project)) (models.Project, error)
	CreateFolder(ctx context.Context, ownerID string, f models.Folder) error
	ListFolders(ctx context.Context, ownerID, projectID string) ([]models.Folder, error)
	AddPhoto(ctx context.Context, ownerID string, p models.Photo) error
}

type repository struct {
	st *store.Store
}

// NewRepository creates project repository backed by the entity store
func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func owned(tx *store.Tx, ownerID, id string) (models.Project, error) {
	p, ok := tx.Project(id)
	if !ok {
		return models.Project{}, ErrProjectNotFound
	}
	if p.OwnerID != ownerID {
		return models.Project{}, ErrNotOwner
	}
	return p, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]Summary, error) {
	var out []Summary
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		projects := tx.ProjectsByOwner(ownerID)
		out = make([]Summary, 0, len(projects))
		for _, p := range projects {
			out = append(out, Summary{
				Project:     p,
				FolderCount: len(tx.FoldersByProject(p.ID)),
				PhotoCount:  len(tx.PhotosByProject(p.ID)),
			})
		}
		return nil
	})
	return out, err
}

func (r *repository) Create(ctx context.Context, p models.Project) error {
	return r.st.Write(ctx, func(tx *store.Tx) error {
		return tx.InsertProject(p)
	})
}

func (r *repository) Detail(ctx context.Context, ownerID, id string) (*Detail, error) {
	var d *Detail
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		p, err := owned(tx, ownerID, id)
		if err != nil {
			return err
		}
		d = &Detail{
			Project: p,
			Folders: tx.FoldersByProject(id),
			Photos:  tx.PhotosByProject(id),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.Stats.FolderCount = len(d.Folders)
	d.Stats.PhotoCount = len(d.Photos)
	for _, ph := range d.Photos {
		d.Stats.TotalSize += ph.Size
	}
	return d, nil
}

func (r *repository) Update(ctx context.Context, ownerID, id string, apply func(p *models.Project)) (models.Project, error) {
	var updated models.Project
	err := r.st.Write(ctx, func(tx *store.Tx) error {
		p, err := owned(tx, ownerID, id)
		if err != nil {
			return err
		}
		apply(&p)
		updated = p
		return tx.UpdateProject(p)
	})
	return updated, err
}

func (r *repository) CreateFolder(ctx context.Context, ownerID string, f models.Folder) error {
	return r.st.Write(ctx, func(tx *store.Tx) error {
		if _, err := owned(tx, ownerID, f.ProjectID); err != nil {
			return err
		}
		return tx.InsertFolder(f)
	})
}

func (r *repository) ListFolders(ctx context.Context, ownerID, projectID string) ([]models.Folder, error) {
	var folders []models.Folder
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		if _, err := owned(tx, ownerID, projectID); err != nil {
			return err
		}
		folders = tx.FoldersByProject(projectID)
		return nil
	})
	return folders, err
}

func (r *repository) AddPhoto(ctx context.Context, ownerID string, p models.Photo) error {
	return r.st.Write(ctx, func(tx *store.Tx) error {
		if _, err := owned(tx, ownerID, p.ProjectID); err != nil {
			return err
		}
		if _, ok := tx.Folder(p.FolderID); !ok {
			return ErrFolderNotFound
		}
		err := tx.InsertPhoto(p)
		if errors.Is(err, store.ErrFolderMismatch) {
			return ErrFolderMismatch
		}
		return err
	})
}
