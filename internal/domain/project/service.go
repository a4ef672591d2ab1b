package project

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/store"
)

const maxTokenAttempts = 5

// Service handles photographer-side project management
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates project service
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// List returns the owner's projects with content counts
func (s *Service) List(ctx context.Context, ownerID string) ([]Summary, error) {
	projects, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Create starts a draft project with a fresh share token
func (s *Service) Create(ctx context.Context, ownerID string, req *CreateRequest) (*models.Project, error) {
	now := s.now()
	p := models.Project{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		OwnerID:     ownerID,
		Status:      models.ProjectStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		p.ShareToken = shareToken(p.Name, now, attempt)
		err := s.repo.Create(ctx, p)
		if err == nil {
			log.Info().Str("project_id", p.ID).Str("owner_id", ownerID).Msg("Project created")
			return &p, nil
		}
		if !errors.Is(err, store.ErrDuplicateShareToken) {
			return nil, fmt.Errorf("create project: %w", err)
		}
		log.Warn().Str("share_token", p.ShareToken).Msg("Share token collision, regenerating")
	}
	return nil, ErrTokenExhausted
}

// Get returns the project with its folders, photos and stats
func (s *Service) Get(ctx context.Context, ownerID, id string) (*Detail, error) {
	d, err := s.repo.Detail(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return d, nil
}

// Update changes the given fields. Any status may follow any other.
func (s *Service) Update(ctx context.Context, ownerID, id string, req *UpdateRequest) (*models.Project, error) {
	if req.Status != nil && !models.ProjectStatus(*req.Status).Valid() {
		return nil, ErrInvalidStatus
	}

	now := s.now()
	p, err := s.repo.Update(ctx, ownerID, id, func(p *models.Project) {
		if req.Name != nil {
			p.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			p.Description = strings.TrimSpace(*req.Description)
		}
		if req.Status != nil {
			p.Status = models.ProjectStatus(*req.Status)
			if p.Status != models.ProjectStatusCompleted {
				p.CompletedAt = nil
			} else if p.CompletedAt == nil {
				p.CompletedAt = &now
			}
		}
		p.UpdatedAt = now
	})
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	return &p, nil
}

// CreateFolder adds a folder to the owner's project
func (s *Service) CreateFolder(ctx context.Context, ownerID, projectID string, req *CreateFolderRequest) (*models.Folder, error) {
	f := models.Folder{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   s.now(),
	}
	if err := s.repo.CreateFolder(ctx, ownerID, f); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return &f, nil
}

// ListFolders returns the project's folders in creation order
func (s *Service) ListFolders(ctx context.Context, ownerID, projectID string) ([]models.Folder, error) {
	folders, err := s.repo.ListFolders(ctx, ownerID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

// AddPhoto registers a hosted photo in one of the project's folders
func (s *Service) AddPhoto(ctx context.Context, ownerID, projectID string, req *AddPhotoRequest) (*models.Photo, error) {
	originalName := req.OriginalName
	if originalName == "" {
		originalName = req.Filename
	}
	thumbnail := req.ThumbnailURL
	if thumbnail == "" {
		thumbnail = req.URL
	}

	p := models.Photo{
		ID:           uuid.NewString(),
		FolderID:     req.FolderID,
		ProjectID:    projectID,
		Filename:     req.Filename,
		OriginalName: originalName,
		URL:          req.URL,
		ThumbnailURL: thumbnail,
		Size:         req.Size,
		Width:        req.Width,
		Height:       req.Height,
		Metadata:     req.Metadata,
		UploadedAt:   s.now(),
	}
	if err := s.repo.AddPhoto(ctx, ownerID, p); err != nil {
		return nil, fmt.Errorf("add photo: %w", err)
	}
	return &p, nil
}

// shareToken builds share-<slug>-<unix millis>. Retries get a random suffix
// since the millisecond part does not change between attempts.
func shareToken(name string, at time.Time, attempt int) string {
	token := fmt.Sprintf("share-%s-%d", slugify(name), at.UnixMilli())
	if attempt > 0 {
		token += "-" + uuid.NewString()[:8]
	}
	return token
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "project"
	}
	return slug
}
