package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPortfolioID    = fmt.Errorf("%w: invalid portfolio item id", ErrValidation)
	ErrPortfolioImageMissing = fmt.Errorf("%w: an image upload or image url is required", ErrValidation)
	ErrPortfolioNotFound     = fmt.Errorf("portfolio item %w", ErrNotFound)
)

type PortfolioInput struct {
	Title     string
	Category  entities.ServiceCategory
	ProjectID string
	ImageURL  string
	Image     *entities.FileUpload
}

// IPortfolioUseCase manages worker showcase items. Items are public once an
// admin approves them; featured items lead the gallery.

type IPortfolioUseCase interface {
	Create(ctx context.Context, s entities.Session, in PortfolioInput) (entities.PortfolioItem, error)
	List(ctx context.Context, s entities.Session) ([]entities.PortfolioItem, error)
	Approve(ctx context.Context, s entities.Session, id string, approved bool) (entities.PortfolioItem, error)
	Feature(ctx context.Context, s entities.Session, id string, featured bool) (entities.PortfolioItem, error)
}

type PortfolioUseCase struct {
	repo     interfaces.IPortfolioRepository
	projects interfaces.IProjectRepository
	storage  interfaces.IFileStorage
	bucket   string
	log      *zap.Logger
}

var _ IPortfolioUseCase = (*PortfolioUseCase)(nil)

func NewPortfolioUseCase(repo interfaces.IPortfolioRepository, projects interfaces.IProjectRepository, storage interfaces.IFileStorage, bucket string, log *zap.Logger) *PortfolioUseCase {
	return &PortfolioUseCase{repo: repo, projects: projects, storage: storage, bucket: bucket, log: logger.OrNop(log)}
}

func (u *PortfolioUseCase) Create(ctx context.Context, s entities.Session, in PortfolioInput) (entities.PortfolioItem, error) {
	if err := requireSession(s); err != nil {
		return entities.PortfolioItem{}, err
	}
	if s.Role != entities.RoleWorker {
		return entities.PortfolioItem{}, fmt.Errorf("%w: only workers own portfolio items", ErrForbidden)
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return entities.PortfolioItem{}, ErrInvalidTitle
	}
	if !in.Category.Valid() {
		return entities.PortfolioItem{}, ErrInvalidCategory
	}
	if in.ProjectID = strings.TrimSpace(in.ProjectID); in.ProjectID != "" {
		p, err := loadProject(ctx, u.projects, in.ProjectID)
		if err != nil {
			return entities.PortfolioItem{}, err
		}
		if p.WorkerID != s.UserID {
			return entities.PortfolioItem{}, fmt.Errorf("%w: project %s was not delivered by this worker", ErrForbidden, p.ID)
		}
	}

	id := uuid.NewString()
	imageURL := strings.TrimSpace(in.ImageURL)
	if in.Image != nil && len(in.Image.Body) > 0 {
		if u.storage == nil {
			return entities.PortfolioItem{}, ErrStorageNotConfigured
		}
		name := sanitizeFileName(in.Image.FileName)
		if name == "" {
			name = "image"
		}
		key := fmt.Sprintf("portfolio/%s/%s-%s", s.UserID, id, name)
		url, err := u.storage.Upload(ctx, u.bucket, key, in.Image.Body, in.Image.ContentType)
		if err != nil {
			u.log.Error("[portfolio][usecase] image upload failed", zap.String("worker_id", s.UserID), zap.Error(err))
			return entities.PortfolioItem{}, external(err)
		}
		imageURL = url
	}
	if imageURL == "" {
		return entities.PortfolioItem{}, ErrPortfolioImageMissing
	}

	item, err := u.repo.Create(ctx, entities.PortfolioItem{
		ID:        id,
		WorkerID:  s.UserID,
		ProjectID: in.ProjectID,
		Title:     in.Title,
		Category:  in.Category,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.PortfolioItem{}, external(err)
	}
	u.log.Info("[portfolio][usecase] item created", zap.String("id", item.ID), zap.String("worker_id", s.UserID))
	return item, nil
}

// List returns approved items, plus the caller's own pending items for
// workers and everything for admins. Featured items come first.
func (u *PortfolioUseCase) List(ctx context.Context, s entities.Session) ([]entities.PortfolioItem, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, external(err)
	}
	featured := make([]entities.PortfolioItem, 0)
	rest := make([]entities.PortfolioItem, 0, len(all))
	for _, it := range all {
		if !it.Approved && !s.IsAdmin() && it.WorkerID != s.UserID {
			continue
		}
		if it.Featured && it.Approved {
			featured = append(featured, it)
		} else {
			rest = append(rest, it)
		}
	}
	return append(featured, rest...), nil
}

func (u *PortfolioUseCase) Approve(ctx context.Context, s entities.Session, id string, approved bool) (entities.PortfolioItem, error) {
	return u.setFlags(ctx, s, id, &approved, nil)
}

func (u *PortfolioUseCase) Feature(ctx context.Context, s entities.Session, id string, featured bool) (entities.PortfolioItem, error) {
	return u.setFlags(ctx, s, id, nil, &featured)
}

func (u *PortfolioUseCase) setFlags(ctx context.Context, s entities.Session, id string, approved, featured *bool) (entities.PortfolioItem, error) {
	if err := requireSession(s); err != nil {
		return entities.PortfolioItem{}, err
	}
	if !s.IsAdmin() {
		return entities.PortfolioItem{}, fmt.Errorf("%w: only admins moderate the portfolio", ErrForbidden)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PortfolioItem{}, ErrInvalidPortfolioID
	}
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PortfolioItem{}, external(err)
	}
	if current.ID == "" {
		return entities.PortfolioItem{}, ErrPortfolioNotFound
	}
	if featured != nil && *featured && !current.Approved && (approved == nil || !*approved) {
		return entities.PortfolioItem{}, fmt.Errorf("%w: only approved items can be featured", ErrPrecondition)
	}
	item, err := u.repo.SetFlags(ctx, id, approved, featured)
	if err != nil {
		return entities.PortfolioItem{}, external(err)
	}
	u.log.Info("[portfolio][usecase] flags updated", zap.String("id", id), zap.Bool("approved", item.Approved), zap.Bool("featured", item.Featured))
	return item, nil
}
