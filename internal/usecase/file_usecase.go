package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"plaiz_studio/internal/domain/effects"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/domain/lifecycle"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxUploadBytes caps a single deliverable upload.
const DefaultMaxUploadBytes int64 = 50 << 20

var (
	ErrInvalidFileName      = fmt.Errorf("%w: file name is required", ErrValidation)
	ErrEmptyFile            = fmt.Errorf("%w: file is empty", ErrValidation)
	ErrFileTooLarge         = fmt.Errorf("%w: file exceeds the upload limit", ErrValidation)
	ErrStorageNotConfigured = fmt.Errorf("%w: file storage not configured", ErrExternalService)
)

// FileView is a project file as shown to a caller. URL is empty while Locked.
type FileView struct {
	entities.ProjectFile
	Locked bool `json:"locked"`
}

// IFileUseCase handles deliverable uploads and the locked file listing.

type IFileUseCase interface {
	UploadFile(ctx context.Context, s entities.Session, projectID string, upload entities.FileUpload) (TransitionResult, error)
	ListFiles(ctx context.Context, s entities.Session, projectID string) ([]FileView, error)
}

type FileUseCase struct {
	projects   interfaces.IProjectRepository
	files      interfaces.IProjectFileRepository
	storage    interfaces.IFileStorage
	bucket     string
	maxBytes   int64
	dispatcher *SideEffectDispatcher
	log        *zap.Logger
}

var _ IFileUseCase = (*FileUseCase)(nil)

func NewFileUseCase(
	projects interfaces.IProjectRepository,
	files interfaces.IProjectFileRepository,
	storage interfaces.IFileStorage,
	bucket string,
	maxBytes int64,
	dispatcher *SideEffectDispatcher,
	log *zap.Logger,
) *FileUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &FileUseCase{
		projects:   projects,
		files:      files,
		storage:    storage,
		bucket:     bucket,
		maxBytes:   maxBytes,
		dispatcher: dispatcher,
		log:        logger.OrNop(log),
	}
}

func (u *FileUseCase) UploadFile(ctx context.Context, s entities.Session, projectID string, upload entities.FileUpload) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	name := sanitizeFileName(upload.FileName)
	if name == "" {
		return TransitionResult{}, ErrInvalidFileName
	}
	if len(upload.Body) == 0 {
		return TransitionResult{}, ErrEmptyFile
	}
	if int64(len(upload.Body)) > u.maxBytes {
		return TransitionResult{}, ErrFileTooLarge
	}
	if u.storage == nil {
		return TransitionResult{}, ErrStorageNotConfigured
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := guardError(lifecycle.CanUpload(p, s)); err != nil {
		return TransitionResult{}, err
	}

	contentType := strings.TrimSpace(upload.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	id := uuid.NewString()
	key := fmt.Sprintf("projects/%s/%s-%s", p.ID, id, name)
	u.log.Info("[file][usecase] upload start", zap.String("project_id", p.ID), zap.String("key", key), zap.Int("size", len(upload.Body)))

	url, err := u.storage.Upload(ctx, u.bucket, key, upload.Body, contentType)
	if err != nil {
		u.log.Error("[file][usecase] storage upload failed", zap.String("project_id", p.ID), zap.Error(err))
		return TransitionResult{}, external(err)
	}
	f, err := u.files.Create(ctx, entities.ProjectFile{
		ID:          id,
		ProjectID:   p.ID,
		UploaderID:  s.UserID,
		FileName:    name,
		URL:         url,
		ContentType: contentType,
		Size:        int64(len(upload.Body)),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return TransitionResult{}, external(err)
	}

	var out effects.Outbox
	out.Add(effects.ChangeEvent{Table: "project_files", RecordID: f.ID, ProjectID: p.ID})
	res := TransitionResult{Project: p, File: &f}

	if lifecycle.TriggersReview(p, s.UserID) {
		updated, effs, applied, err := advance(ctx, u.projects, s, p,
			[]entities.ProjectStatus{entities.ProjectStatusInProgress},
			entities.ProjectStatusReadyForReview, "work_delivered",
			"The expert uploaded work for your review.")
		if err != nil {
			return TransitionResult{}, err
		}
		if applied {
			res.Project, res.Advanced = updated, true
			out.Add(effs...)
		}
	}

	res.Effects = out.Effects()
	u.dispatcher.Dispatch(ctx, res.Effects)
	u.log.Info("[file][usecase] upload success", zap.String("project_id", p.ID), zap.String("file_id", f.ID), zap.Bool("advanced", res.Advanced))
	return res, nil
}

func (u *FileUseCase) ListFiles(ctx context.Context, s entities.Session, projectID string) ([]FileView, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return nil, err
	}
	if err := canView(p, s); err != nil {
		return nil, err
	}
	list, err := u.files.ListByProjectID(ctx, p.ID)
	if err != nil {
		return nil, external(err)
	}
	unlocked := lifecycle.FilesUnlocked(p)
	out := make([]FileView, 0, len(list))
	for _, f := range list {
		v := FileView{ProjectFile: f, Locked: !unlocked}
		if v.Locked {
			v.URL = ""
		}
		out = append(out, v)
	}
	return out, nil
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return strings.ReplaceAll(name, " ", "_")
}
