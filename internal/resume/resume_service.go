package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	resumeerrors "github.com/VaibhavBaliyan/hirenest/internal/resume/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/contextutil"
	"github.com/VaibhavBaliyan/hirenest/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxFileSize = 5 << 20

var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type UploadInput struct {
	FileName string
	Size     int64
	Reader   io.Reader
}

//go:generate mockgen -source=resume_service.go -destination=mock/resume_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, userID string, in UploadInput) (ResumeResponse, error)
	List(ctx context.Context, userID string) ([]ResumeResponse, error)
	Activate(ctx context.Context, userID, id string) (ResumeResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	repo   Repository
	files  storage.FileStore
	logger *zap.Logger
}

func NewService(repo Repository, files storage.FileStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("resume.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resume.service")
	}
	return &service{repo: repo, files: files, logger: l}
}

func (s *service) Upload(ctx context.Context, userID string, in UploadInput) (ResumeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return ResumeResponse{}, resumeerrors.ErrInvalidUserID
	}

	if in.Reader == nil || in.FileName == "" {
		return ResumeResponse{}, resumeerrors.ErrFileRequired
	}
	if in.Size > maxFileSize {
		return ResumeResponse{}, resumeerrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(in.FileName))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return ResumeResponse{}, resumeerrors.ErrUnsupportedFileType
	}

	id := uuid.New()
	key := fmt.Sprintf("resumes/%s/%s%s", userID, id.String(), ext)

	if err := s.files.Upload(ctx, key, in.Reader, in.Size, contentType); err != nil {
		l.Error("resume file upload failed", zap.String("key", key), zap.Error(err))
		return ResumeResponse{}, resumeerrors.ErrUploadFailed
	}

	url, err := s.files.PresignedURL(ctx, key, 7*24*time.Hour)
	if err != nil {
		l.Warn("presign resume url failed", zap.String("key", key), zap.Error(err))
		url = key
	}

	res := &Resume{
		ID:       id,
		UserID:   userUUID,
		FileName: in.FileName,
		FileKey:  key,
		FileURL:  url,
	}

	if err := s.repo.CreateActive(ctx, res); err != nil {
		l.Error("persist resume failed", zap.String("resume_id", id.String()), zap.Error(err))
		// The stored object is now orphaned; clean it up on a best-effort
		// basis.
		if rmErr := s.files.Remove(ctx, key); rmErr != nil {
			l.Warn("orphaned resume file cleanup failed", zap.String("key", key), zap.Error(rmErr))
		}
		return ResumeResponse{}, mapRepositoryError(err)
	}

	l.Info("resume uploaded",
		zap.String("resume_id", id.String()),
		zap.String("user_id", userID),
	)
	return mapToResponse(*res), nil
}

func (s *service) List(ctx context.Context, userID string) ([]ResumeResponse, error) {
	resumes, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]ResumeResponse, len(resumes))
	for i, r := range resumes {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) Activate(ctx context.Context, userID, id string) (ResumeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	res, err := s.repo.Activate(ctx, userID, id)
	if err != nil {
		return ResumeResponse{}, mapRepositoryError(err)
	}

	l.Info("resume activated", zap.String("resume_id", id), zap.String("user_id", userID))
	return mapToResponse(*res), nil
}

// Delete removes the row first, then the stored file. File removal is
// best-effort: a storage failure leaves an orphaned object, never a
// half-deleted resume.
func (s *service) Delete(ctx context.Context, userID, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	res, err := s.repo.DeleteByIDAndUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resumeerrors.ErrResumeNotFound
		}
		return err
	}

	if err := s.files.Remove(ctx, res.FileKey); err != nil {
		l.Warn("resume file removal failed",
			zap.String("resume_id", id),
			zap.String("key", res.FileKey),
			zap.Error(err),
		)
	}

	l.Info("resume deleted", zap.String("resume_id", id), zap.String("user_id", userID))
	return nil
}

func mapToResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ID:        r.ID.String(),
		FileName:  r.FileName,
		FileURL:   r.FileURL,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
