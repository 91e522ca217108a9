package savedjob

import (
	"context"
	"errors"
	"time"

	"github.com/VaibhavBaliyan/hirenest/internal/job"
	joberrors "github.com/VaibhavBaliyan/hirenest/internal/job/errors"
	savedjoberrors "github.com/VaibhavBaliyan/hirenest/internal/savedjob/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=savedjob_service.go -destination=mock/savedjob_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, userID, jobID string) (SavedJobResponse, error)
	List(ctx context.Context, userID string) ([]SavedJobResponse, error)
	Unsave(ctx context.Context, userID, jobID string) error
}

type service struct {
	repo    Repository
	jobRepo job.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, jobRepo job.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("savedjob.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("savedjob.service")
	}
	return &service{repo: repo, jobRepo: jobRepo, logger: l}
}

func (s *service) Save(ctx context.Context, userID, jobID string) (SavedJobResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return SavedJobResponse{}, savedjoberrors.ErrInvalidUserID
	}

	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SavedJobResponse{}, joberrors.ErrJobNotFound
		}
		return SavedJobResponse{}, err
	}

	save := &SavedJob{
		ID:     uuid.New(),
		UserID: userUUID,
		JobID:  j.ID,
	}

	// No duplicate pre-check: the unique (user_id, job_id) index settles
	// concurrent saves and the mapper turns 23505 into the conflict error.
	if err := s.repo.Create(ctx, save); err != nil {
		return SavedJobResponse{}, mapRepositoryError(err)
	}

	l.Info("job saved", zap.String("job_id", jobID), zap.String("user_id", userID))
	return mapToResponse(*save), nil
}

func (s *service) List(ctx context.Context, userID string) ([]SavedJobResponse, error) {
	saves, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]SavedJobResponse, len(saves))
	for i, sv := range saves {
		r := mapToResponse(sv.SavedJob)
		r.Job = &JobSummary{
			Title:    sv.JobTitle,
			Location: sv.JobLocation,
			JobType:  sv.JobType,
			Min:      sv.JobSalaryMin,
			Max:      sv.JobSalaryMax,
			Currency: sv.JobCurrency,
			Status:   sv.JobStatus,
		}
		resp[i] = r
	}
	return resp, nil
}

func (s *service) Unsave(ctx context.Context, userID, jobID string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	affected, err := s.repo.DeleteByUserAndJob(ctx, userID, jobID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return savedjoberrors.ErrSavedJobNotFound
	}

	l.Info("job unsaved", zap.String("job_id", jobID), zap.String("user_id", userID))
	return nil
}

func mapToResponse(s SavedJob) SavedJobResponse {
	return SavedJobResponse{
		ID:      s.ID.String(),
		JobID:   s.JobID.String(),
		SavedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
