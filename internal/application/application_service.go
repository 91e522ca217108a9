package application

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	applicationerrors "github.com/VaibhavBaliyan/hirenest/internal/application/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/events"
	"github.com/VaibhavBaliyan/hirenest/internal/job"
	joberrors "github.com/VaibhavBaliyan/hirenest/internal/job/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/messaging/kafka"
	"github.com/VaibhavBaliyan/hirenest/internal/resume"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, applicantID, jobID string, req ApplyRequest) (ApplicationResponse, error)
	GetMyApplications(ctx context.Context, applicantID string) ([]ApplicationResponse, error)
	GetJobApplicants(ctx context.Context, employerID, jobID string) ([]ApplicationResponse, error)
	UpdateStatus(ctx context.Context, employerID, id string, req UpdateStatusRequest) (ApplicationResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	jobRepo    job.Repository
	resumeRepo resume.Repository
	outbox     kafka.OutboxRepository
	policy     *authz.Policy
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	jobRepo job.Repository,
	resumeRepo resume.Repository,
	outboxRepo kafka.OutboxRepository,
	policy *authz.Policy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
		outbox:     outboxRepo,
		policy:     policy,
		logger:     l,
	}
}

// Apply runs the precondition chain in a fixed order, then commits the
// application row and its outbox event in one transaction. The unique
// (job_id, applicant_id) index is the final arbiter when two submissions
// race past the duplicate pre-check.
func (s *service) Apply(ctx context.Context, applicantID, jobID string, req ApplyRequest) (ApplicationResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	applicantUUID, err := uuid.Parse(applicantID)
	if err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidApplicantID
	}

	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, joberrors.ErrJobNotFound
		}
		return ApplicationResponse{}, err
	}

	if j.Status == job.StatusClosed {
		return ApplicationResponse{}, applicationerrors.ErrJobClosed
	}

	if err := s.policy.RejectSelfAction(applicantID, j.EmployerID.String()); err != nil {
		return ApplicationResponse{}, applicationerrors.ErrOwnJob
	}

	activeResume, err := s.resumeRepo.FindActiveByUser(ctx, applicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, applicationerrors.ErrResumeRequired
		}
		return ApplicationResponse{}, err
	}

	if _, err := s.repo.FindByJobAndApplicant(ctx, jobID, applicantID); err == nil {
		return ApplicationResponse{}, applicationerrors.ErrAlreadyApplied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ApplicationResponse{}, err
	}

	a := &Application{
		ID:          uuid.New(),
		JobID:       j.ID,
		ApplicantID: applicantUUID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   activeResume.FileURL,
		Status:      StatusApplied,
		AppliedAt:   time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("apply begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, a); err != nil {
		l.Warn("apply persist failed",
			zap.String("job_id", jobID),
			zap.String("applicant_id", applicantID),
			zap.Error(err),
		)
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.ApplicationSubmittedEvent{
			EventType:     "application_submitted",
			RequestID:     rid,
			ApplicationID: a.ID.String(),
			JobID:         jobID,
			ApplicantID:   applicantID,
			EmployerID:    j.EmployerID.String(),
			OccurredAt:    time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			l.Error("marshal application event failed", zap.Error(err))
			return ApplicationResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "application",
			AggregateID:   a.ID.String(),
			EventType:     event.EventType,
			Topic:         events.ApplicationSubmittedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			l.Error("apply outbox persist failed",
				zap.String("application_id", a.ID.String()),
				zap.Error(err),
			)
			return ApplicationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error("apply commit failed", zap.Error(err))
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	l.Info("application submitted",
		zap.String("application_id", a.ID.String()),
		zap.String("job_id", jobID),
		zap.String("applicant_id", applicantID),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetMyApplications(ctx context.Context, applicantID string) ([]ApplicationResponse, error) {
	apps, err := s.repo.FindAllByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	resp := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		r := mapToResponse(a.Application)
		r.Job = &JobSummary{
			Title:    a.JobTitle,
			Location: a.JobLocation,
			JobType:  a.JobType,
			Salary:   Salary{Min: a.JobSalaryMin, Max: a.JobSalaryMax, Currency: a.JobCurrency},
			Status:   a.JobStatus,
		}
		resp[i] = r
	}
	return resp, nil
}

func (s *service) GetJobApplicants(ctx context.Context, employerID, jobID string) ([]ApplicationResponse, error) {
	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}

	if err := s.policy.RequireOwnership(employerID, j.EmployerID.String()); err != nil {
		return nil, applicationerrors.ErrNotAuthorizedToView
	}

	apps, err := s.repo.FindAllByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	resp := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		r := mapToResponse(a.Application)
		r.Applicant = &ApplicantSummary{
			Name:  a.ApplicantName,
			Email: a.ApplicantEmail,
			Phone: a.ApplicantPhone,
		}
		resp[i] = r
	}
	return resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, employerID, id string, req UpdateStatusRequest) (ApplicationResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	// Whitelist before lookup so probing with garbage statuses reveals
	// nothing about which applications exist.
	if !ValidStatus(req.Status) {
		return ApplicationResponse{}, applicationerrors.ErrInvalidStatus
	}

	a, err := s.repo.FindByIDWithJob(ctx, id)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	if err := s.policy.RequireOwnership(employerID, a.JobEmployerID.String()); err != nil {
		return ApplicationResponse{}, applicationerrors.ErrNotAuthorizedToUpdate
	}

	fromStatus := a.Status
	if !CanTransition(fromStatus, req.Status) {
		return ApplicationResponse{}, applicationerrors.ErrInvalidTransition
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update status begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateStatus(ctx, id, req.Status); err != nil {
		l.Error("update status persist failed", zap.String("application_id", id), zap.Error(err))
		return ApplicationResponse{}, err
	}

	if s.outbox != nil {
		event := events.ApplicationStatusChangedEvent{
			EventType:     "application_status_changed",
			RequestID:     rid,
			ApplicationID: id,
			JobID:         a.JobID.String(),
			ApplicantID:   a.ApplicantID.String(),
			FromStatus:    fromStatus,
			ToStatus:      req.Status,
			OccurredAt:    time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			l.Error("marshal status event failed", zap.Error(err))
			return ApplicationResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "application",
			AggregateID:   id,
			EventType:     event.EventType,
			Topic:         events.ApplicationStatusChangedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			l.Error("status outbox persist failed", zap.String("application_id", id), zap.Error(err))
			return ApplicationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error("update status commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	a.Application.Status = req.Status

	l.Info("application status updated",
		zap.String("application_id", id),
		zap.String("from", fromStatus),
		zap.String("to", req.Status),
	)
	return mapToResponse(a.Application), nil
}

func mapToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID.String(),
		JobID:       a.JobID.String(),
		ApplicantID: a.ApplicantID.String(),
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt.Format(time.RFC3339),
	}
}
