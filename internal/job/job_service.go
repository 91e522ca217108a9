package job

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/company"
	joberrors "github.com/VaibhavBaliyan/hirenest/internal/job/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	statsKeyPrefix = "jobs:stats:"
	statsTTL       = 5 * time.Minute
)

func statsKey(employerID string) string {
	return statsKeyPrefix + employerID
}

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employerID string, req CreateJobRequest) (JobResponse, error)
	GetByID(ctx context.Context, id string) (JobResponse, error)
	List(ctx context.Context, filter ListFilter) (JobListResponse, error)
	Update(ctx context.Context, employerID, id string, req UpdateJobRequest) (JobResponse, error)
	Close(ctx context.Context, employerID, id string) (JobResponse, error)
	Delete(ctx context.Context, employerID, id string) error
	GetMyJobs(ctx context.Context, employerID string) ([]JobResponse, error)
	GetEmployerStats(ctx context.Context, employerID string) (EmployerStatsResponse, error)
}

type service struct {
	repo        Repository
	companyRepo company.Repository
	policy      *authz.Policy
	rdb         *redis.Client
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	companyRepo company.Repository,
	policy *authz.Policy,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		repo:        repo,
		companyRepo: companyRepo,
		policy:      policy,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, employerID string, req CreateJobRequest) (JobResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	employerUUID, err := uuid.Parse(employerID)
	if err != nil {
		return JobResponse{}, joberrors.ErrInvalidEmployerID
	}

	if err := validateRanges(req.Salary, req.Experience); err != nil {
		return JobResponse{}, err
	}

	// A job cannot exist without a company profile; this is a cross-entity
	// prerequisite, not input validation.
	comp, err := s.companyRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobResponse{}, joberrors.ErrNoCompanyProfile
		}
		return JobResponse{}, err
	}

	j := &Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		CompanyID:   comp.ID,
		EmployerID:  employerUUID,
		Location:    req.Location,
		JobType:     req.JobType,
		Salary:      Salary{Min: req.Salary.Min, Max: req.Salary.Max},
		Skills:      req.Skills,
		Experience:  Experience{Min: req.Experience.Min, Max: req.Experience.Max},
		Status:      StatusActive,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		l.Error("create job persist failed", zap.Error(err))
		return JobResponse{}, err
	}

	s.invalidateStats(ctx, employerID)

	l.Info("job created",
		zap.String("job_id", j.ID.String()),
		zap.String("employer_id", employerID),
	)
	return mapToResponse(*j), nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobResponse, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapNotFound(err)
	}
	return mapToResponse(*j), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) (JobListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	jobs, total, err := s.repo.FindAllActive(ctx, filter)
	if err != nil {
		return JobListResponse{}, err
	}

	resp := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = mapToResponse(j)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return JobListResponse{
		Jobs:        resp,
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
		TotalJobs:   total,
	}, nil
}

func (s *service) Update(ctx context.Context, employerID, id string, req UpdateJobRequest) (JobResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapNotFound(err)
	}

	if err := s.policy.RequireOwnership(employerID, j.EmployerID.String()); err != nil {
		return JobResponse{}, joberrors.ErrNotJobOwner
	}

	// Closed is terminal; edits stop with the state machine, not the owner.
	if j.Status == StatusClosed {
		return JobResponse{}, joberrors.ErrJobClosed
	}

	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.JobType != nil {
		j.JobType = *req.JobType
	}
	if req.Salary != nil {
		j.Salary.Min = req.Salary.Min
		j.Salary.Max = req.Salary.Max
	}
	if req.Skills != nil {
		j.Skills = *req.Skills
	}
	if req.Experience != nil {
		j.Experience.Min = req.Experience.Min
		j.Experience.Max = req.Experience.Max
	}

	if err := validateRanges(
		RangeInput{Min: j.Salary.Min, Max: j.Salary.Max},
		ExperienceInput{Min: j.Experience.Min, Max: j.Experience.Max},
	); err != nil {
		return JobResponse{}, err
	}

	rows, err := s.repo.UpdateActive(ctx, j)
	if err != nil {
		l.Error("update job persist failed", zap.String("job_id", id), zap.Error(err))
		return JobResponse{}, err
	}
	// Zero rows: the job was closed between the read and the write.
	if rows == 0 {
		return JobResponse{}, joberrors.ErrJobClosed
	}

	s.invalidateStats(ctx, employerID)

	l.Info("job updated", zap.String("job_id", id))
	return mapToResponse(*j), nil
}

func (s *service) Close(ctx context.Context, employerID, id string) (JobResponse, error) {
	j, err := s.transitionToClosed(ctx, employerID, id)
	if err != nil {
		return JobResponse{}, err
	}
	return mapToResponse(*j), nil
}

// Delete is a soft delete: the same one-way transition as Close. The row is
// never removed so existing applications and saved jobs keep a valid target.
func (s *service) Delete(ctx context.Context, employerID, id string) error {
	_, err := s.transitionToClosed(ctx, employerID, id)
	if err != nil && !errors.Is(err, joberrors.ErrJobAlreadyClosed) {
		return err
	}
	return nil
}

func (s *service) transitionToClosed(ctx context.Context, employerID, id string) (*Job, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if err := s.policy.RequireOwnership(employerID, j.EmployerID.String()); err != nil {
		return nil, joberrors.ErrNotJobOwner
	}

	// Re-closing is a conflict, not a no-op: callers must observe current
	// state rather than fire blind transitions.
	if j.Status == StatusClosed {
		return nil, joberrors.ErrJobAlreadyClosed
	}

	j.Status = StatusClosed
	rows, err := s.repo.UpdateActive(ctx, j)
	if err != nil {
		l.Error("close job persist failed", zap.String("job_id", id), zap.Error(err))
		return nil, err
	}
	// A concurrent close got there first; only one transition commits.
	if rows == 0 {
		return nil, joberrors.ErrJobAlreadyClosed
	}

	s.invalidateStats(ctx, employerID)

	l.Info("job closed", zap.String("job_id", id))
	return j, nil
}

func (s *service) GetMyJobs(ctx context.Context, employerID string) ([]JobResponse, error) {
	jobs, err := s.repo.FindAllByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}

	resp := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		r := mapToResponse(j.Job)
		count := j.ApplicantCount
		r.ApplicantCount = &count
		resp[i] = r
	}

	return resp, nil
}

func (s *service) GetEmployerStats(ctx context.Context, employerID string) (EmployerStatsResponse, error) {
	key := statsKey(employerID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp EmployerStatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent cache misses for the same employer to one query.
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		totalJobs, err := s.repo.CountByEmployer(ctx, employerID, "")
		if err != nil {
			return nil, err
		}
		activeJobs, err := s.repo.CountByEmployer(ctx, employerID, StatusActive)
		if err != nil {
			return nil, err
		}
		totalApplications, err := s.repo.CountApplicationsByEmployer(ctx, employerID)
		if err != nil {
			return nil, err
		}

		resp := EmployerStatsResponse{
			TotalJobs:         totalJobs,
			ActiveJobs:        activeJobs,
			TotalApplications: totalApplications,
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, key, jsonData, statsTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return EmployerStatsResponse{}, err
	}

	return v.(EmployerStatsResponse), nil
}

func (s *service) invalidateStats(ctx context.Context, employerID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, statsKey(employerID)).Err(); err != nil {
		s.logger.Warn("invalidate stats cache failed",
			zap.String("employer_id", employerID),
			zap.Error(err),
		)
	}
}

func validateRanges(salary RangeInput, experience ExperienceInput) error {
	if salary.Min != nil && salary.Max != nil && *salary.Max < *salary.Min {
		return joberrors.ErrInvalidSalaryRange
	}
	if experience.Min != nil && experience.Max != nil && *experience.Max < *experience.Min {
		return joberrors.ErrInvalidExperienceRange
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}
	return err
}

func mapToResponse(j Job) JobResponse {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:          j.ID.String(),
		Title:       j.Title,
		Description: j.Description,
		CompanyID:   j.CompanyID.String(),
		EmployerID:  j.EmployerID.String(),
		Location:    j.Location,
		JobType:     j.JobType,
		Salary: SalaryResponse{
			Min:      j.Salary.Min,
			Max:      j.Salary.Max,
			Currency: j.Salary.Currency,
		},
		Skills: skills,
		Experience: ExperienceResponse{
			Min: j.Experience.Min,
			Max: j.Experience.Max,
		},
		Status:    j.Status,
		CreatedAt: j.CreatedAt.Format(time.RFC3339),
	}
}
