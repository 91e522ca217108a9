package job

import (
	"context"
	"errors"
	"testing"

	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/company"
	joberrors "github.com/VaibhavBaliyan/hirenest/internal/job/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn            func(ctx context.Context, j *Job) error
	findByIDFn          func(ctx context.Context, id string) (*Job, error)
	findAllActiveFn     func(ctx context.Context, filter ListFilter) ([]Job, int64, error)
	findAllByEmployerFn func(ctx context.Context, employerID string) ([]JobWithApplicants, error)
	updateActiveFn      func(ctx context.Context, j *Job) (int64, error)
	countByEmployerFn   func(ctx context.Context, employerID string, status string) (int64, error)
	countAppsFn         func(ctx context.Context, employerID string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, j *Job) error { return f.createFn(ctx, j) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Job, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAllActive(ctx context.Context, filter ListFilter) ([]Job, int64, error) {
	return f.findAllActiveFn(ctx, filter)
}
func (f *fakeRepo) FindAllByEmployer(ctx context.Context, employerID string) ([]JobWithApplicants, error) {
	return f.findAllByEmployerFn(ctx, employerID)
}
func (f *fakeRepo) UpdateActive(ctx context.Context, j *Job) (int64, error) {
	return f.updateActiveFn(ctx, j)
}
func (f *fakeRepo) CountByEmployer(ctx context.Context, employerID string, status string) (int64, error) {
	return f.countByEmployerFn(ctx, employerID, status)
}
func (f *fakeRepo) CountApplicationsByEmployer(ctx context.Context, employerID string) (int64, error) {
	return f.countAppsFn(ctx, employerID)
}

type fakeCompanyRepo struct {
	findByEmployerFn func(ctx context.Context, employerID string) (*company.Company, error)
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *company.Company) error { return nil }
func (f *fakeCompanyRepo) FindByEmployer(ctx context.Context, employerID string) (*company.Company, error) {
	return f.findByEmployerFn(ctx, employerID)
}
func (f *fakeCompanyRepo) Update(ctx context.Context, c *company.Company) error { return nil }

func newTestService(repo Repository, companyRepo company.Repository) Service {
	return NewService(repo, companyRepo, authz.NewPolicy(), nil)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	employerID := uuid.New().String()
	companyID := uuid.New()

	validReq := CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build and operate the hiring platform backend services.",
		Location:    "Bangalore",
		JobType:     "full-time",
	}

	t.Run("Success", func(t *testing.T) {
		var saved Job
		repo := &fakeRepo{
			createFn: func(ctx context.Context, j *Job) error { saved = *j; return nil },
		}
		companyRepo := &fakeCompanyRepo{
			findByEmployerFn: func(ctx context.Context, id string) (*company.Company, error) {
				return &company.Company{ID: companyID}, nil
			},
		}

		resp, err := newTestService(repo, companyRepo).Create(ctx, employerID, validReq)

		assert.NoError(t, err)
		assert.Equal(t, StatusActive, resp.Status)
		assert.Equal(t, companyID.String(), resp.CompanyID)
		assert.Equal(t, StatusActive, saved.Status)
	})

	t.Run("No Company Profile", func(t *testing.T) {
		repo := &fakeRepo{}
		companyRepo := &fakeCompanyRepo{
			findByEmployerFn: func(ctx context.Context, id string) (*company.Company, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		_, err := newTestService(repo, companyRepo).Create(ctx, employerID, validReq)
		assert.ErrorIs(t, err, joberrors.ErrNoCompanyProfile)
	})

	t.Run("Invalid Salary Range", func(t *testing.T) {
		min, max := 90000.0, 50000.0
		req := validReq
		req.Salary = RangeInput{Min: &min, Max: &max}

		repo := &fakeRepo{}
		companyRepo := &fakeCompanyRepo{
			findByEmployerFn: func(ctx context.Context, id string) (*company.Company, error) {
				return &company.Company{ID: companyID}, nil
			},
		}

		_, err := newTestService(repo, companyRepo).Create(ctx, employerID, req)
		assert.ErrorIs(t, err, joberrors.ErrInvalidSalaryRange)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	employerID := uuid.New()
	jobID := uuid.New()

	newTitle := "Senior Backend Engineer"

	t.Run("Success", func(t *testing.T) {
		var saved Job
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return &Job{ID: jobID, EmployerID: employerID, Title: "Backend Engineer", Status: StatusActive}, nil
			},
			updateActiveFn: func(ctx context.Context, j *Job) (int64, error) { saved = *j; return 1, nil },
		}

		resp, err := newTestService(repo, nil).Update(ctx, employerID.String(), jobID.String(), UpdateJobRequest{Title: &newTitle})

		assert.NoError(t, err)
		assert.Equal(t, newTitle, resp.Title)
		assert.Equal(t, newTitle, saved.Title)
	})

	t.Run("Not Owner", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return &Job{ID: jobID, EmployerID: uuid.New(), Status: StatusActive}, nil
			},
		}

		_, err := newTestService(repo, nil).Update(ctx, employerID.String(), jobID.String(), UpdateJobRequest{Title: &newTitle})
		assert.ErrorIs(t, err, joberrors.ErrNotJobOwner)
	})

	t.Run("Closed Job", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return &Job{ID: jobID, EmployerID: employerID, Status: StatusClosed}, nil
			},
		}

		_, err := newTestService(repo, nil).Update(ctx, employerID.String(), jobID.String(), UpdateJobRequest{Title: &newTitle})
		assert.ErrorIs(t, err, joberrors.ErrJobClosed)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		_, err := newTestService(repo, nil).Update(ctx, employerID.String(), jobID.String(), UpdateJobRequest{Title: &newTitle})
		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})

	t.Run("Closed Concurrently After Read", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return &Job{ID: jobID, EmployerID: employerID, Status: StatusActive}, nil
			},
			updateActiveFn: func(ctx context.Context, j *Job) (int64, error) { return 0, nil },
		}

		_, err := newTestService(repo, nil).Update(ctx, employerID.String(), jobID.String(), UpdateJobRequest{Title: &newTitle})
		assert.ErrorIs(t, err, joberrors.ErrJobClosed)
	})
}

func TestService_Close(t *testing.T) {
	ctx := context.Background()
	employerID := uuid.New()
	jobID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		var saved Job
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return &Job{ID: jobID, EmployerID: employerID, Status: StatusActive}, nil
			},
			updateActiveFn: func(ctx context.Context, j *Job) (int64, error) { saved = *j; return 1, nil },
		}

		resp, err := newTestService(repo, nil).Close(ctx, employerID.String(), jobID.String())

		assert.NoError(t, err)
		assert.Equal(t, StatusClosed, resp.Status)
		assert.Equal(t, StatusClosed, saved.Status)
	})

	t.Run("Already Closed", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return &Job{ID: jobID, EmployerID: employerID, Status: StatusClosed}, nil
			},
		}

		_, err := newTestService(repo, nil).Close(ctx, employerID.String(), jobID.String())
		assert.ErrorIs(t, err, joberrors.ErrJobAlreadyClosed)
	})

	t.Run("Concurrent Double Close Commits Once", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return &Job{ID: jobID, EmployerID: employerID, Status: StatusActive}, nil
			},
			updateActiveFn: func(ctx context.Context, j *Job) (int64, error) { return 0, nil },
		}

		_, err := newTestService(repo, nil).Close(ctx, employerID.String(), jobID.String())
		assert.ErrorIs(t, err, joberrors.ErrJobAlreadyClosed)
	})

	t.Run("Delete Is Idempotent On Closed", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Job, error) {
				return &Job{ID: jobID, EmployerID: employerID, Status: StatusClosed}, nil
			},
		}

		err := newTestService(repo, nil).Delete(ctx, employerID.String(), jobID.String())
		assert.NoError(t, err)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults And Pagination Meta", func(t *testing.T) {
		var gotFilter ListFilter
		repo := &fakeRepo{
			findAllActiveFn: func(ctx context.Context, filter ListFilter) ([]Job, int64, error) {
				gotFilter = filter
				return []Job{{ID: uuid.New(), Status: StatusActive}}, 41, nil
			},
		}

		resp, err := newTestService(repo, nil).List(ctx, ListFilter{Page: 0, Limit: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, gotFilter.Page)
		assert.Equal(t, 20, gotFilter.Limit)
		assert.Equal(t, int64(41), resp.TotalJobs)
		assert.Equal(t, 3, resp.TotalPages)
	})

	t.Run("Repo Error", func(t *testing.T) {
		repo := &fakeRepo{
			findAllActiveFn: func(ctx context.Context, filter ListFilter) ([]Job, int64, error) {
				return nil, 0, errors.New("db down")
			},
		}

		_, err := newTestService(repo, nil).List(ctx, ListFilter{})
		assert.Error(t, err)
	})
}

func TestService_GetMyJobs(t *testing.T) {
	ctx := context.Background()
	employerID := uuid.New().String()

	repo := &fakeRepo{
		findAllByEmployerFn: func(ctx context.Context, id string) ([]JobWithApplicants, error) {
			return []JobWithApplicants{
				{Job: Job{ID: uuid.New(), Status: StatusActive}, ApplicantCount: 7},
			}, nil
		},
	}

	resp, err := newTestService(repo, nil).GetMyJobs(ctx, employerID)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.NotNil(t, resp[0].ApplicantCount)
	assert.Equal(t, int64(7), *resp[0].ApplicantCount)
}

func TestService_GetEmployerStats(t *testing.T) {
	ctx := context.Background()
	employerID := uuid.New().String()

	repo := &fakeRepo{
		countByEmployerFn: func(ctx context.Context, id string, status string) (int64, error) {
			if status == StatusActive {
				return 3, nil
			}
			return 5, nil
		},
		countAppsFn: func(ctx context.Context, id string) (int64, error) { return 12, nil },
	}

	resp, err := newTestService(repo, nil).GetEmployerStats(ctx, employerID)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.TotalJobs)
	assert.Equal(t, int64(3), resp.ActiveJobs)
	assert.Equal(t, int64(12), resp.TotalApplications)
}
