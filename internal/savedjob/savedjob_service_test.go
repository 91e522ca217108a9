package savedjob

import (
	"context"
	"testing"

	"github.com/VaibhavBaliyan/hirenest/internal/job"
	joberrors "github.com/VaibhavBaliyan/hirenest/internal/job/errors"
	savedjoberrors "github.com/VaibhavBaliyan/hirenest/internal/savedjob/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn             func(ctx context.Context, s *SavedJob) error
	findAllByUserFn      func(ctx context.Context, userID string) ([]SavedJobWithJob, error)
	deleteByUserAndJobFn func(ctx context.Context, userID, jobID string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, s *SavedJob) error { return f.createFn(ctx, s) }
func (f *fakeRepo) FindAllByUser(ctx context.Context, userID string) ([]SavedJobWithJob, error) {
	return f.findAllByUserFn(ctx, userID)
}
func (f *fakeRepo) DeleteByUserAndJob(ctx context.Context, userID, jobID string) (int64, error) {
	return f.deleteByUserAndJobFn(ctx, userID, jobID)
}

type fakeJobRepo struct {
	findByIDFn func(ctx context.Context, id string) (*job.Job, error)
}

func (f *fakeJobRepo) Create(ctx context.Context, j *job.Job) error { return nil }
func (f *fakeJobRepo) FindByID(ctx context.Context, id string) (*job.Job, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeJobRepo) FindAllActive(ctx context.Context, filter job.ListFilter) ([]job.Job, int64, error) {
	return nil, 0, nil
}
func (f *fakeJobRepo) FindAllByEmployer(ctx context.Context, employerID string) ([]job.JobWithApplicants, error) {
	return nil, nil
}
func (f *fakeJobRepo) UpdateActive(ctx context.Context, j *job.Job) (int64, error) { return 1, nil }
func (f *fakeJobRepo) CountByEmployer(ctx context.Context, employerID string, status string) (int64, error) {
	return 0, nil
}
func (f *fakeJobRepo) CountApplicationsByEmployer(ctx context.Context, employerID string) (int64, error) {
	return 0, nil
}

type errDuplicateKey struct{}

func (errDuplicateKey) Error() string {
	return `duplicate key value violates unique constraint "idx_saved_jobs_user_job"`
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	jobID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		var saved SavedJob
		repo := &fakeRepo{
			createFn: func(ctx context.Context, s *SavedJob) error { saved = *s; return nil },
		}
		jobRepo := &fakeJobRepo{findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return &job.Job{ID: jobID, Status: job.StatusActive}, nil
		}}

		resp, err := NewService(repo, jobRepo).Save(ctx, userID, jobID.String())

		assert.NoError(t, err)
		assert.Equal(t, jobID.String(), resp.JobID)
		assert.Equal(t, userID, saved.UserID.String())
	})

	t.Run("Job Not Found", func(t *testing.T) {
		jobRepo := &fakeJobRepo{findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return nil, gorm.ErrRecordNotFound
		}}

		_, err := NewService(&fakeRepo{}, jobRepo).Save(ctx, userID, jobID.String())
		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})

	t.Run("Duplicate Save Maps To Conflict", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, s *SavedJob) error { return errDuplicateKey{} },
		}
		jobRepo := &fakeJobRepo{findByIDFn: func(ctx context.Context, id string) (*job.Job, error) {
			return &job.Job{ID: jobID, Status: job.StatusActive}, nil
		}}

		_, err := NewService(repo, jobRepo).Save(ctx, userID, jobID.String())
		assert.ErrorIs(t, err, savedjoberrors.ErrAlreadySaved)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	repo := &fakeRepo{
		findAllByUserFn: func(ctx context.Context, uid string) ([]SavedJobWithJob, error) {
			return []SavedJobWithJob{
				{
					SavedJob: SavedJob{ID: uuid.New(), JobID: uuid.New()},
					JobTitle: "Backend Engineer",
					JobStatus: job.StatusClosed,
				},
			}, nil
		},
	}

	resp, err := NewService(repo, &fakeJobRepo{}).List(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Backend Engineer", resp[0].Job.Title)
	assert.Equal(t, job.StatusClosed, resp[0].Job.Status)
}

func TestService_Unsave(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	jobID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{
			deleteByUserAndJobFn: func(ctx context.Context, uid, jid string) (int64, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, jobID, jid)
				return 1, nil
			},
		}

		err := NewService(repo, &fakeJobRepo{}).Unsave(ctx, userID, jobID)
		assert.NoError(t, err)
	})

	t.Run("Absent Or Foreign Reports Not Found", func(t *testing.T) {
		repo := &fakeRepo{
			deleteByUserAndJobFn: func(ctx context.Context, uid, jid string) (int64, error) {
				return 0, nil
			},
		}

		err := NewService(repo, &fakeJobRepo{}).Unsave(ctx, userID, jobID)
		assert.ErrorIs(t, err, savedjoberrors.ErrSavedJobNotFound)
	})
}
