package application_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VaibhavBaliyan/hirenest/internal/application"
	applicationerrors "github.com/VaibhavBaliyan/hirenest/internal/application/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	applyFn             func(ctx context.Context, applicantID, jobID string, req application.ApplyRequest) (application.ApplicationResponse, error)
	getMyApplicationsFn func(ctx context.Context, applicantID string) ([]application.ApplicationResponse, error)
	getJobApplicantsFn  func(ctx context.Context, employerID, jobID string) ([]application.ApplicationResponse, error)
	updateStatusFn      func(ctx context.Context, employerID, id string, req application.UpdateStatusRequest) (application.ApplicationResponse, error)
}

func (f *fakeService) Apply(ctx context.Context, applicantID, jobID string, req application.ApplyRequest) (application.ApplicationResponse, error) {
	return f.applyFn(ctx, applicantID, jobID, req)
}
func (f *fakeService) GetMyApplications(ctx context.Context, applicantID string) ([]application.ApplicationResponse, error) {
	return f.getMyApplicationsFn(ctx, applicantID)
}
func (f *fakeService) GetJobApplicants(ctx context.Context, employerID, jobID string) ([]application.ApplicationResponse, error) {
	return f.getJobApplicantsFn(ctx, employerID, jobID)
}
func (f *fakeService) UpdateStatus(ctx context.Context, employerID, id string, req application.UpdateStatusRequest) (application.ApplicationResponse, error) {
	return f.updateStatusFn(ctx, employerID, id, req)
}

func TestHandler_Apply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	applicantID := uuid.New().String()
	jobID := uuid.New().String()

	t.Run("Created", func(t *testing.T) {
		svc := &fakeService{
			applyFn: func(ctx context.Context, aid, jid string, req application.ApplyRequest) (application.ApplicationResponse, error) {
				assert.Equal(t, applicantID, aid)
				assert.Equal(t, jobID, jid)
				assert.Equal(t, "Keen to join", req.CoverLetter)
				return application.ApplicationResponse{ID: uuid.New().String(), Status: application.StatusApplied}, nil
			},
		}

		h := application.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", applicantID)
		c.Params = gin.Params{{Key: "id", Value: jobID}}
		c.Request = httptest.NewRequest(http.MethodPost, "/jobs/"+jobID+"/apply", strings.NewReader(`{"coverLetter":"Keen to join"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Apply(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"applied"`)
	})

	t.Run("Duplicate Maps To 400", func(t *testing.T) {
		svc := &fakeService{
			applyFn: func(ctx context.Context, aid, jid string, req application.ApplyRequest) (application.ApplicationResponse, error) {
				return application.ApplicationResponse{}, applicationerrors.ErrAlreadyApplied
			},
		}

		h := application.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", applicantID)
		c.Params = gin.Params{{Key: "id", Value: jobID}}
		c.Request = httptest.NewRequest(http.MethodPost, "/jobs/"+jobID+"/apply", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Apply(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You have already applied to this job")
	})
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employerID := uuid.New().String()
	appID := uuid.New().String()

	svc := &fakeService{
		updateStatusFn: func(ctx context.Context, eid, id string, req application.UpdateStatusRequest) (application.ApplicationResponse, error) {
			assert.Equal(t, application.StatusShortlisted, req.Status)
			return application.ApplicationResponse{ID: id, Status: req.Status}, nil
		},
	}

	h := application.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", employerID)
	c.Params = gin.Params{{Key: "id", Value: appID}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/applications/"+appID+"/status", strings.NewReader(`{"status":"shortlisted"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"shortlisted"`)
}
