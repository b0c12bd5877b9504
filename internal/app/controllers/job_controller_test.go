package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/pkg/apperrors"
)

type fakeJobService struct {
	createdSingle   []*dto.JobRequest
	createdBatch    [][]*dto.JobRequest
	updated         []*dto.JobRequest
	deletedID       string
	deletedIDs      []string
	deleteManyCalls int
	err             error
}

func (f *fakeJobService) CreateJob(_ context.Context, req *dto.JobRequest) (*models.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdSingle = append(f.createdSingle, req)
	return &models.Job{ID: "new-id", Title: req.Title}, nil
}

func (f *fakeJobService) CreateJobs(_ context.Context, reqs []*dto.JobRequest) ([]*models.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdBatch = append(f.createdBatch, reqs)
	jobs := make([]*models.Job, 0, len(reqs))
	for _, req := range reqs {
		jobs = append(jobs, &models.Job{ID: "new-id", Title: req.Title})
	}
	return jobs, nil
}

func (f *fakeJobService) UpdateJob(_ context.Context, req *dto.JobRequest) (*models.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, req)
	return &models.Job{ID: req.ID, Title: req.Title}, nil
}

func (f *fakeJobService) DeleteJob(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deletedID = id
	return nil
}

func (f *fakeJobService) DeleteJobs(_ context.Context, ids []string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleteManyCalls++
	f.deletedIDs = ids
	return int64(len(ids)), nil
}

func jobTestRouter(svc *fakeJobService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewJobController(svc)

	router := gin.New()
	router.POST("/jobs", controller.Create)
	router.PUT("/jobs", controller.Update)
	router.DELETE("/jobs", controller.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJobCreate_ObjectBody(t *testing.T) {
	svc := &fakeJobService{}
	router := jobTestRouter(svc)

	rec := doJSON(router, http.MethodPost, "/jobs", `{"title":"Clerk"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.createdSingle, 1)
	assert.Empty(t, svc.createdBatch)
	assert.Equal(t, "Clerk", svc.createdSingle[0].Title)
}

func TestJobCreate_ArrayBody(t *testing.T) {
	svc := &fakeJobService{}
	router := jobTestRouter(svc)

	rec := doJSON(router, http.MethodPost, "/jobs", `[{"title":"Clerk"},{"title":"Peon"}]`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.createdBatch, 1)
	assert.Empty(t, svc.createdSingle)
	assert.Len(t, svc.createdBatch[0], 2)
}

func TestJobCreate_ArrayBodyWithLeadingWhitespace(t *testing.T) {
	svc := &fakeJobService{}
	router := jobTestRouter(svc)

	rec := doJSON(router, http.MethodPost, "/jobs", "\n\t [{\"title\":\"Clerk\"}]")

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.createdBatch, 1)
}

func TestJobCreate_ValidationErrorMapsTo400(t *testing.T) {
	svc := &fakeJobService{err: apperrors.NewValidationError("Missing required field: title")}
	router := jobTestRouter(svc)

	rec := doJSON(router, http.MethodPost, "/jobs", `{"department":"Health"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required field: title")
}

func TestJobCreate_MalformedBody(t *testing.T) {
	router := jobTestRouter(&fakeJobService{})
	rec := doJSON(router, http.MethodPost, "/jobs", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobUpdate_NotFoundMapsTo404(t *testing.T) {
	svc := &fakeJobService{err: apperrors.NewResourceNotFoundError("Job with ID x not found.")}
	router := jobTestRouter(svc)

	rec := doJSON(router, http.MethodPut, "/jobs", `{"id":"x","title":"Clerk"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobDelete_SingleID(t *testing.T) {
	svc := &fakeJobService{}
	router := jobTestRouter(svc)

	rec := doJSON(router, http.MethodDelete, "/jobs", `{"id":"j1"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "j1", svc.deletedID)
	assert.Empty(t, svc.deletedIDs)
}

func TestJobDelete_ManyIDs(t *testing.T) {
	svc := &fakeJobService{}
	router := jobTestRouter(svc)

	rec := doJSON(router, http.MethodDelete, "/jobs", `{"ids":["j1","j2"]}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"j1", "j2"}, svc.deletedIDs)
	assert.Empty(t, svc.deletedID)
}

func TestJobDelete_EmptyIDsArrayTakesBulkPath(t *testing.T) {
	svc := &fakeJobService{}
	router := jobTestRouter(svc)

	rec := doJSON(router, http.MethodDelete, "/jobs", `{"ids":[]}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, svc.deleteManyCalls)
	assert.Empty(t, svc.deletedID)
}

func TestJobDelete_NoID(t *testing.T) {
	router := jobTestRouter(&fakeJobService{})
	rec := doJSON(router, http.MethodDelete, "/jobs", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
