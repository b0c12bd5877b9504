package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/pkg/apperrors"
)

type fakeJobStore struct {
	inserted        []*models.Job
	updated         *models.Job
	deletedIDs      []string
	deleteManyN     int64
	deleteManyCalls int
	listResult      []*models.Job
	notFoundOnID    string
}

func (f *fakeJobStore) Insert(_ context.Context, job *models.Job) (*models.Job, error) {
	f.inserted = append(f.inserted, job)
	return job, nil
}

func (f *fakeJobStore) InsertMany(_ context.Context, jobs []*models.Job) ([]*models.Job, error) {
	f.inserted = append(f.inserted, jobs...)
	return jobs, nil
}

func (f *fakeJobStore) Update(_ context.Context, job *models.Job) (*models.Job, error) {
	if job.ID == f.notFoundOnID {
		return nil, apperrors.NewResourceNotFoundError("Job with ID " + job.ID + " not found.")
	}
	f.updated = job
	return job, nil
}

func (f *fakeJobStore) DeleteOne(_ context.Context, id string) error {
	if id == f.notFoundOnID {
		return apperrors.NewResourceNotFoundError("Job with ID " + id + " not found.")
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeJobStore) DeleteMany(_ context.Context, ids []string) (int64, error) {
	f.deleteManyCalls++
	f.deletedIDs = append(f.deletedIDs, ids...)
	return f.deleteManyN, nil
}

func (f *fakeJobStore) List(_ context.Context) ([]*models.Job, error) {
	return f.listResult, nil
}

func (f *fakeJobStore) ListNonExpired(_ context.Context) ([]*models.Job, error) {
	return f.listResult, nil
}

func validJobRequest() *dto.JobRequest {
	return &dto.JobRequest{
		Title:         "Staff Nurse",
		Department:    "Health",
		Category:      "Government",
		Description:   "Permanent staff nurse position.",
		Qualification: "B.Sc Nursing",
		Vacancies:     25,
		PostedDate:    "2025-05-01",
		LastDate:      "2025-06-01",
		ApplyLink:     "https://example.com/apply",
		Status:        "active",
	}
}

func TestCreateJob_AssignsIDAndParsesDates(t *testing.T) {
	store := &fakeJobStore{}
	svc := NewJobService(store)

	job, err := svc.CreateJob(context.Background(), validJobRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "Staff Nurse", job.Title)
	assert.Equal(t, "2025-05-01", job.PostedDate.Format("2006-01-02"))
	assert.Equal(t, models.JobStatusActive, job.Status)
	require.Len(t, store.inserted, 1)
}

func TestCreateJob_NilAffiliatesBecomeEmptySlices(t *testing.T) {
	store := &fakeJobStore{}
	svc := NewJobService(store)

	job, err := svc.CreateJob(context.Background(), validJobRequest())
	require.NoError(t, err)

	assert.NotNil(t, job.AffiliateCourses)
	assert.NotNil(t, job.AffiliateBooks)
	assert.Len(t, job.AffiliateCourses, 0)
	assert.Len(t, job.AffiliateBooks, 0)
}

func TestCreateJob_ValidationFailure(t *testing.T) {
	store := &fakeJobStore{}
	svc := NewJobService(store)

	req := validJobRequest()
	req.Title = ""

	_, err := svc.CreateJob(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Missing required field: title")
	assert.Empty(t, store.inserted)
}

func TestCreateJobs_RejectsWholeBatchOnOneBadItem(t *testing.T) {
	store := &fakeJobStore{}
	svc := NewJobService(store)

	bad := validJobRequest()
	bad.Status = "open"

	_, err := svc.CreateJobs(context.Background(), []*dto.JobRequest{validJobRequest(), bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Validation Error on item 2:")
	assert.Empty(t, store.inserted, "nothing may be written when any item fails")
}

func TestCreateJobs_EmptyBatch(t *testing.T) {
	store := &fakeJobStore{}
	svc := NewJobService(store)

	jobs, err := svc.CreateJobs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestCreateJobs_AssignsDistinctIDs(t *testing.T) {
	store := &fakeJobStore{}
	svc := NewJobService(store)

	jobs, err := svc.CreateJobs(context.Background(), []*dto.JobRequest{validJobRequest(), validJobRequest()})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.NotEqual(t, jobs[0].ID, jobs[1].ID)
}

func TestUpdateJob_RequiresID(t *testing.T) {
	svc := NewJobService(&fakeJobStore{})

	_, err := svc.UpdateJob(context.Background(), validJobRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Contains(t, err.Error(), "Job ID is required for updates.")
}

func TestUpdateJob_PreservesID(t *testing.T) {
	store := &fakeJobStore{}
	svc := NewJobService(store)

	req := validJobRequest()
	req.ID = "abc-123"

	job, err := svc.UpdateJob(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", job.ID)
}

func TestUpdateJob_NotFoundPassesThrough(t *testing.T) {
	store := &fakeJobStore{notFoundOnID: "missing"}
	svc := NewJobService(store)

	req := validJobRequest()
	req.ID = "missing"

	_, err := svc.UpdateJob(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteJob_RequiresID(t *testing.T) {
	svc := NewJobService(&fakeJobStore{})
	err := svc.DeleteJob(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDeleteJobs_EmptySetReachesStore(t *testing.T) {
	store := &fakeJobStore{}
	svc := NewJobService(store)

	count, err := svc.DeleteJobs(context.Background(), []string{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, 1, store.deleteManyCalls, "empty sets still delete (nothing) and audit once")
}

func TestDeleteJobs_ReturnsCount(t *testing.T) {
	store := &fakeJobStore{deleteManyN: 2}
	svc := NewJobService(store)

	count, err := svc.DeleteJobs(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, []string{"a", "b", "c"}, store.deletedIDs)
}
