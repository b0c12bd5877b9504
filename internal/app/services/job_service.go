package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/pkg/apperrors"
	"github.com/rojgarhub/backend/internal/pkg/validation"
)

// JobStore is the persistence surface the job service depends on.
type JobStore interface {
	Insert(ctx context.Context, job *models.Job) (*models.Job, error)
	InsertMany(ctx context.Context, jobs []*models.Job) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) (*models.Job, error)
	DeleteOne(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	List(ctx context.Context) ([]*models.Job, error)
}

// JobService handles job listing operations
type JobService struct {
	jobStore JobStore
}

// NewJobService creates a new job service instance
func NewJobService(jobStore JobStore) *JobService {
	return &JobService{jobStore: jobStore}
}

// ListJobs returns every job listing, newest first
func (s *JobService) ListJobs(ctx context.Context) ([]*models.Job, error) {
	return s.jobStore.List(ctx)
}

// CreateJob validates and persists a single job listing
func (s *JobService) CreateJob(ctx context.Context, req *dto.JobRequest) (*models.Job, error) {
	if fieldErr := validation.ValidateJob(req); fieldErr != nil {
		return nil, apperrors.NewValidationError(fieldErr.Message)
	}

	job, err := jobFromRequest(req)
	if err != nil {
		return nil, err
	}
	job.ID = uuid.New().String()

	return s.jobStore.Insert(ctx, job)
}

// CreateJobs validates and persists a batch of job listings. The whole batch
// is rejected if any item fails validation, before anything is written.
func (s *JobService) CreateJobs(ctx context.Context, reqs []*dto.JobRequest) ([]*models.Job, error) {
	jobs := make([]*models.Job, 0, len(reqs))
	for i, req := range reqs {
		if fieldErr := validation.ValidateJob(req); fieldErr != nil {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("Validation Error on item %d: %s", i+1, fieldErr.Message))
		}

		job, err := jobFromRequest(req)
		if err != nil {
			return nil, err
		}
		job.ID = uuid.New().String()
		jobs = append(jobs, job)
	}

	return s.jobStore.InsertMany(ctx, jobs)
}

// UpdateJob validates and overwrites an existing job listing
func (s *JobService) UpdateJob(ctx context.Context, req *dto.JobRequest) (*models.Job, error) {
	if req.ID == "" {
		return nil, apperrors.NewBadRequestError("Job ID is required for updates.")
	}
	if fieldErr := validation.ValidateJob(req); fieldErr != nil {
		return nil, apperrors.NewValidationError(fieldErr.Message)
	}

	job, err := jobFromRequest(req)
	if err != nil {
		return nil, err
	}
	job.ID = req.ID

	return s.jobStore.Update(ctx, job)
}

// DeleteJob removes a single job listing by ID
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("Job ID is required.")
	}
	return s.jobStore.DeleteOne(ctx, id)
}

// DeleteJobs removes a batch of job listings and returns the deleted count.
// An empty id set is legal: it deletes nothing and still logs one bulk entry.
func (s *JobService) DeleteJobs(ctx context.Context, ids []string) (int64, error) {
	return s.jobStore.DeleteMany(ctx, ids)
}

// jobFromRequest maps a validated request onto the domain model. Dates are
// parsed with the same layout ValidateJob already accepted.
func jobFromRequest(req *dto.JobRequest) (*models.Job, error) {
	posted, err := validation.ParseDate(req.PostedDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date format for postedDate or lastDate. Use YYYY-MM-DD.")
	}
	last, err := validation.ParseDate(req.LastDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date format for postedDate or lastDate. Use YYYY-MM-DD.")
	}

	courses := req.AffiliateCourses
	if courses == nil {
		courses = []models.AffiliateCourse{}
	}
	books := req.AffiliateBooks
	if books == nil {
		books = []models.AffiliateBook{}
	}

	return &models.Job{
		Title:            req.Title,
		Department:       req.Department,
		Category:         req.Category,
		Description:      req.Description,
		Qualification:    req.Qualification,
		Vacancies:        req.Vacancies,
		PostedDate:       posted,
		LastDate:         last,
		ApplyLink:        req.ApplyLink,
		Status:           models.JobStatus(req.Status),
		AffiliateCourses: courses,
		AffiliateBooks:   books,
	}, nil
}
