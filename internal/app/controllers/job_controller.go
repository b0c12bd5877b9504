package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/middleware"
	"github.com/rojgarhub/backend/internal/pkg/apperrors"
)

// JobServicer is the service surface the job controller depends on.
type JobServicer interface {
	CreateJob(ctx context.Context, req *dto.JobRequest) (*models.Job, error)
	CreateJobs(ctx context.Context, reqs []*dto.JobRequest) ([]*models.Job, error)
	UpdateJob(ctx context.Context, req *dto.JobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	DeleteJobs(ctx context.Context, ids []string) (int64, error)
}

// JobController handles job listing endpoints
type JobController struct {
	jobService JobServicer
}

// NewJobController creates a new JobController
func NewJobController(jobService JobServicer) *JobController {
	return &JobController{jobService: jobService}
}

// Create handles POST /jobs. The body may be a single job object or an array
// of jobs; the shape is sniffed from the first non-space byte.
func (c *JobController) Create(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unreadable request body")))
		return
	}

	if isJSONArray(body) {
		var reqs []*dto.JobRequest
		if err := json.Unmarshal(body, &reqs); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job data")))
			return
		}

		jobs, err := c.jobService.CreateJobs(ctx, reqs)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, jobs)
		return
	}

	var req dto.JobRequest
	if err := json.Unmarshal(body, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job data")))
		return
	}

	job, err := c.jobService.CreateJob(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, job)
}

// Update handles PUT /jobs. The body must carry the id of the job to update.
func (c *JobController) Update(ctx *gin.Context) {
	var req dto.JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job data")))
		return
	}

	job, err := c.jobService.UpdateJob(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, job)
}

// Delete handles DELETE /jobs. The body carries either `id` or `ids`.
func (c *JobController) Delete(ctx *gin.Context) {
	var req dto.DeleteJobsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid delete request")))
		return
	}

	// An ids key that is present but empty still takes the bulk path: it
	// deletes nothing and logs a zero-count bulk entry.
	if req.IDs != nil {
		if _, err := c.jobService.DeleteJobs(ctx, req.IDs); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.Status(http.StatusNoContent)
		return
	}

	if req.ID == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Job ID is required."))
		return
	}
	if err := c.jobService.DeleteJob(ctx, req.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// isJSONArray reports whether the payload's first non-space byte opens an array
func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
