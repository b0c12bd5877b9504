package validation

import (
	"fmt"
	"time"

	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/app/models/dto"
)

// DateLayout is the calendar date format accepted for job dates
const DateLayout = "2006-01-02"

// FieldError describes the first failed check on a job payload
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return e.Message
}

// jobRequiredFields is the fixed check order for required job fields
var jobRequiredFields = []string{
	"title", "department", "category", "description", "qualification",
	"vacancies", "postedDate", "lastDate", "applyLink", "status",
}

// ValidateJob verifies a job payload before persistence. It checks required
// fields in a fixed order, then date formats, then the status enum. Returns
// nil when all checks pass. Performs no I/O.
func ValidateJob(job *dto.JobRequest) *FieldError {
	for _, field := range jobRequiredFields {
		if !jobFieldPresent(job, field) {
			return &FieldError{
				Field:   field,
				Message: fmt.Sprintf("Missing required field: %s", field),
			}
		}
	}

	if !isValidDate(job.PostedDate) || !isValidDate(job.LastDate) {
		return &FieldError{
			Field:   "postedDate",
			Message: "Invalid date format for postedDate or lastDate. Use YYYY-MM-DD.",
		}
	}

	if !models.IsValidJobStatus(job.Status) {
		return &FieldError{
			Field:   "status",
			Message: `Invalid status value. Must be "active", "closing-soon", or "expired".`,
		}
	}

	return nil
}

func jobFieldPresent(job *dto.JobRequest, field string) bool {
	switch field {
	case "title":
		return job.Title != ""
	case "department":
		return job.Department != ""
	case "category":
		return job.Category != ""
	case "description":
		return job.Description != ""
	case "qualification":
		return job.Qualification != ""
	case "vacancies":
		return job.Vacancies != 0
	case "postedDate":
		return job.PostedDate != ""
	case "lastDate":
		return job.LastDate != ""
	case "applyLink":
		return job.ApplyLink != ""
	case "status":
		return job.Status != ""
	}
	return false
}

func isValidDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// ParseDate parses a calendar date in the accepted layout
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
