package dto

import "github.com/rojgarhub/backend/internal/app/models"

// JobRequest is the payload for creating or updating a job listing.
// Dates arrive as YYYY-MM-DD strings and are parsed after validation.
type JobRequest struct {
	ID               string                   `json:"id,omitempty"`
	Title            string                   `json:"title"`
	Department       string                   `json:"department"`
	Category         string                   `json:"category"`
	Description      string                   `json:"description"`
	Qualification    string                   `json:"qualification"`
	Vacancies        int                      `json:"vacancies"`
	PostedDate       string                   `json:"postedDate"`
	LastDate         string                   `json:"lastDate"`
	ApplyLink        string                   `json:"applyLink"`
	Status           string                   `json:"status"`
	AffiliateCourses []models.AffiliateCourse `json:"affiliateCourses"`
	AffiliateBooks   []models.AffiliateBook   `json:"affiliateBooks"`
}

// DeleteJobsRequest carries either a single id or a set of ids to delete
type DeleteJobsRequest struct {
	ID  string   `json:"id"`
	IDs []string `json:"ids"`
}
