package models

import "time"

// JobStatus defines the lifecycle state of a job listing
type JobStatus string

const (
	JobStatusActive      JobStatus = "active"
	JobStatusClosingSoon JobStatus = "closing-soon"
	JobStatusExpired     JobStatus = "expired"
)

// ValidJobStatuses lists every status value that may be persisted
var ValidJobStatuses = []JobStatus{JobStatusActive, JobStatusClosingSoon, JobStatusExpired}

// IsValidJobStatus reports whether s is one of the recognized status values
func IsValidJobStatus(s string) bool {
	for _, v := range ValidJobStatuses {
		if s == string(v) {
			return true
		}
	}
	return false
}

// AffiliateCourse is a referenced external course resource attached to a job
type AffiliateCourse struct {
	ID       string `json:"id,omitempty"`
	Platform string `json:"platform"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// AffiliateBook is a referenced external book resource attached to a job
type AffiliateBook struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
}

// Job represents a job listing
type Job struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Department       string            `json:"department"`
	Category         string            `json:"category"`
	Description      string            `json:"description"`
	Qualification    string            `json:"qualification"`
	Vacancies        int               `json:"vacancies"`
	PostedDate       time.Time         `json:"postedDate"`
	LastDate         time.Time         `json:"lastDate"`
	ApplyLink        string            `json:"applyLink"`
	Status           JobStatus         `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	AffiliateCourses []AffiliateCourse `json:"affiliateCourses"`
	AffiliateBooks   []AffiliateBook   `json:"affiliateBooks"`
}
