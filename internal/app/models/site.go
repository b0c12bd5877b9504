package models

import "time"

// Read-only entities aggregated into the public site data payload.
// They are maintained by other tooling; this API only lists them.

// QuickLink is a curated navigation link shown on the site
type QuickLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ContentPost is an article or static content page
type ContentPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BreakingNews is a ticker item shown on the home page
type BreakingNews struct {
	ID       string `json:"id"`
	Headline string `json:"headline"`
	URL      string `json:"url"`
}

// SponsoredAd is a paid placement
type SponsoredAd struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	TargetURL string `json:"targetUrl"`
}

// UpcomingExam is an exam deadline shown on the site
type UpcomingExam struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Deadline time.Time `json:"deadline"`
}

// Subscriber is a newsletter subscriber (admin-only visibility)
type Subscriber struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	SubscriptionDate time.Time `json:"subscriptionDate"`
}

// ContactSubmission is a message sent via the contact form (admin-only visibility)
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// EmailNotification is a record of an automated notification email (admin-only visibility)
type EmailNotification struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Recipient string    `json:"recipient"`
	SentAt    time.Time `json:"sentAt"`
}

// CustomEmail is a record of a manually composed email (admin-only visibility)
type CustomEmail struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Recipient string    `json:"recipient"`
	SentAt    time.Time `json:"sentAt"`
}

// EmailTemplate is a reusable email template (admin-only visibility)
type EmailTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
