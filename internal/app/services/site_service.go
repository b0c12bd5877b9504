package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/pkg/helpers"
	"github.com/rojgarhub/backend/internal/pkg/sitemap"
)

// staticPaths are the always-present sitemap entries
var staticPaths = []string{
	"/", "/blog", "/preparation", "/about", "/contact", "/privacy", "/terms", "/disclaimer",
}

// SiteStore is the persistence surface for the aggregated read-only entities.
type SiteStore interface {
	ListSettings(ctx context.Context) (map[string]interface{}, error)
	ListQuickLinks(ctx context.Context) ([]*models.QuickLink, error)
	ListPosts(ctx context.Context) ([]*models.ContentPost, error)
	ListPublishedPosts(ctx context.Context) ([]*models.ContentPost, error)
	ListBreakingNews(ctx context.Context) ([]*models.BreakingNews, error)
	ListSponsoredAds(ctx context.Context) ([]*models.SponsoredAd, error)
	ListUpcomingExams(ctx context.Context) ([]*models.UpcomingExam, error)
	ListSubscribers(ctx context.Context) ([]*models.Subscriber, error)
	ListActivityLogs(ctx context.Context) ([]*models.ActivityLog, error)
	ListContacts(ctx context.Context) ([]*models.ContactSubmission, error)
	ListEmailNotifications(ctx context.Context) ([]*models.EmailNotification, error)
	ListCustomEmails(ctx context.Context) ([]*models.CustomEmail, error)
	ListEmailTemplates(ctx context.Context) ([]*models.EmailTemplate, error)
}

// SitemapJobStore lists the job rows that belong in the sitemap.
type SitemapJobStore interface {
	List(ctx context.Context) ([]*models.Job, error)
	ListNonExpired(ctx context.Context) ([]*models.Job, error)
}

// BookLister and CourseLister are the read-only slices of the preparation
// stores the aggregation needs.
type BookLister interface {
	List(ctx context.Context) ([]*models.PreparationBook, error)
}

// CourseLister lists preparation courses for the aggregation payload.
type CourseLister interface {
	List(ctx context.Context) ([]*models.PreparationCourse, error)
}

// SiteService aggregates site-wide data for the public API surface
type SiteService struct {
	jobStore    SitemapJobStore
	bookStore   BookLister
	courseStore CourseLister
	siteStore   SiteStore
}

// NewSiteService creates a new site service instance
func NewSiteService(jobStore SitemapJobStore, bookStore BookLister, courseStore CourseLister, siteStore SiteStore) *SiteService {
	return &SiteService{
		jobStore:    jobStore,
		bookStore:   bookStore,
		courseStore: courseStore,
		siteStore:   siteStore,
	}
}

// BuildSiteData assembles the full aggregation payload. The key set is the
// same for every caller; the six admin-only collections come back empty for
// non-admin sessions.
func (s *SiteService) BuildSiteData(ctx context.Context, isAdmin bool) (map[string]interface{}, error) {
	settings, err := s.siteStore.ListSettings(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobStore.List(ctx)
	if err != nil {
		return nil, err
	}
	quickLinks, err := s.siteStore.ListQuickLinks(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.siteStore.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	breakingNews, err := s.siteStore.ListBreakingNews(ctx)
	if err != nil {
		return nil, err
	}
	sponsoredAds, err := s.siteStore.ListSponsoredAds(ctx)
	if err != nil {
		return nil, err
	}
	upcomingExams, err := s.siteStore.ListUpcomingExams(ctx)
	if err != nil {
		return nil, err
	}
	preparationCourses, err := s.courseStore.List(ctx)
	if err != nil {
		return nil, err
	}
	preparationBooks, err := s.bookStore.List(ctx)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"jobs":               jobs,
		"quickLinks":         quickLinks,
		"posts":              posts,
		"breakingNews":       breakingNews,
		"sponsoredAds":       sponsoredAds,
		"preparationCourses": preparationCourses,
		"preparationBooks":   preparationBooks,
		"upcomingExams":      upcomingExams,
	}
	// Settings keys are flattened into the top-level object. A setting can
	// never shadow a collection key because the reserved names are written
	// after the settings.
	for key, value := range settings {
		if _, reserved := data[key]; !reserved {
			data[key] = value
		}
	}

	if isAdmin {
		subscribers, err := s.siteStore.ListSubscribers(ctx)
		if err != nil {
			return nil, err
		}
		activityLogs, err := s.siteStore.ListActivityLogs(ctx)
		if err != nil {
			return nil, err
		}
		contacts, err := s.siteStore.ListContacts(ctx)
		if err != nil {
			return nil, err
		}
		emailNotifications, err := s.siteStore.ListEmailNotifications(ctx)
		if err != nil {
			return nil, err
		}
		customEmails, err := s.siteStore.ListCustomEmails(ctx)
		if err != nil {
			return nil, err
		}
		emailTemplates, err := s.siteStore.ListEmailTemplates(ctx)
		if err != nil {
			return nil, err
		}
		data["subscribers"] = subscribers
		data["activityLogs"] = activityLogs
		data["contacts"] = contacts
		data["emailNotifications"] = emailNotifications
		data["customEmails"] = customEmails
		data["emailTemplates"] = emailTemplates
	} else {
		data["subscribers"] = []interface{}{}
		data["activityLogs"] = []interface{}{}
		data["contacts"] = []interface{}{}
		data["emailNotifications"] = []interface{}{}
		data["customEmails"] = []interface{}{}
		data["emailTemplates"] = []interface{}{}
	}

	return data, nil
}

// BuildSitemap assembles sitemap pages for the given base URL: the static
// site pages, one page per non-expired job under /job/<slug>, and one page
// per published blog post under /blog/<id>.
func (s *SiteService) BuildSitemap(ctx context.Context, baseURL string) ([]sitemap.Page, error) {
	jobs, err := s.jobStore.ListNonExpired(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.siteStore.ListPublishedPosts(ctx)
	if err != nil {
		return nil, err
	}

	pages := make([]sitemap.Page, 0, len(staticPaths)+len(jobs)+len(posts))
	for _, path := range staticPaths {
		pages = append(pages, sitemap.Page{URL: baseURL + path})
	}
	for _, job := range jobs {
		pages = append(pages, sitemap.Page{
			URL:          fmt.Sprintf("%s/job/%s", baseURL, helpers.Slugify(job.Title)),
			LastModified: job.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, post := range posts {
		pages = append(pages, sitemap.Page{
			URL:          fmt.Sprintf("%s/blog/%s", baseURL, post.ID),
			LastModified: post.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return pages, nil
}
