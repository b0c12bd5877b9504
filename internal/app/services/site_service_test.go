package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarhub/backend/internal/app/models"
)

type fakeSiteStore struct {
	settings       map[string]interface{}
	publishedPosts []*models.ContentPost
	subscribers    []*models.Subscriber
	activityLogs   []*models.ActivityLog
}

func (f *fakeSiteStore) ListSettings(_ context.Context) (map[string]interface{}, error) {
	return f.settings, nil
}

func (f *fakeSiteStore) ListQuickLinks(_ context.Context) ([]*models.QuickLink, error) {
	return []*models.QuickLink{}, nil
}

func (f *fakeSiteStore) ListPosts(_ context.Context) ([]*models.ContentPost, error) {
	return []*models.ContentPost{}, nil
}

func (f *fakeSiteStore) ListPublishedPosts(_ context.Context) ([]*models.ContentPost, error) {
	return f.publishedPosts, nil
}

func (f *fakeSiteStore) ListBreakingNews(_ context.Context) ([]*models.BreakingNews, error) {
	return []*models.BreakingNews{}, nil
}

func (f *fakeSiteStore) ListSponsoredAds(_ context.Context) ([]*models.SponsoredAd, error) {
	return []*models.SponsoredAd{}, nil
}

func (f *fakeSiteStore) ListUpcomingExams(_ context.Context) ([]*models.UpcomingExam, error) {
	return []*models.UpcomingExam{}, nil
}

func (f *fakeSiteStore) ListSubscribers(_ context.Context) ([]*models.Subscriber, error) {
	return f.subscribers, nil
}

func (f *fakeSiteStore) ListActivityLogs(_ context.Context) ([]*models.ActivityLog, error) {
	return f.activityLogs, nil
}

func (f *fakeSiteStore) ListContacts(_ context.Context) ([]*models.ContactSubmission, error) {
	return []*models.ContactSubmission{}, nil
}

func (f *fakeSiteStore) ListEmailNotifications(_ context.Context) ([]*models.EmailNotification, error) {
	return []*models.EmailNotification{}, nil
}

func (f *fakeSiteStore) ListCustomEmails(_ context.Context) ([]*models.CustomEmail, error) {
	return []*models.CustomEmail{}, nil
}

func (f *fakeSiteStore) ListEmailTemplates(_ context.Context) ([]*models.EmailTemplate, error) {
	return []*models.EmailTemplate{}, nil
}

var privilegedKeys = []string{
	"subscribers", "activityLogs", "contacts",
	"emailNotifications", "customEmails", "emailTemplates",
}

func newSiteService(jobStore *fakeJobStore, siteStore *fakeSiteStore) *SiteService {
	return NewSiteService(jobStore, &fakeBookStore{}, &fakeCourseStore{}, siteStore)
}

func TestBuildSiteData_FlattensSettings(t *testing.T) {
	svc := newSiteService(&fakeJobStore{}, &fakeSiteStore{
		settings: map[string]interface{}{
			"siteTitle":    "RojgarHub",
			"contactEmail": "admin@example.com",
		},
	})

	data, err := svc.BuildSiteData(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, "RojgarHub", data["siteTitle"])
	assert.Equal(t, "admin@example.com", data["contactEmail"])
}

func TestBuildSiteData_SettingCannotShadowCollection(t *testing.T) {
	jobs := []*models.Job{{ID: "j1", Title: "Clerk"}}
	svc := newSiteService(&fakeJobStore{listResult: jobs}, &fakeSiteStore{
		settings: map[string]interface{}{"jobs": "not-a-list"},
	})

	data, err := svc.BuildSiteData(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, jobs, data["jobs"])
}

func TestBuildSiteData_NonAdminGetsEmptyPrivilegedCollections(t *testing.T) {
	svc := newSiteService(&fakeJobStore{}, &fakeSiteStore{
		subscribers:  []*models.Subscriber{{ID: "s1", Email: "a@b.c"}},
		activityLogs: []*models.ActivityLog{{ID: 1, Action: "Job Created"}},
	})

	data, err := svc.BuildSiteData(context.Background(), false)
	require.NoError(t, err)

	for _, key := range privilegedKeys {
		value, present := data[key]
		require.True(t, present, "key %s must be present for non-admin callers", key)
		assert.Empty(t, value, "key %s must be empty for non-admin callers", key)
	}
}

func TestBuildSiteData_AdminSeesPrivilegedCollections(t *testing.T) {
	subscribers := []*models.Subscriber{{ID: "s1", Email: "a@b.c"}}
	svc := newSiteService(&fakeJobStore{}, &fakeSiteStore{subscribers: subscribers})

	data, err := svc.BuildSiteData(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, subscribers, data["subscribers"])
}

func TestBuildSiteData_SameKeySetRegardlessOfPrivilege(t *testing.T) {
	siteStore := &fakeSiteStore{}
	publicData, err := newSiteService(&fakeJobStore{}, siteStore).BuildSiteData(context.Background(), false)
	require.NoError(t, err)
	adminData, err := newSiteService(&fakeJobStore{}, siteStore).BuildSiteData(context.Background(), true)
	require.NoError(t, err)

	for key := range publicData {
		_, ok := adminData[key]
		assert.True(t, ok, "admin payload missing key %s", key)
	}
	for key := range adminData {
		_, ok := publicData[key]
		assert.True(t, ok, "public payload missing key %s", key)
	}
}

func TestBuildSitemap(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)
	jobStore := &fakeJobStore{listResult: []*models.Job{
		{ID: "j1", Title: "Staff Nurse Grade II", CreatedAt: created},
	}}
	siteStore := &fakeSiteStore{publishedPosts: []*models.ContentPost{
		{ID: "p1", CreatedAt: created},
	}}

	pages, err := newSiteService(jobStore, siteStore).BuildSitemap(context.Background(), "https://rojgarhub.app")
	require.NoError(t, err)
	require.Len(t, pages, 10)

	assert.Equal(t, "https://rojgarhub.app/", pages[0].URL)
	assert.Empty(t, pages[0].LastModified)

	jobPage := pages[8]
	assert.Equal(t, "https://rojgarhub.app/job/staff-nurse-grade-ii", jobPage.URL)
	assert.Equal(t, "2025-05-01T10:30:00Z", jobPage.LastModified)

	postPage := pages[9]
	assert.Equal(t, "https://rojgarhub.app/blog/p1", postPage.URL)
}
