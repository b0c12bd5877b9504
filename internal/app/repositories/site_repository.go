package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/db"
	"github.com/rojgarhub/backend/internal/pkg/logger"
)

// SiteRepository reads the aggregated site entities that this API never
// mutates, plus the settings map and the activity log.
type SiteRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewSiteRepository creates a new SiteRepository
func NewSiteRepository(database *db.PostgresDB) *SiteRepository {
	return &SiteRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// ListSettings returns the key-value settings map with jsonb values decoded
func (r *SiteRepository) ListSettings(ctx context.Context) (map[string]interface{}, error) {
	sql, args, err := r.sb.Select("key_name", "value").
		From("key_value_store").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build settings query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying settings: %w", err)
	}
	defer rows.Close()

	settings := map[string]interface{}{}
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("error scanning settings row: %w", err)
		}

		var value interface{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &value); err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("Unreadable settings value, skipping")
				continue
			}
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings rows: %w", err)
	}

	return settings, nil
}

// ListQuickLinks retrieves all quick links ordered by title
func (r *SiteRepository) ListQuickLinks(ctx context.Context) ([]*models.QuickLink, error) {
	sql, args, err := r.sb.Select("id", "title", "url").
		From("quick_links").
		OrderBy("title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build quick links query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying quick links: %w", err)
	}
	defer rows.Close()

	links := []*models.QuickLink{}
	for rows.Next() {
		link := &models.QuickLink{}
		if err := rows.Scan(&link.ID, &link.Title, &link.URL); err != nil {
			return nil, fmt.Errorf("error scanning quick link row: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// ListPosts retrieves all content posts, newest first
func (r *SiteRepository) ListPosts(ctx context.Context) ([]*models.ContentPost, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "type", "status", "created_at").
		From("content_posts").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build posts query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.ContentPost{}
	for rows.Next() {
		post := &models.ContentPost{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Type, &post.Status, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// ListPublishedPosts retrieves id and creation time of published posts of
// type "posts", for sitemap generation.
func (r *SiteRepository) ListPublishedPosts(ctx context.Context) ([]*models.ContentPost, error) {
	sql, args, err := r.sb.Select("id", "created_at").
		From("content_posts").
		Where(squirrel.Eq{"status": "published", "type": "posts"}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build published posts query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying published posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.ContentPost{}
	for rows.Next() {
		post := &models.ContentPost{}
		if err := rows.Scan(&post.ID, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning published post row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// ListBreakingNews retrieves all breaking news items
func (r *SiteRepository) ListBreakingNews(ctx context.Context) ([]*models.BreakingNews, error) {
	sql, args, err := r.sb.Select("id", "headline", "url").
		From("breaking_news").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build breaking news query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying breaking news: %w", err)
	}
	defer rows.Close()

	items := []*models.BreakingNews{}
	for rows.Next() {
		item := &models.BreakingNews{}
		if err := rows.Scan(&item.ID, &item.Headline, &item.URL); err != nil {
			return nil, fmt.Errorf("error scanning breaking news row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListSponsoredAds retrieves all sponsored ads
func (r *SiteRepository) ListSponsoredAds(ctx context.Context) ([]*models.SponsoredAd, error) {
	sql, args, err := r.sb.Select("id", "title", "image_url", "target_url").
		From("sponsored_ads").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sponsored ads query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sponsored ads: %w", err)
	}
	defer rows.Close()

	ads := []*models.SponsoredAd{}
	for rows.Next() {
		ad := &models.SponsoredAd{}
		if err := rows.Scan(&ad.ID, &ad.Title, &ad.ImageURL, &ad.TargetURL); err != nil {
			return nil, fmt.Errorf("error scanning sponsored ad row: %w", err)
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

// ListUpcomingExams retrieves upcoming exams ordered by deadline
func (r *SiteRepository) ListUpcomingExams(ctx context.Context) ([]*models.UpcomingExam, error) {
	sql, args, err := r.sb.Select("id", "name", "url", "deadline").
		From("upcoming_exams").
		OrderBy("deadline ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upcoming exams query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying upcoming exams: %w", err)
	}
	defer rows.Close()

	exams := []*models.UpcomingExam{}
	for rows.Next() {
		exam := &models.UpcomingExam{}
		if err := rows.Scan(&exam.ID, &exam.Name, &exam.URL, &exam.Deadline); err != nil {
			return nil, fmt.Errorf("error scanning upcoming exam row: %w", err)
		}
		exams = append(exams, exam)
	}
	return exams, rows.Err()
}

// ListSubscribers retrieves all subscribers, newest first. Admin only.
func (r *SiteRepository) ListSubscribers(ctx context.Context) ([]*models.Subscriber, error) {
	sql, args, err := r.sb.Select("id", "email", "subscription_date").
		From("subscribers").
		OrderBy("subscription_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build subscribers query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []*models.Subscriber{}
	for rows.Next() {
		sub := &models.Subscriber{}
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.SubscriptionDate); err != nil {
			return nil, fmt.Errorf("error scanning subscriber row: %w", err)
		}
		subscribers = append(subscribers, sub)
	}
	return subscribers, rows.Err()
}

// ListActivityLogs retrieves the audit trail, newest first. Admin only.
func (r *SiteRepository) ListActivityLogs(ctx context.Context) ([]*models.ActivityLog, error) {
	sql, args, err := r.sb.Select("id", "action", "details", "timestamp").
		From("activity_log").
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build activity log query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying activity logs: %w", err)
	}
	defer rows.Close()

	entries := []*models.ActivityLog{}
	for rows.Next() {
		entry := &models.ActivityLog{}
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Details, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning activity log row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ListContacts retrieves contact submissions, newest first. Admin only.
func (r *SiteRepository) ListContacts(ctx context.Context) ([]*models.ContactSubmission, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "message", "submitted_at").
		From("contact_submissions").
		OrderBy("submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build contacts query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*models.ContactSubmission{}
	for rows.Next() {
		contact := &models.ContactSubmission{}
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Message, &contact.SubmittedAt); err != nil {
			return nil, fmt.Errorf("error scanning contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

// ListEmailNotifications retrieves notification emails, newest first. Admin only.
func (r *SiteRepository) ListEmailNotifications(ctx context.Context) ([]*models.EmailNotification, error) {
	sql, args, err := r.sb.Select("id", "subject", "recipient", "sent_at").
		From("email_notifications").
		OrderBy("sent_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build email notifications query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying email notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.EmailNotification{}
	for rows.Next() {
		n := &models.EmailNotification{}
		if err := rows.Scan(&n.ID, &n.Subject, &n.Recipient, &n.SentAt); err != nil {
			return nil, fmt.Errorf("error scanning email notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// ListCustomEmails retrieves custom emails, newest first. Admin only.
func (r *SiteRepository) ListCustomEmails(ctx context.Context) ([]*models.CustomEmail, error) {
	sql, args, err := r.sb.Select("id", "subject", "body", "recipient", "sent_at").
		From("custom_emails").
		OrderBy("sent_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build custom emails query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying custom emails: %w", err)
	}
	defer rows.Close()

	emails := []*models.CustomEmail{}
	for rows.Next() {
		e := &models.CustomEmail{}
		if err := rows.Scan(&e.ID, &e.Subject, &e.Body, &e.Recipient, &e.SentAt); err != nil {
			return nil, fmt.Errorf("error scanning custom email row: %w", err)
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

// ListEmailTemplates retrieves email templates ordered by name. Admin only.
func (r *SiteRepository) ListEmailTemplates(ctx context.Context) ([]*models.EmailTemplate, error) {
	sql, args, err := r.sb.Select("id", "name", "subject", "body").
		From("email_templates").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build email templates query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying email templates: %w", err)
	}
	defer rows.Close()

	templates := []*models.EmailTemplate{}
	for rows.Next() {
		tpl := &models.EmailTemplate{}
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Subject, &tpl.Body); err != nil {
			return nil, fmt.Errorf("error scanning email template row: %w", err)
		}
		templates = append(templates, tpl)
	}
	return templates, rows.Err()
}
