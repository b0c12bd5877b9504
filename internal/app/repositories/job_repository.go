package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/db"
	"github.com/rojgarhub/backend/internal/pkg/apperrors"
	"github.com/rojgarhub/backend/internal/pkg/logger"
)

// jobColumns is the full column set of the jobs table, in scan order
var jobColumns = []string{
	"id", "title", "department", "category", "description", "qualification",
	"vacancies", "posted_date", "last_date", "apply_link", "status",
	"created_at", "affiliate_courses", "affiliate_books",
}

// jobInsertColumns excludes created_at, which the store defaults
var jobInsertColumns = []string{
	"id", "title", "department", "category", "description", "qualification",
	"vacancies", "posted_date", "last_date", "apply_link", "status",
	"affiliate_courses", "affiliate_books",
}

// JobRepository handles job listing database operations
type JobRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(database *db.PostgresDB) *JobRepository {
	return &JobRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Insert persists a single job and its audit entry in one transaction,
// returning the stored row with affiliate collections decoded.
func (r *JobRepository) Insert(ctx context.Context, job *models.Job) (*models.Job, error) {
	values, err := jobInsertValues(job)
	if err != nil {
		return nil, err
	}

	var created *models.Job
	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("jobs").
			Columns(jobInsertColumns...).
			Values(values...).
			Suffix("RETURNING " + strings.Join(jobColumns, ", ")).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert job query: %w", err)
		}

		created, err = scanJob(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			logger.Error().Err(err).Msg("Error executing insert job query")
			return fmt.Errorf("error creating job: %w", err)
		}

		return appendActivity(ctx, tx, "Job Created", fmt.Sprintf("New job added: %s", created.Title))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// InsertMany persists all jobs as a single multi-row statement plus one audit
// entry summarizing the count. Callers must validate every item beforehand.
func (r *JobRepository) InsertMany(ctx context.Context, jobs []*models.Job) ([]*models.Job, error) {
	if len(jobs) == 0 {
		return []*models.Job{}, nil
	}

	builder := r.sb.Insert("jobs").Columns(jobInsertColumns...)
	for _, job := range jobs {
		values, err := jobInsertValues(job)
		if err != nil {
			return nil, err
		}
		builder = builder.Values(values...)
	}

	created := make([]*models.Job, 0, len(jobs))
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := builder.
			Suffix("RETURNING " + strings.Join(jobColumns, ", ")).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build bulk insert query: %w", err)
		}

		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Msg("Error executing bulk insert query")
			return fmt.Errorf("error creating jobs: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			job, err := scanJob(rows)
			if err != nil {
				return fmt.Errorf("error scanning inserted job row: %w", err)
			}
			created = append(created, job)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating inserted job rows: %w", err)
		}
		rows.Close()

		return appendActivity(ctx, tx, "Bulk Job Upload", fmt.Sprintf("%d jobs added.", len(created)))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update performs a full-column overwrite keyed by id and logs the change,
// returning the refreshed row.
func (r *JobRepository) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	coursesJSON, booksJSON, err := encodeAffiliates(job)
	if err != nil {
		return nil, err
	}

	var updated *models.Job
	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("jobs").
			SetMap(map[string]interface{}{
				"title":             job.Title,
				"department":        job.Department,
				"category":          job.Category,
				"description":       job.Description,
				"qualification":     job.Qualification,
				"vacancies":         job.Vacancies,
				"posted_date":       job.PostedDate,
				"last_date":         job.LastDate,
				"apply_link":        job.ApplyLink,
				"status":            string(job.Status),
				"affiliate_courses": coursesJSON,
				"affiliate_books":   booksJSON,
			}).
			Where(squirrel.Eq{"id": job.ID}).
			Suffix("RETURNING " + strings.Join(jobColumns, ", ")).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update job query: %w", err)
		}

		updated, err = scanJob(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewResourceNotFoundError(fmt.Sprintf("Job with ID %s not found.", job.ID))
			}
			logger.Error().Err(err).Str("jobID", job.ID).Msg("Error executing update job query")
			return fmt.Errorf("error updating job: %w", err)
		}

		return appendActivity(ctx, tx, "Job Updated", fmt.Sprintf("Job updated: %s", updated.Title))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOne removes a single job by id. Signals not-found when no row matched,
// in which case no audit entry is written.
func (r *JobRepository) DeleteOne(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("jobs").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete job query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Str("jobID", id).Msg("Error executing delete job query")
			return fmt.Errorf("error deleting job: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("Job with ID %s not found.", id))
		}

		return appendActivity(ctx, tx, "Job Deleted", fmt.Sprintf("Job with id %s deleted.", id))
	})
}

// DeleteMany removes all jobs matching the id set in one statement and always
// logs a single bulk-deletion entry, regardless of how many rows matched.
func (r *JobRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	var deleted int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("jobs").
			Where(squirrel.Eq{"id": ids}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build bulk delete query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Msg("Error executing bulk delete query")
			return fmt.Errorf("error deleting jobs: %w", err)
		}
		deleted = cmdTag.RowsAffected()

		return appendActivity(ctx, tx, "Bulk Job Deletion", fmt.Sprintf("%d jobs deleted.", deleted))
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// List retrieves all jobs, newest first
func (r *JobRepository) List(ctx context.Context) ([]*models.Job, error) {
	sql, args, err := r.sb.Select(jobColumns...).
		From("jobs").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list jobs query")
		return nil, fmt.Errorf("error querying jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// ListNonExpired retrieves title and creation time of every job that has not
// expired, for sitemap generation.
func (r *JobRepository) ListNonExpired(ctx context.Context) ([]*models.Job, error) {
	sql, args, err := r.sb.Select("id", "title", "created_at").
		From("jobs").
		Where(squirrel.NotEq{"status": string(models.JobStatusExpired)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build non-expired jobs query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying non-expired jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job := &models.Job{}
		if err := rows.Scan(&job.ID, &job.Title, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning non-expired job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating non-expired job rows: %w", err)
	}

	return jobs, nil
}

// jobInsertValues produces the positional values matching jobInsertColumns
func jobInsertValues(job *models.Job) ([]interface{}, error) {
	coursesJSON, booksJSON, err := encodeAffiliates(job)
	if err != nil {
		return nil, err
	}
	return []interface{}{
		job.ID, job.Title, job.Department, job.Category, job.Description,
		job.Qualification, job.Vacancies, job.PostedDate, job.LastDate,
		job.ApplyLink, string(job.Status), coursesJSON, booksJSON,
	}, nil
}

// encodeAffiliates serializes the affiliate collections for storage.
// Absent collections persist as empty arrays, never as null.
func encodeAffiliates(job *models.Job) ([]byte, []byte, error) {
	courses := job.AffiliateCourses
	if courses == nil {
		courses = []models.AffiliateCourse{}
	}
	books := job.AffiliateBooks
	if books == nil {
		books = []models.AffiliateBook{}
	}

	coursesJSON, err := json.Marshal(courses)
	if err != nil {
		return nil, nil, fmt.Errorf("error serializing affiliate courses: %w", err)
	}
	booksJSON, err := json.Marshal(books)
	if err != nil {
		return nil, nil, fmt.Errorf("error serializing affiliate books: %w", err)
	}
	return coursesJSON, booksJSON, nil
}

// scanJob reads one jobs row, decoding the serialized affiliate columns.
// This is the single deserialization point for the jsonb columns.
func scanJob(row pgx.Row) (*models.Job, error) {
	job := &models.Job{}
	var coursesRaw, booksRaw []byte

	err := row.Scan(
		&job.ID, &job.Title, &job.Department, &job.Category, &job.Description,
		&job.Qualification, &job.Vacancies, &job.PostedDate, &job.LastDate,
		&job.ApplyLink, &job.Status, &job.CreatedAt, &coursesRaw, &booksRaw,
	)
	if err != nil {
		return nil, err
	}

	job.AffiliateCourses = decodeCourses(coursesRaw)
	job.AffiliateBooks = decodeBooks(booksRaw)
	return job, nil
}

func decodeCourses(raw []byte) []models.AffiliateCourse {
	out := []models.AffiliateCourse{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn().Err(err).Msg("Unreadable affiliate courses column, returning empty list")
		return []models.AffiliateCourse{}
	}
	if out == nil {
		out = []models.AffiliateCourse{}
	}
	return out
}

func decodeBooks(raw []byte) []models.AffiliateBook {
	out := []models.AffiliateBook{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn().Err(err).Msg("Unreadable affiliate books column, returning empty list")
		return []models.AffiliateBook{}
	}
	if out == nil {
		out = []models.AffiliateBook{}
	}
	return out
}
