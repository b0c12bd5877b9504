package repositories

import (
	"context"
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

var courseColumns = []string{"id", "platform", "title", "url"}

// PreparationCourseRepository handles preparation course database operations
type PreparationCourseRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPreparationCourseRepository creates a new PreparationCourseRepository
func NewPreparationCourseRepository(database *db.PostgresDB) *PreparationCourseRepository {
	return &PreparationCourseRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Insert persists a new preparation course and its audit entry
func (r *PreparationCourseRepository) Insert(ctx context.Context, course *models.PreparationCourse) (*models.PreparationCourse, error) {
	var created *models.PreparationCourse
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("preparation_courses").
			Columns(courseColumns...).
			Values(course.ID, course.Platform, course.Title, course.URL).
			Suffix("RETURNING " + strings.Join(courseColumns, ", ")).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert course query: %w", err)
		}

		created, err = scanCourse(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			logger.Error().Err(err).Msg("Error executing insert course query")
			return fmt.Errorf("error creating preparation course: %w", err)
		}

		return appendActivity(ctx, tx, "Prep Course Added", fmt.Sprintf("Course added: %s", created.Title))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites a preparation course keyed by id, logging the change
func (r *PreparationCourseRepository) Update(ctx context.Context, course *models.PreparationCourse) (*models.PreparationCourse, error) {
	var updated *models.PreparationCourse
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("preparation_courses").
			SetMap(map[string]interface{}{
				"platform": course.Platform,
				"title":    course.Title,
				"url":      course.URL,
			}).
			Where(squirrel.Eq{"id": course.ID}).
			Suffix("RETURNING " + strings.Join(courseColumns, ", ")).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update course query: %w", err)
		}

		updated, err = scanCourse(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewResourceNotFoundError(fmt.Sprintf("Course with ID %s not found.", course.ID))
			}
			logger.Error().Err(err).Str("courseID", course.ID).Msg("Error executing update course query")
			return fmt.Errorf("error updating preparation course: %w", err)
		}

		return appendActivity(ctx, tx, "Prep Course Updated", fmt.Sprintf("Course updated: %s", updated.Title))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a preparation course by id. Signals not-found when no row
// matched, in which case no audit entry is written.
func (r *PreparationCourseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("preparation_courses").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete course query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Str("courseID", id).Msg("Error executing delete course query")
			return fmt.Errorf("error deleting preparation course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("Course with ID %s not found.", id))
		}

		return appendActivity(ctx, tx, "Prep Course Deleted", fmt.Sprintf("Course with id %s deleted.", id))
	})
}

// List retrieves all preparation courses ordered by title
func (r *PreparationCourseRepository) List(ctx context.Context) ([]*models.PreparationCourse, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("preparation_courses").
		OrderBy("title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying preparation courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.PreparationCourse{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

func scanCourse(row pgx.Row) (*models.PreparationCourse, error) {
	course := &models.PreparationCourse{}
	err := row.Scan(&course.ID, &course.Platform, &course.Title, &course.URL)
	if err != nil {
		return nil, err
	}
	return course, nil
}
