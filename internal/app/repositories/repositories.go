package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rojgarhub/backend/internal/db"
)

// Querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
// Repository helpers take it so audit appends can join the caller's transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	JobRepository    *JobRepository
	BookRepository   *PreparationBookRepository
	CourseRepository *PreparationCourseRepository
	SiteRepository   *SiteRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		JobRepository:    NewJobRepository(database),
		BookRepository:   NewPreparationBookRepository(database),
		CourseRepository: NewPreparationCourseRepository(database),
		SiteRepository:   NewSiteRepository(database),
	}
}

// statementBuilder returns the shared dollar-placeholder squirrel builder
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// appendActivity writes one audit row describing a mutation. It runs on the
// caller's Querier so the append commits atomically with the primary write.
func appendActivity(ctx context.Context, q Querier, action, details string) error {
	sql, args, err := statementBuilder().
		Insert("activity_log").
		Columns("action", "details").
		Values(action, details).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build activity log query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error appending activity log: %w", err)
	}
	return nil
}
