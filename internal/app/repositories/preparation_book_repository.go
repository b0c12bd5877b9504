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

var bookColumns = []string{"id", "title", "author", "url", "image_url", "category"}

// PreparationBookRepository handles preparation book database operations
type PreparationBookRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPreparationBookRepository creates a new PreparationBookRepository
func NewPreparationBookRepository(database *db.PostgresDB) *PreparationBookRepository {
	return &PreparationBookRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Insert persists a new preparation book and its audit entry
func (r *PreparationBookRepository) Insert(ctx context.Context, book *models.PreparationBook) (*models.PreparationBook, error) {
	var created *models.PreparationBook
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("preparation_books").
			Columns(bookColumns...).
			Values(book.ID, book.Title, book.Author, book.URL, book.ImageURL, book.Category).
			Suffix("RETURNING " + strings.Join(bookColumns, ", ")).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert book query: %w", err)
		}

		created, err = scanBook(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			logger.Error().Err(err).Msg("Error executing insert book query")
			return fmt.Errorf("error creating preparation book: %w", err)
		}

		return appendActivity(ctx, tx, "Prep Book Added", fmt.Sprintf("Book added: %s", created.Title))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites a preparation book keyed by id, logging the change
func (r *PreparationBookRepository) Update(ctx context.Context, book *models.PreparationBook) (*models.PreparationBook, error) {
	var updated *models.PreparationBook
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("preparation_books").
			SetMap(map[string]interface{}{
				"title":     book.Title,
				"author":    book.Author,
				"url":       book.URL,
				"image_url": book.ImageURL,
				"category":  book.Category,
			}).
			Where(squirrel.Eq{"id": book.ID}).
			Suffix("RETURNING " + strings.Join(bookColumns, ", ")).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update book query: %w", err)
		}

		updated, err = scanBook(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewResourceNotFoundError(fmt.Sprintf("Book with ID %s not found.", book.ID))
			}
			logger.Error().Err(err).Str("bookID", book.ID).Msg("Error executing update book query")
			return fmt.Errorf("error updating preparation book: %w", err)
		}

		return appendActivity(ctx, tx, "Prep Book Updated", fmt.Sprintf("Book updated: %s", updated.Title))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a preparation book by id. Signals not-found when no row
// matched, in which case no audit entry is written.
func (r *PreparationBookRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("preparation_books").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete book query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Str("bookID", id).Msg("Error executing delete book query")
			return fmt.Errorf("error deleting preparation book: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("Book with ID %s not found.", id))
		}

		return appendActivity(ctx, tx, "Prep Book Deleted", fmt.Sprintf("Book with id %s deleted.", id))
	})
}

// List retrieves all preparation books ordered by title
func (r *PreparationBookRepository) List(ctx context.Context) ([]*models.PreparationBook, error) {
	sql, args, err := r.sb.Select(bookColumns...).
		From("preparation_books").
		OrderBy("title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list books query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying preparation books: %w", err)
	}
	defer rows.Close()

	books := []*models.PreparationBook{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning book row: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}

func scanBook(row pgx.Row) (*models.PreparationBook, error) {
	book := &models.PreparationBook{}
	err := row.Scan(&book.ID, &book.Title, &book.Author, &book.URL, &book.ImageURL, &book.Category)
	if err != nil {
		return nil, err
	}
	return book, nil
}
