package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/pkg/apperrors"
)

// BookStore is the persistence surface for preparation books.
type BookStore interface {
	Insert(ctx context.Context, book *models.PreparationBook) (*models.PreparationBook, error)
	Update(ctx context.Context, book *models.PreparationBook) (*models.PreparationBook, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.PreparationBook, error)
}

// CourseStore is the persistence surface for preparation courses.
type CourseStore interface {
	Insert(ctx context.Context, course *models.PreparationCourse) (*models.PreparationCourse, error)
	Update(ctx context.Context, course *models.PreparationCourse) (*models.PreparationCourse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.PreparationCourse, error)
}

// PreparationService handles exam preparation books and courses
type PreparationService struct {
	bookStore   BookStore
	courseStore CourseStore
}

// NewPreparationService creates a new preparation service instance
func NewPreparationService(bookStore BookStore, courseStore CourseStore) *PreparationService {
	return &PreparationService{
		bookStore:   bookStore,
		courseStore: courseStore,
	}
}

// ListBooks returns all preparation books
func (s *PreparationService) ListBooks(ctx context.Context) ([]*models.PreparationBook, error) {
	return s.bookStore.List(ctx)
}

// CreateBook validates and persists a preparation book
func (s *PreparationService) CreateBook(ctx context.Context, req *dto.BookRequest) (*models.PreparationBook, error) {
	if req.Title == "" || req.Author == "" || req.URL == "" {
		return nil, apperrors.NewValidationError("Title, author and url are required.")
	}

	book := &models.PreparationBook{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Author:   req.Author,
		URL:      req.URL,
		ImageURL: req.ImageURL,
		Category: req.Category,
	}
	return s.bookStore.Insert(ctx, book)
}

// UpdateBook validates and overwrites an existing preparation book
func (s *PreparationService) UpdateBook(ctx context.Context, req *dto.BookRequest) (*models.PreparationBook, error) {
	if req.ID == "" {
		return nil, apperrors.NewBadRequestError("Book ID is required for updates.")
	}
	if req.Title == "" || req.Author == "" || req.URL == "" {
		return nil, apperrors.NewValidationError("Title, author and url are required.")
	}

	book := &models.PreparationBook{
		ID:       req.ID,
		Title:    req.Title,
		Author:   req.Author,
		URL:      req.URL,
		ImageURL: req.ImageURL,
		Category: req.Category,
	}
	return s.bookStore.Update(ctx, book)
}

// DeleteBook removes a preparation book by ID
func (s *PreparationService) DeleteBook(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("Book ID is required.")
	}
	return s.bookStore.Delete(ctx, id)
}

// ListCourses returns all preparation courses
func (s *PreparationService) ListCourses(ctx context.Context) ([]*models.PreparationCourse, error) {
	return s.courseStore.List(ctx)
}

// CreateCourse validates and persists a preparation course
func (s *PreparationService) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.PreparationCourse, error) {
	if req.Platform == "" || req.Title == "" || req.URL == "" {
		return nil, apperrors.NewValidationError("Platform, title and url are required.")
	}

	course := &models.PreparationCourse{
		ID:       uuid.New().String(),
		Platform: req.Platform,
		Title:    req.Title,
		URL:      req.URL,
	}
	return s.courseStore.Insert(ctx, course)
}

// UpdateCourse validates and overwrites an existing preparation course
func (s *PreparationService) UpdateCourse(ctx context.Context, req *dto.CourseRequest) (*models.PreparationCourse, error) {
	if req.ID == "" {
		return nil, apperrors.NewBadRequestError("Course ID is required for updates.")
	}
	if req.Platform == "" || req.Title == "" || req.URL == "" {
		return nil, apperrors.NewValidationError("Platform, title and url are required.")
	}

	course := &models.PreparationCourse{
		ID:       req.ID,
		Platform: req.Platform,
		Title:    req.Title,
		URL:      req.URL,
	}
	return s.courseStore.Update(ctx, course)
}

// DeleteCourse removes a preparation course by ID
func (s *PreparationService) DeleteCourse(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("Course ID is required.")
	}
	return s.courseStore.Delete(ctx, id)
}
