package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rojgarhub/backend/internal/app/models"
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/middleware"
)

// PreparationServicer is the service surface the preparation controller depends on.
type PreparationServicer interface {
	CreateBook(ctx context.Context, req *dto.BookRequest) (*models.PreparationBook, error)
	UpdateBook(ctx context.Context, req *dto.BookRequest) (*models.PreparationBook, error)
	DeleteBook(ctx context.Context, id string) error
	CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.PreparationCourse, error)
	UpdateCourse(ctx context.Context, req *dto.CourseRequest) (*models.PreparationCourse, error)
	DeleteCourse(ctx context.Context, id string) error
}

// PreparationController handles preparation book and course endpoints
type PreparationController struct {
	preparationService PreparationServicer
}

// NewPreparationController creates a new PreparationController
func NewPreparationController(preparationService PreparationServicer) *PreparationController {
	return &PreparationController{preparationService: preparationService}
}

// CreateBook handles POST /preparation/books
func (c *PreparationController) CreateBook(ctx *gin.Context) {
	var req dto.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")))
		return
	}

	book, err := c.preparationService.CreateBook(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, book)
}

// UpdateBook handles PUT /preparation/books
func (c *PreparationController) UpdateBook(ctx *gin.Context) {
	var req dto.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")))
		return
	}

	book, err := c.preparationService.UpdateBook(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /preparation/books
func (c *PreparationController) DeleteBook(ctx *gin.Context) {
	var req dto.DeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid delete request")))
		return
	}

	if err := c.preparationService.DeleteBook(ctx, req.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateCourse handles POST /preparation/courses
func (c *PreparationController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")))
		return
	}

	course, err := c.preparationService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse handles PUT /preparation/courses
func (c *PreparationController) UpdateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")))
		return
	}

	course, err := c.preparationService.UpdateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /preparation/courses
func (c *PreparationController) DeleteCourse(ctx *gin.Context) {
	var req dto.DeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid delete request")))
		return
	}

	if err := c.preparationService.DeleteCourse(ctx, req.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
