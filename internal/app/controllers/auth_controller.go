package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/middleware"
)

// AuthServicer is the service surface the auth controller depends on.
type AuthServicer interface {
	Login(password string) (*dto.LoginResponse, error)
}

// AuthController handles the admin login endpoint
type AuthController struct {
	authService AuthServicer
}

// NewAuthController creates a new AuthController
func NewAuthController(authService AuthServicer) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Password is required")))
		return
	}

	resp, err := c.authService.Login(req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
