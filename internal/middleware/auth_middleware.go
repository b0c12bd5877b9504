package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/pkg/auth"
)

// IsAdminKey is the gin context key carrying the admin flag
const IsAdminKey = "isAdmin"

// AuthMiddleware validates admin session tokens
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAdmin aborts the request unless it carries a valid admin token
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.validate(c)
		if err != nil || !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
			return
		}

		c.Set(IsAdminKey, true)
		c.Next()
	}
}

// OptionalAdmin flags the request as admin when a valid token is present but
// never rejects it. Used by endpoints whose payload varies with privilege.
func (m *AuthMiddleware) OptionalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.validate(c)
		c.Set(IsAdminKey, err == nil && claims.IsAdmin)
		c.Next()
	}
}

func (m *AuthMiddleware) validate(c *gin.Context) (*auth.Claims, error) {
	tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}
	return m.jwtService.ValidateToken(tokenString)
}

// IsAdminRequest reports whether the current request was flagged as admin
func IsAdminRequest(c *gin.Context) bool {
	return c.GetBool(IsAdminKey)
}
