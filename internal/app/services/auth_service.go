package services

import (
	"github.com/rojgarhub/backend/internal/app/models/dto"
	"github.com/rojgarhub/backend/internal/pkg/apperrors"
	"github.com/rojgarhub/backend/internal/pkg/auth"
	"github.com/rojgarhub/backend/internal/pkg/logger"
)

// AuthService verifies the admin password and issues session tokens
type AuthService struct {
	passwordHash string
	jwtService   *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(passwordHash string, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

// Login checks the supplied password against the configured admin hash and
// returns a signed admin token on success.
func (s *AuthService) Login(password string) (*dto.LoginResponse, error) {
	if !auth.CheckPassword(s.passwordHash, password) {
		logger.Warn().Msg("Admin login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAdminToken()
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
